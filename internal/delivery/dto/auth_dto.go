package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterPatientRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Address     string `json:"address" validate:"omitempty"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Conditions  string `json:"conditions" validate:"omitempty"`
}

type RegisterStaffRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Role       string `json:"role" validate:"required,oneof=doctor radiologist clerk admin"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user,omitempty"`
}
