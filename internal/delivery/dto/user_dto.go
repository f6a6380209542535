package dto

// Request DTOs

type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Phone       string `json:"phone" validate:"omitempty,max=50"`
	Address     string `json:"address" validate:"omitempty"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Conditions  string `json:"conditions" validate:"omitempty"`
}

type UpdateStaffRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty"`
	Role       string `json:"role" validate:"omitempty,oneof=doctor radiologist clerk admin"`
}

// Response DTOs

type UserResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone,omitempty"`
	Address  string           `json:"address,omitempty"`
	IsActive bool             `json:"is_active"`
	UserType string           `json:"user_type"`
	Patient  *PatientResponse `json:"patient,omitempty"`
	Staff    *StaffResponse   `json:"staff,omitempty"`
}

type PatientResponse struct {
	PatientID   int64  `json:"patient_id"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Conditions  string `json:"conditions,omitempty"`
}

type StaffResponse struct {
	StaffID    int64  `json:"staff_id"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

type ActivationResponse struct {
	UserID   int64 `json:"user_id"`
	IsActive bool  `json:"is_active"`
}
