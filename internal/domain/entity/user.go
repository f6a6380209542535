package entity

import "time"

// UserType discriminates the identity specialization. It is set once at
// registration and never changes.
type UserType string

const (
	UserTypePatient UserType = "patient"
	UserTypeStaff   UserType = "staff"
)

// StaffRole is the closed role set for medical staff.
type StaffRole string

const (
	RoleDoctor      StaffRole = "doctor"
	RoleRadiologist StaffRole = "radiologist"
	RoleClerk       StaffRole = "clerk"
	RoleAdmin       StaffRole = "admin"
)

// ValidStaffRole reports whether role is one of the closed staff roles.
func ValidStaffRole(role StaffRole) bool {
	switch role {
	case RoleDoctor, RoleRadiologist, RoleClerk, RoleAdmin:
		return true
	}
	return false
}

// User is the generic identity record. Exactly one of PatientProfile or
// StaffProfile exists per user, selected by UserType. The user id is internal;
// cross-service references use the profile's secondary id instead.
type User struct {
	ID           int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string   `gorm:"type:varchar(255);not null" json:"name"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"type:text;not null" json:"-"`
	Phone        string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address      string   `gorm:"type:text" json:"address,omitempty"`
	IsActive     *bool    `gorm:"not null;default:true;index" json:"is_active"`
	UserType     UserType `gorm:"type:varchar(20);not null" json:"user_type"`

	// Relationships
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
	StaffProfile   *StaffProfile   `gorm:"foreignKey:UserID" json:"staff_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Active reports the activation state, defaulting to true when unset.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// PatientProfile holds the patient specialization. PatientID is the
// patient-scoped secondary id used by the workflow and billing components.
type PatientProfile struct {
	UserID      int64      `gorm:"primaryKey" json:"user_id"`
	PatientID   int64      `gorm:"uniqueIndex;not null;default:nextval('patient_id_seq')" json:"patient_id"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Conditions  string     `gorm:"type:text" json:"conditions,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// StaffProfile holds the staff specialization. StaffID is the staff-scoped
// secondary id used for cross-service attribution.
type StaffProfile struct {
	UserID     int64     `gorm:"primaryKey" json:"user_id"`
	StaffID    int64     `gorm:"uniqueIndex;not null;default:nextval('staff_id_seq')" json:"staff_id"`
	Department string    `gorm:"type:varchar(100)" json:"department,omitempty"`
	Role       StaffRole `gorm:"type:varchar(20);not null;index" json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}
