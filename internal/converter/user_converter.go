package converter

import (
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, including the
// specialization selected by the discriminator.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	resp := &dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Address:  user.Address,
		IsActive: user.Active(),
		UserType: string(user.UserType),
	}

	switch user.UserType {
	case entity.UserTypePatient:
		if user.PatientProfile != nil {
			resp.Patient = PatientProfileToResponse(user.PatientProfile)
		}
	case entity.UserTypeStaff:
		if user.StaffProfile != nil {
			resp.Staff = StaffProfileToResponse(user.StaffProfile)
		}
	}

	return resp
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		PatientID:  profile.PatientID,
		Conditions: profile.Conditions,
	}
	if profile.DateOfBirth != nil {
		resp.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	return resp
}

func StaffProfileToResponse(profile *entity.StaffProfile) *dto.StaffResponse {
	if profile == nil {
		return nil
	}

	return &dto.StaffResponse{
		StaffID:    profile.StaffID,
		Department: profile.Department,
		Role:       string(profile.Role),
	}
}
