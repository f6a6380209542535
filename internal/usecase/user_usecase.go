package usecase

import (
	"context"
	"errors"
	"time"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrStaffNotFound   = errors.New("staff not found")
)

type UserUsecase interface {
	GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetPatient(ctx context.Context, patientID int64) (*dto.UserResponse, error)
	GetAllPatients(ctx context.Context) (*dto.UserListResponse, error)
	UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.UserResponse, error)
	GetStaff(ctx context.Context, staffID int64) (*dto.UserResponse, error)
	GetAllStaff(ctx context.Context) (*dto.UserListResponse, error)
	UpdateStaff(ctx context.Context, staffID int64, req *dto.UpdateStaffRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	patientRepo repository.PatientProfileRepository
	staffRepo   repository.StaffProfileRepository
}

func NewUserUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientProfileRepository,
	staffRepo repository.StaffProfileRepository,
) UserUsecase {
	return &userUsecase{
		log:         log,
		userRepo:    userRepo,
		patientRepo: patientRepo,
		staffRepo:   staffRepo,
	}
}

func (u *userUsecase) GetUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}
	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *userUsecase) GetPatient(ctx context.Context, patientID int64) (*dto.UserResponse, error) {
	profile, err := u.patientRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if profile == nil || profile.User == nil {
		return nil, ErrPatientNotFound
	}

	user := profile.User
	user.PatientProfile = profile
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllPatients(ctx context.Context) (*dto.UserListResponse, error) {
	profiles, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(profiles))
	for i := range profiles {
		if profiles[i].User == nil {
			continue
		}
		user := profiles[i].User
		user.PatientProfile = &profiles[i]
		responses = append(responses, *converter.UserToResponse(user))
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

// UpdatePatient applies a self-service profile update. The discriminator and
// the secondary patient id are immutable.
func (u *userUsecase) UpdatePatient(ctx context.Context, patientID int64, req *dto.UpdatePatientRequest) (*dto.UserResponse, error) {
	profile, err := u.patientRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if profile == nil || profile.User == nil {
		return nil, ErrPatientNotFound
	}

	user := profile.User
	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		profile.DateOfBirth = &dob
	}
	profile.Conditions = req.Conditions

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user %d: %+v", user.ID, err)
		return nil, err
	}

	profile.User = nil
	if err := u.patientRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update patient profile %d: %+v", patientID, err)
		return nil, err
	}

	user.PatientProfile = profile
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetStaff(ctx context.Context, staffID int64) (*dto.UserResponse, error) {
	profile, err := u.staffRepo.FindByStaffID(ctx, staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %d: %+v", staffID, err)
		return nil, err
	}
	if profile == nil || profile.User == nil {
		return nil, ErrStaffNotFound
	}

	user := profile.User
	user.StaffProfile = profile
	return converter.UserToResponse(user), nil
}

// UpdateStaff edits contact details, department and role. The discriminator
// and the secondary staff id stay fixed; role may change within the closed
// set (a doctor can be promoted to admin).
func (u *userUsecase) UpdateStaff(ctx context.Context, staffID int64, req *dto.UpdateStaffRequest) (*dto.UserResponse, error) {
	profile, err := u.staffRepo.FindByStaffID(ctx, staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %d: %+v", staffID, err)
		return nil, err
	}
	if profile == nil || profile.User == nil {
		return nil, ErrStaffNotFound
	}

	user := profile.User
	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address
	profile.Department = req.Department
	if req.Role != "" {
		role := entity.StaffRole(req.Role)
		if !entity.ValidStaffRole(role) {
			return nil, ErrInvalidStaffRole
		}
		profile.Role = role
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user %d: %+v", user.ID, err)
		return nil, err
	}

	profile.User = nil
	if err := u.staffRepo.Update(ctx, profile); err != nil {
		u.log.Warnf("Failed to update staff profile %d: %+v", staffID, err)
		return nil, err
	}

	user.StaffProfile = profile
	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllStaff(ctx context.Context) (*dto.UserListResponse, error) {
	profiles, err := u.staffRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(profiles))
	for i := range profiles {
		if profiles[i].User == nil {
			continue
		}
		user := profiles[i].User
		user.StaffProfile = &profiles[i]
		responses = append(responses, *converter.UserToResponse(user))
	}

	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}
