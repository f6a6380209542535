package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinicore/internal/converter"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
	"clinicore/internal/domain/repository"
	"clinicore/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("user account is deactivated")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStaffRole   = errors.New("invalid staff role")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
	SetActive(ctx context.Context, userID int64, active bool) (*dto.ActivationResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     &active,
		UserType:     entity.UserTypePatient,
		PatientProfile: &entity.PatientProfile{
			DateOfBirth: &dob,
			Conditions:  req.Conditions,
		},
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*dto.UserResponse, error) {
	role := entity.StaffRole(req.Role)
	if !entity.ValidStaffRole(role) {
		return nil, ErrInvalidStaffRole
	}

	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     &active,
		UserType:     entity.UserTypeStaff,
		StaffProfile: &entity.StaffProfile{
			Department: req.Department,
			Role:       role,
		},
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	// Generic error whether the email is unknown or the password is wrong,
	// to prevent user enumeration. bcrypt comparison is constant-time.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active() {
		return nil, ErrAccountDeactivated
	}

	var role entity.StaffRole
	if user.UserType == entity.UserTypeStaff && user.StaffProfile != nil {
		role = user.StaffProfile.Role
	}

	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.UserType, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:        converter.UserToResponse(user),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// SetActive toggles the activation flag. Already-issued tokens remain valid
// until they expire; only new logins are affected.
func (u *authUsecase) SetActive(ctx context.Context, userID int64, active bool) (*dto.ActivationResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.userRepo.SetActive(ctx, userID, active); err != nil {
		u.log.Warnf("Failed to update activation for user %d: %+v", userID, err)
		return nil, err
	}

	return &dto.ActivationResponse{
		UserID:   userID,
		IsActive: active,
	}, nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation on
// the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
