package usecase

import (
	"context"
	"testing"
	"time"

	"clinicore/config"
	"clinicore/internal/delivery/dto"
	"clinicore/internal/domain/entity"
	"clinicore/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 30 * time.Minute,
	})
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRegisterPatientAndLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	registered, err := uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "1990-04-12",
		Conditions:  "asthma",
	})
	if err != nil {
		t.Fatalf("RegisterPatient failed: %v", err)
	}
	if registered.UserType != "patient" {
		t.Errorf("expected user_type patient, got %s", registered.UserType)
	}
	if registered.Patient == nil || registered.Patient.PatientID == 0 {
		t.Fatal("expected a patient profile with a secondary id")
	}

	token, err := uc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if token.TokenType != "bearer" {
		t.Errorf("expected token_type bearer, got %s", token.TokenType)
	}
	if token.ExpiresIn != int64((30 * time.Minute).Seconds()) {
		t.Errorf("expected expires_in 1800, got %d", token.ExpiresIn)
	}

	claims, err := newTestJWTService().ValidateToken(token.AccessToken)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Errorf("expected claims user_id %d, got %d", registered.ID, claims.UserID)
	}
	if claims.UserType != entity.UserTypePatient {
		t.Errorf("expected claims user_type patient, got %s", claims.UserType)
	}
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	req := &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "1990-04-12",
	}
	if _, err := uc.RegisterPatient(ctx, req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := uc.RegisterPatient(ctx, req); err != ErrEmailAlreadyExists {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterPatientInvalidDate(t *testing.T) {
	uc := NewAuthUsecase(newTestLogger(), newFakeUserRepo(), newTestJWTService())

	_, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "12/04/1990",
	})
	if err != ErrInvalidDateFormat {
		t.Errorf("expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestRegisterStaffRoleInClaims(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	registered, err := uc.RegisterStaff(ctx, &dto.RegisterStaffRequest{
		Name:       "Dr Bob Lane",
		Email:      "bob@clinic.test",
		Password:   "secret1",
		Department: "Radiology",
		Role:       "radiologist",
	})
	if err != nil {
		t.Fatalf("RegisterStaff failed: %v", err)
	}
	if registered.Staff == nil || registered.Staff.Role != "radiologist" {
		t.Fatal("expected a staff profile with role radiologist")
	}

	token, err := uc.Login(ctx, &dto.LoginRequest{Email: "bob@clinic.test", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	claims, err := newTestJWTService().ValidateToken(token.AccessToken)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Role != entity.RoleRadiologist {
		t.Errorf("expected role radiologist in claims, got %s", claims.Role)
	}
}

func TestRegisterStaffInvalidRole(t *testing.T) {
	uc := NewAuthUsecase(newTestLogger(), newFakeUserRepo(), newTestJWTService())

	_, err := uc.RegisterStaff(context.Background(), &dto.RegisterStaffRequest{
		Name:     "Eve",
		Email:    "eve@clinic.test",
		Password: "secret1",
		Role:     "janitor",
	})
	if err != ErrInvalidStaffRole {
		t.Errorf("expected ErrInvalidStaffRole, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	if _, err := uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "1990-04-12",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"}); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	registered, err := uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "1990-04-12",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := uc.SetActive(ctx, registered.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "secret1"}); err != ErrAccountDeactivated {
		t.Errorf("expected ErrAccountDeactivated, got %v", err)
	}

	// Reactivation restores login.
	if _, err := uc.SetActive(ctx, registered.ID, true); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if _, err := uc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Errorf("expected login to succeed after reactivation, got %v", err)
	}
}

func TestSetActiveUnknownUser(t *testing.T) {
	uc := NewAuthUsecase(newTestLogger(), newFakeUserRepo(), newTestJWTService())

	if _, err := uc.SetActive(context.Background(), 42, false); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewAuthUsecase(newTestLogger(), userRepo, newTestJWTService())
	ctx := context.Background()

	registered, err := uc.RegisterPatient(ctx, &dto.RegisterPatientRequest{
		Name:        "Alice Moore",
		Email:       "alice@example.com",
		Password:    "secret1",
		DateOfBirth: "1990-04-12",
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	got, err := uc.GetCurrentUser(ctx, registered.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", got.Email)
	}

	if _, err := uc.GetCurrentUser(ctx, 999); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
