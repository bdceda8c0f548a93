package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/addy-rall/mannkabackend/domain"
	"github.com/addy-rall/mannkabackend/internal/validation"
)

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	validator   *validation.UserValidator
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		validator:   validation.NewUserValidator(),
	}
}

// Register implements domain.AuthService. The existence pre-check gives the
// friendly "already registered" message; the store's unique indexes are the
// actual serialization point, so a lost race still surfaces as a
// ConflictError from Create rather than a duplicate record.
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if !hasUppercase.MatchString(in.Password) || !hasDigit.MatchString(in.Password) {
		return nil, domain.NewValidationError("Password must include at least one number and one uppercase letter")
	}

	if err := s.validator.ValidateRegistration(in); err != nil {
		return nil, err
	}

	email := strings.ToLower(in.Email)

	// Email is checked before phone so a double collision always reports
	// the email conflict.
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, &domain.ConflictError{Field: "email", Message: "Email already registered"}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if _, err := s.userRepo.FindByPhone(ctx, in.Phone); err == nil {
		return nil, &domain.ConflictError{Field: "phone", Message: "Phone number already registered"}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         in.Name,
		Age:          in.Age,
		Phone:        in.Phone,
		Email:        email,
		State:        in.State,
		City:         in.City,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		var conflict *domain.ConflictError
		var invalid *domain.ValidationError
		if errors.As(err, &conflict) || errors.As(err, &invalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		// A registration must never succeed without a token.
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Login implements domain.AuthService. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Please provide email and password")
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// GetProfile implements domain.AuthService. Tokens are not revoked on
// deletion, so a stale token can reference a gone record; that resolves
// here as ErrUserNotFound.
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService. Only the whitelisted fields
// are applied, and only when present with a non-zero value.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(user, upd)

	if err := s.userRepo.Update(ctx, user); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) && conflict.Field == "phone" {
			return nil, &domain.ConflictError{Field: "phone", Message: "Phone number already in use"}
		}
		var invalid *domain.ValidationError
		if errors.As(err, &conflict) || errors.As(err, &invalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// applyProfileUpdate copies the provided fields onto the record. A nil
// pointer means the field was absent; a zero value is deliberately skipped
// as well, so {"age": 0} leaves the stored age unchanged. Absent and zero
// are distinguished here as separate branches to keep that boundary
// explicit.
func applyProfileUpdate(user *domain.User, upd domain.ProfileUpdate) {
	if upd.Name != nil && *upd.Name != "" {
		user.Name = *upd.Name
	}
	if upd.Age != nil && *upd.Age != 0 {
		user.Age = *upd.Age
	}
	if upd.Phone != nil && *upd.Phone != "" {
		user.Phone = *upd.Phone
	}
	if upd.State != nil && *upd.State != "" {
		user.State = *upd.State
	}
	if upd.City != nil && *upd.City != "" {
		user.City = *upd.City
	}
}

// DeleteAccount implements domain.AuthService. Outstanding tokens are not
// invalidated; subsequent profile reads resolve to ErrUserNotFound.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}
