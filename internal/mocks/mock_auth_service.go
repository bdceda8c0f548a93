package mocks

import (
	"context"

	"github.com/addy-rall/mannkabackend/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc      func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc         func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetProfileFunc    func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error)
	DeleteAccountFunc func(ctx context.Context, userID uint) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	// Default behavior: success
	return &domain.AuthResult{
		User: &domain.User{
			ID:    1,
			Name:  in.Name,
			Age:   in.Age,
			Phone: in.Phone,
			Email: in.Email,
			State: in.State,
			City:  in.City,
		},
		Token: "mock-token",
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: invalid credentials
	return nil, domain.ErrInvalidCredentials
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies a partial profile change
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, upd)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// DeleteAccount removes a user's account
func (m *MockAuthService) DeleteAccount(ctx context.Context, userID uint) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
