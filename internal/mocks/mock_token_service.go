package mocks

import (
	"fmt"
	"time"

	"github.com/addy-rall/mannkabackend/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, email string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate produces a session token for the user
func (m *MockTokenService) Generate(userID uint, email string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email)
	}
	// Default behavior: return a mock token
	return fmt.Sprintf("token_user_%d_%s", userID, email), nil
}

// Validate checks a session token and returns the embedded claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept any non-empty token as user 1
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now().Unix()
	return &domain.TokenClaims{
		UserID:    1,
		Email:     "user@example.com",
		IssuedAt:  now,
		ExpiresAt: now + 7*24*60*60,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
