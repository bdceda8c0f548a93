package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}

// BookingRepository defines booking data access operations
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListNewestFirst(ctx context.Context) ([]Booking, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// BookingService defines booking business logic
type BookingService interface {
	Create(ctx context.Context, booking *Booking) error
	List(ctx context.Context) ([]Booking, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint, email string) (string, error)
	Validate(token string) (*TokenClaims, error)
}
