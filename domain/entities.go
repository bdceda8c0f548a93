package domain

import "time"

// User represents a registered user in the system
type User struct {
	ID           uint
	Name         string
	Age          int
	Phone        string
	Email        string
	State        string
	City         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile returns the public projection of the user. The password hash is
// never part of it.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		State: u.State,
		City:  u.City,
		Age:   u.Age,
	}
}

// UserProfile is the user representation returned to clients
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	State string `json:"state"`
	City  string `json:"city"`
	Age   int    `json:"age"`
}

// RegisterInput carries the fields submitted on registration
type RegisterInput struct {
	Name     string
	Age      int
	Phone    string
	Email    string
	City     string
	State    string
	Password string
}

// ProfileUpdate carries a partial profile change. A nil pointer means the
// field was absent from the request; a pointer to a zero value is treated
// the same way (omit-to-leave-unchanged semantics).
type ProfileUpdate struct {
	Name  *string
	Age   *int
	Phone *string
	State *string
	City  *string
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// TokenClaims represents the identity embedded in a session token
type TokenClaims struct {
	UserID    uint   `json:"id"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Booking represents a darshan booking request. Bookings are not linked to
// user accounts; they are created once and only ever read back.
type Booking struct {
	ID           string    `json:"id"`
	Temple       string    `json:"temple"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	People       int       `json:"people"`
	Requirements string    `json:"requirements"`
	Terms        bool      `json:"terms"`
	CreatedAt    time.Time `json:"createdAt"`
}
