package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/addy-rall/mannkabackend/domain"
	"github.com/addy-rall/mannkabackend/internal/validation"
)

// uniqueFields lists the unique user columns in declaration order. When a
// write violates more than one constraint the first match wins, so email is
// always reported before phone.
var uniqueFields = []string{"email", "phone"}

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db        *gorm.DB
	validator *validation.UserValidator
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Age          int       `gorm:"not null"`
	Phone        string    `gorm:"uniqueIndex;size:32;not null"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	State        string    `gorm:"size:128;not null"`
	City         string    `gorm:"size:128;not null"`
	PasswordHash string    `gorm:"column:password;size:255;not null"`
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{
		db:        db,
		validator: validation.NewUserValidator(),
	}
}

// Create implements domain.UserRepository. Field rules are re-checked at
// this boundary as a second line of defense, and unique-index violations
// surface as ConflictError naming the colliding field.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	if err := r.validator.ValidateRecord(user); err != nil {
		return err
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if conflict := translateConflict(err); conflict != nil {
			return conflict
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	if err := r.validator.ValidateRecord(user); err != nil {
		return err
	}
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Save(dbUser).Error; err != nil {
		if conflict := translateConflict(err); conflict != nil {
			return conflict
		}
		return err
	}
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

// Delete implements domain.UserRepository. Deleting an absent record
// reports ErrUserNotFound, not success.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBUser{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// translateConflict maps a driver-level unique violation to a
// domain.ConflictError, or returns nil for unrelated errors. Postgres
// reports SQLSTATE 23505 with the constraint name; SQLite (used by the
// tests) reports the column in the message text.
func translateConflict(err error) *domain.ConflictError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return nil
		}
		for _, field := range uniqueFields {
			if strings.Contains(pgErr.ConstraintName, field) {
				return &domain.ConflictError{Field: field}
			}
		}
		return &domain.ConflictError{Field: pgErr.ConstraintName}
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique constraint") && !strings.Contains(msg, "duplicate key") {
		return nil
	}
	for _, field := range uniqueFields {
		if strings.Contains(msg, field) {
			return &domain.ConflictError{Field: field}
		}
	}
	return &domain.ConflictError{Field: "record"}
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		Name:         user.Name,
		Age:          user.Age,
		Phone:        user.Phone,
		Email:        strings.ToLower(user.Email),
		State:        user.State,
		City:         user.City,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Age:          dbUser.Age,
		Phone:        dbUser.Phone,
		Email:        dbUser.Email,
		State:        dbUser.State,
		City:         dbUser.City,
		PasswordHash: dbUser.PasswordHash,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
