package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/addy-rall/mannkabackend/domain"
)

// BookingRepositoryImpl implements domain.BookingRepository using GORM
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// DBBooking represents the database model for Booking
type DBBooking struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Temple       string    `gorm:"size:255;not null"`
	FirstName    string    `gorm:"size:128;not null"`
	LastName     string    `gorm:"size:128;not null"`
	Email        string    `gorm:"size:255;not null"`
	Phone        string    `gorm:"size:32;not null"`
	Date         string    `gorm:"size:32;not null"`
	Time         string    `gorm:"size:32;not null"`
	People       int       `gorm:"not null"`
	Requirements string    `gorm:"type:text"`
	Terms        bool
	CreatedAt    time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBBooking) TableName() string {
	return "bookings"
}

// BeforeCreate assigns the store-side identifier.
func (b *DBBooking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) domain.BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

// Create implements domain.BookingRepository
func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *domain.Booking) error {
	dbBooking := r.domainToDB(booking)
	if err := r.db.WithContext(ctx).Create(dbBooking).Error; err != nil {
		return err
	}
	booking.ID = dbBooking.ID
	booking.CreatedAt = dbBooking.CreatedAt
	return nil
}

// ListNewestFirst implements domain.BookingRepository
func (r *BookingRepositoryImpl) ListNewestFirst(ctx context.Context) ([]domain.Booking, error) {
	var dbBookings []DBBooking
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dbBookings).Error
	if err != nil {
		return nil, err
	}
	bookings := make([]domain.Booking, 0, len(dbBookings))
	for i := range dbBookings {
		bookings = append(bookings, *r.dbToDomain(&dbBookings[i]))
	}
	return bookings, nil
}

func (r *BookingRepositoryImpl) domainToDB(booking *domain.Booking) *DBBooking {
	return &DBBooking{
		ID:           booking.ID,
		Temple:       booking.Temple,
		FirstName:    booking.FirstName,
		LastName:     booking.LastName,
		Email:        booking.Email,
		Phone:        booking.Phone,
		Date:         booking.Date,
		Time:         booking.Time,
		People:       booking.People,
		Requirements: booking.Requirements,
		Terms:        booking.Terms,
		CreatedAt:    booking.CreatedAt,
	}
}

func (r *BookingRepositoryImpl) dbToDomain(dbBooking *DBBooking) *domain.Booking {
	return &domain.Booking{
		ID:           dbBooking.ID,
		Temple:       dbBooking.Temple,
		FirstName:    dbBooking.FirstName,
		LastName:     dbBooking.LastName,
		Email:        dbBooking.Email,
		Phone:        dbBooking.Phone,
		Date:         dbBooking.Date,
		Time:         dbBooking.Time,
		People:       dbBooking.People,
		Requirements: dbBooking.Requirements,
		Terms:        dbBooking.Terms,
		CreatedAt:    dbBooking.CreatedAt,
	}
}
