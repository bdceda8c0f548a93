package mocks

import (
	"context"

	"github.com/addy-rall/mannkabackend/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc          func(ctx context.Context, booking *domain.Booking) error
	ListNewestFirstFunc func(ctx context.Context) ([]domain.Booking, error)
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// Create stores a booking
func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success with an assigned id
	booking.ID = "mock-booking-id"
	return nil
}

// ListNewestFirst returns all bookings, newest first
func (m *MockBookingRepository) ListNewestFirst(ctx context.Context) ([]domain.Booking, error) {
	if m.ListNewestFirstFunc != nil {
		return m.ListNewestFirstFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Booking{}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
