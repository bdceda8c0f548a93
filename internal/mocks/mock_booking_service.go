package mocks

import (
	"context"

	"github.com/addy-rall/mannkabackend/domain"
)

// MockBookingService implements domain.BookingService interface for testing
type MockBookingService struct {
	CreateFunc func(ctx context.Context, booking *domain.Booking) error
	ListFunc   func(ctx context.Context) ([]domain.Booking, error)
}

// NewMockBookingService creates a new MockBookingService with default behaviors
func NewMockBookingService() *MockBookingService {
	return &MockBookingService{}
}

// Create submits a booking
func (m *MockBookingService) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success with an assigned id
	booking.ID = "mock-booking-id"
	return nil
}

// List returns all bookings, newest first
func (m *MockBookingService) List(ctx context.Context) ([]domain.Booking, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty list
	return []domain.Booking{}, nil
}

// Compile-time interface compliance verification
var _ domain.BookingService = (*MockBookingService)(nil)
