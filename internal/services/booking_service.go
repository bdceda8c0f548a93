package services

import (
	"context"
	"fmt"

	"github.com/addy-rall/mannkabackend/domain"
)

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookingRepo domain.BookingRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo domain.BookingRepository) domain.BookingService {
	return &BookingServiceImpl{bookingRepo: bookingRepo}
}

// Create implements domain.BookingService. Requirements and the terms flag
// are optional; everything else is required.
func (s *BookingServiceImpl) Create(ctx context.Context, booking *domain.Booking) error {
	if booking.Temple == "" || booking.FirstName == "" || booking.LastName == "" ||
		booking.Email == "" || booking.Phone == "" || booking.Date == "" ||
		booking.Time == "" || booking.People == 0 {
		return domain.NewValidationError("Missing required fields")
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// List implements domain.BookingService, newest bookings first.
func (s *BookingServiceImpl) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
