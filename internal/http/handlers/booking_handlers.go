package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addy-rall/mannkabackend/domain"
)

// BookingHandlers handles booking HTTP requests
type BookingHandlers struct {
	bookingSvc domain.BookingService
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingSvc: bookingSvc}
}

// BookingRequest represents a booking submission
type BookingRequest struct {
	Temple       string `json:"temple"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	People       int    `json:"people"`
	Requirements string `json:"requirements"`
	Terms        bool   `json:"terms"`
}

// Create handles booking submission
func (h *BookingHandlers) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	booking := &domain.Booking{
		Temple:       req.Temple,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		People:       req.People,
		Requirements: req.Requirements,
		Terms:        req.Terms,
	}

	if err := h.bookingSvc.Create(c.Request.Context(), booking); err != nil {
		var invalid *domain.ValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		log.Printf("BOOKING_CREATE_FAILED: temple=%s error=%v", req.Temple, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// List handles fetching all bookings, newest first
func (h *BookingHandlers) List(c *gin.Context) {
	bookings, err := h.bookingSvc.List(c.Request.Context())
	if err != nil {
		log.Printf("BOOKING_LIST_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
