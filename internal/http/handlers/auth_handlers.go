package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addy-rall/mannkabackend/domain"
	"github.com/addy-rall/mannkabackend/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request. Field rules are
// enforced by the service so every violation is reported with its exact
// message, not by binding tags.
type RegisterRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	City     string `json:"city"`
	State    string `json:"state"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile change. Pointers
// distinguish absent fields from present-but-zero ones; both are no-ops,
// but the branch is explicit in the service.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Age   *int    `json:"age"`
	Phone *string `json:"phone"`
	State *string `json:"state"`
	City  *string `json:"city"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Age:      req.Age,
		Phone:    req.Phone,
		Email:    req.Email,
		City:     req.City,
		State:    req.State,
		Password: req.Password,
	})
	if err != nil {
		var invalid *domain.ValidationError
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &invalid), errors.As(err, &conflict):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		default:
			log.Printf("REGISTRATION_FAILED: email=%s error=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error during registration"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":   "User registered successfully",
		"token": result.Token,
		"user":  result.User.Profile(),
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var invalid *domain.ValidationError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid email or password"})
		default:
			log.Printf("LOGIN_FAILED: email=%s error=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error during login"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":   "Login successful",
		"token": result.Token,
		"user":  result.User.Profile(),
	})
}

// Profile handles fetching the authenticated user's profile
func (h *AuthHandlers) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	user, err := h.authSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("PROFILE_FETCH_FAILED: user_id=%d error=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Profile()})
}

// UpdateProfile handles partial profile updates
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, domain.ProfileUpdate{
		Name:  req.Name,
		Age:   req.Age,
		Phone: req.Phone,
		State: req.State,
		City:  req.City,
	})
	if err != nil {
		var invalid *domain.ValidationError
		var conflict *domain.ConflictError
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		case errors.As(err, &invalid), errors.As(err, &conflict):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		default:
			log.Printf("PROFILE_UPDATE_FAILED: user_id=%d error=%v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error during update"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg":  "Profile updated successfully",
		"user": user.Profile(),
	})
}

// DeleteAccount handles account deletion
func (h *AuthHandlers) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "No token, authorization denied"})
		return
	}

	if err := h.authSvc.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
			return
		}
		log.Printf("ACCOUNT_DELETE_FAILED: user_id=%d error=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error during deletion"})
		return
	}

	log.Printf("ACCOUNT_DELETED: user_id=%d", userID)
	c.JSON(http.StatusOK, gin.H{"msg": "Account deleted successfully"})
}
