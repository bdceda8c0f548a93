package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/addy-rall/mannkabackend/domain"
	"github.com/addy-rall/mannkabackend/internal/http/middleware"
	"github.com/addy-rall/mannkabackend/internal/mocks"
)

func registeredUser() *domain.User {
	return &domain.User{
		ID:           1,
		Name:         "Asha Rao",
		Age:          30,
		Phone:        "9876543210",
		Email:        "a@x.com",
		State:        "KA",
		City:         "Bengaluru",
		PasswordHash: "hashed_Secret1",
	}
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter(authSvc domain.AuthService) *gin.Engine {
	h := NewAuthHandlers(authSvc)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	// Protected routes are exercised with the identity preset, the way the
	// middleware would leave it.
	withIdentity := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextUserEmail, "a@x.com")
	}
	r.GET("/api/auth/profile", withIdentity, h.Profile)
	r.PUT("/api/auth/profile", withIdentity, h.UpdateProfile)
	r.DELETE("/api/auth/profile", withIdentity, h.DeleteAccount)
	return r
}

func TestAuthHandlers_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           interface{}
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
		expectedMsg    string
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "successful registration",
			body: RegisterRequest{
				Name: "Asha Rao", Age: 30, Phone: "9876543210",
				Email: "a@x.com", City: "Bengaluru", State: "KA", Password: "Secret1",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
					return &domain.AuthResult{User: registeredUser(), Token: "issued-token"}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "User registered successfully", body["msg"])
				assert.Equal(t, "issued-token", body["token"])
				user := body["user"].(map[string]interface{})
				assert.Equal(t, "a@x.com", user["email"])
				assert.Equal(t, float64(30), user["age"])
				_, hasHash := user["password"]
				assert.False(t, hasHash, "response must never carry the password hash")
			},
		},
		{
			name: "duplicate email",
			body: RegisterRequest{
				Name: "Asha Rao", Age: 30, Phone: "9123456780",
				Email: "a@x.com", City: "Bengaluru", State: "KA", Password: "Secret1",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
					return nil, &domain.ConflictError{Field: "email", Message: "Email already registered"}
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Email already registered",
		},
		{
			name: "weak password",
			body: RegisterRequest{Email: "a@x.com", Password: "secret"},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
					return nil, domain.NewValidationError("Password must include at least one number and one uppercase letter")
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Password must include at least one number and one uppercase letter",
		},
		{
			name:           "malformed json",
			body:           nil,
			setupMocks:     func(authSvc *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request body",
		},
		{
			name: "internal failure is opaque",
			body: RegisterRequest{
				Name: "Asha Rao", Age: 30, Phone: "9876543210",
				Email: "a@x.com", City: "Bengaluru", State: "KA", Password: "Secret1",
			},
			setupMocks: func(authSvc *mocks.MockAuthService) {
				authSvc.RegisterFunc = func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
					return nil, errors.New("pq: connection refused")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Server Error during registration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			tt.setupMocks(authSvc)
			r := authRouter(authSvc)

			var w *httptest.ResponseRecorder
			if tt.body == nil {
				req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{not json"))
				req.Header.Set("Content-Type", "application/json")
				w = httptest.NewRecorder()
				r.ServeHTTP(w, req)
			} else {
				w = performJSON(t, r, http.MethodPost, "/api/auth/register", tt.body)
			}

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, body["msg"])
				return
			}
			tt.validateBody(t, body)
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful login", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return &domain.AuthResult{User: registeredUser(), Token: "issued-token"}, nil
		}

		w := performJSON(t, authRouter(authSvc), http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "a@x.com", Password: "Secret1"})

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Login successful", body["msg"])
		assert.Equal(t, "issued-token", body["token"])
	})

	t.Run("missing credentials", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return nil, domain.NewValidationError("Please provide email and password")
		}

		w := performJSON(t, authRouter(authSvc), http.MethodPost, "/api/auth/login", LoginRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"msg":"Please provide email and password"}`, w.Body.String())
	})

	t.Run("unknown email and wrong password are byte-identical", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			// The service collapses both cases into the same sentinel.
			return nil, domain.ErrInvalidCredentials
		}
		r := authRouter(authSvc)

		unknown := performJSON(t, r, http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "nobody@x.com", Password: "Secret1"})
		wrongPw := performJSON(t, r, http.MethodPost, "/api/auth/login",
			LoginRequest{Email: "a@x.com", Password: "WrongSecret9"})

		assert.Equal(t, http.StatusBadRequest, unknown.Code)
		assert.Equal(t, unknown.Code, wrongPw.Code)
		assert.Equal(t, unknown.Body.Bytes(), wrongPw.Body.Bytes())
		assert.JSONEq(t, `{"msg":"Invalid email or password"}`, unknown.Body.String())
	})
}

func TestAuthHandlers_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("profile returned without password hash", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.GetProfileFunc = func(ctx context.Context, userID uint) (*domain.User, error) {
			return registeredUser(), nil
		}

		w := performJSON(t, authRouter(authSvc), http.MethodGet, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "a@x.com", user["email"])
		assert.NotContains(t, w.Body.String(), "hashed_Secret1")
	})

	t.Run("deleted user resolves to 404", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService() // default: not found

		w := performJSON(t, authRouter(authSvc), http.MethodGet, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"User not found"}`, w.Body.String())
	})
}

func TestAuthHandlers_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial update applied", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		var received domain.ProfileUpdate
		authSvc.UpdateProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
			received = upd
			user := registeredUser()
			user.City = "Mysuru"
			return user, nil
		}

		w := performJSON(t, authRouter(authSvc), http.MethodPut, "/api/auth/profile",
			map[string]interface{}{"city": "Mysuru"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotNil(t, received.City)
		assert.Nil(t, received.Name)
		assert.Nil(t, received.Age)
		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Profile updated successfully", body["msg"])
	})

	t.Run("zero age reaches the service as present-but-zero", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		var received domain.ProfileUpdate
		authSvc.UpdateProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
			received = upd
			return registeredUser(), nil
		}

		w := performJSON(t, authRouter(authSvc), http.MethodPut, "/api/auth/profile",
			map[string]interface{}{"age": 0})

		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, received.Age) {
			assert.Equal(t, 0, *received.Age)
		}
	})

	t.Run("phone conflict", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.UpdateProfileFunc = func(ctx context.Context, userID uint, upd domain.ProfileUpdate) (*domain.User, error) {
			return nil, &domain.ConflictError{Field: "phone", Message: "Phone number already in use"}
		}

		w := performJSON(t, authRouter(authSvc), http.MethodPut, "/api/auth/profile",
			map[string]interface{}{"phone": "9123456780"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"msg":"Phone number already in use"}`, w.Body.String())
	})
}

func TestAuthHandlers_DeleteAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("successful deletion", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()

		w := performJSON(t, authRouter(authSvc), http.MethodDelete, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"msg":"Account deleted successfully"}`, w.Body.String())
	})

	t.Run("already gone", func(t *testing.T) {
		authSvc := mocks.NewMockAuthService()
		authSvc.DeleteAccountFunc = func(ctx context.Context, userID uint) error {
			return domain.ErrUserNotFound
		}

		w := performJSON(t, authRouter(authSvc), http.MethodDelete, "/api/auth/profile", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"User not found"}`, w.Body.String())
	})
}
