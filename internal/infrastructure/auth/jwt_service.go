package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/addy-rall/mannkabackend/domain"
)

// JWTServiceImpl implements domain.TokenService with HMAC-SHA256 signed
// tokens. Tokens are self-contained: validity is computable from the
// signature and expiry alone, with no server-side session state.
type JWTServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. Every failure mode collapses to
// ErrTokenInvalid so callers respond uniformly and cannot leak why a token
// was rejected.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	userID, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.TokenClaims{
		UserID:    uint(userID),
		Email:     email,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
