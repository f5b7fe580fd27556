package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the authenticated identity carried through the system.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenGenerator creates and validates bearer tokens.
type TokenGenerator interface {
	GenerateAccessToken(userID int64, name string) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// ServiceAPI is the surface the HTTP handler depends on.
type ServiceAPI interface {
	Register(dto RegisterDTO) (int64, error)
	Authenticate(dto LoginDTO) (LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

// Claims represents JWT token claims. UserID is the string form of the user's
// numeric id, matching the subject claim.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)
