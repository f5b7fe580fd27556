package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository persists identity records.
type UserRepository interface {
	CreateUser(name, email, passwordHash string) (int64, error)
	GetCredentialsForEmail(email string) (passwordHash string, userID int64, name string, err error)
}

// Service performs registration and authentication.
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Register validates the payload, hashes the password and stores the user.
// Emails are lowercased so uniqueness is case-insensitive.
func (s *Service) Register(dto RegisterDTO) (int64, error) {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))

	if err := dto.Validate(); err != nil {
		return 0, err
	}

	hash, err := s.HashPassword(dto.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.CreateUser(dto.Name, dto.Email, hash)
}

// Authenticate verifies credentials and issues a bearer token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	storedHash, userID, name, err := s.userRepo.GetCredentialsForEmail(email)
	if err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}

	if !CheckPassword(dto.Password, storedHash) {
		return LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(userID, name)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: token,
		Name:  name,
	}, nil
}

// ValidateAccessToken validates a bearer token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password. The salt is random, so
// hashing the same input twice yields different outputs.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash. Malformed
// hashes simply fail the comparison.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateAccessToken creates a signed token that expires after the
// configured TTL.
func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, name string) (string, error) {
	now := time.Now()
	subject := strconv.FormatInt(userID, 10)

	claims := &Claims{
		UserID: subject,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   subject,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies signature and expiry and returns the claims. Any
// malformed, mis-signed or expired token is rejected.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
