// Package auth implements the demo operator directory and JWT issuing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mukeshvesalapu/MediShield-DR/internal/domain/models"
)

const tokenTTL = 8 * time.Hour

// Claims is the JWT payload attached to authenticated requests.
type Claims struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type directoryEntry struct {
	user         models.User
	passwordHash []byte
}

// Service verifies operator credentials against an immutable directory and
// issues signed tokens. The directory is built once at construction; the
// service never mutates it afterwards.
type Service struct {
	directory map[string]directoryEntry
	secret    []byte
	logger    *zap.Logger
}

// NewService hashes the demo credential table and returns a ready directory.
func NewService(secret string, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}

	seed := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: 1, Username: "admin", Role: "Admin"}, "admin123"},
		{models.User{ID: 2, Username: "rescue", Role: "Rescue Team"}, "rescue123"},
		{models.User{ID: 3, Username: "doctor", Role: "Doctor"}, "doctor123"},
	}

	directory := make(map[string]directoryEntry, len(seed))
	for _, entry := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash credentials for %s: %w", entry.user.Username, err)
		}
		directory[entry.user.Username] = directoryEntry{user: entry.user, passwordHash: hash}
	}

	return &Service{directory: directory, secret: []byte(secret), logger: logger}, nil
}

// Login checks the credentials and issues a signed token on success.
func (s *Service) Login(username, password string) (*models.LoginResponse, error) {
	entry, ok := s.directory[username]
	if !ok {
		return nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		ID:       entry.user.ID,
		Username: entry.user.Username,
		Role:     entry.user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("operator logged in", zap.String("username", username), zap.String("role", entry.user.Role))

	return &models.LoginResponse{Token: token, User: entry.user}, nil
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidCredentials
	}
	return claims, nil
}
