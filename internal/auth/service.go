package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const tokenLifetime = 8 * time.Hour

// Claims represents JWT token claims for a personnel session
type Claims struct {
	PersonnelID uuid.UUID `json:"personnel_id"`
	Username    string    `json:"username"`
	jwt.RegisteredClaims
}

// AuthService issues and validates personnel session tokens
type AuthService struct {
	jwtSecret     string
	personnelRepo repository.PersonnelRepositoryInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret string, personnelRepo repository.PersonnelRepositoryInterface) *AuthService {
	return &AuthService{
		jwtSecret:     jwtSecret,
		personnelRepo: personnelRepo,
	}
}

// TokenResponse represents the response for token issuance
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	PersonnelID uuid.UUID `json:"personnel_id"`
	Username    string    `json:"username"`
}

// IssueToken generates a JWT for a registered personnel username
func (s *AuthService) IssueToken(username string) (*TokenResponse, error) {
	person, err := s.personnelRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to look up personnel: %w", err)
	}

	now := time.Now()
	claims := &Claims{
		PersonnelID: person.ID,
		Username:    person.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "aircraft-production-backend",
			Subject:   person.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
		PersonnelID: person.ID,
		Username:    person.Username,
	}, nil
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
