package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const tokenTypeSession = "session"

// Claims represents session JWT claims. The token identifies a server-side
// session record; the upstream access token never leaves the server.
type Claims struct {
	SessionID    uuid.UUID `json:"session_id"`
	ProfileName  string    `json:"profile_name"`
	VenueManager bool      `json:"venue_manager"`
	Type         string    `json:"type"`
	jwt.RegisteredClaims
}

// Service handles JWT operations
type Service struct {
	secret []byte
}

// NewService creates JWT service
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// GenerateSessionToken generates a session token valid for ttl. The ttl is
// chosen per login (remember-me selects the long one), so it is a parameter
// rather than service state.
func (s *Service) GenerateSessionToken(sessionID uuid.UUID, profileName string, venueManager bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID:    sessionID,
		ProfileName:  profileName,
		VenueManager: venueManager,
		Type:         tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileName,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken validates and parses a session token
func (s *Service) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Type != tokenTypeSession {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
