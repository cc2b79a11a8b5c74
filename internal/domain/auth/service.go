package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/holidaze/holidaze-api/internal/pkg/jwt"
	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
	"github.com/holidaze/holidaze-api/internal/pkg/session"
)

// API is the slice of the upstream client the auth service uses.
type API interface {
	Register(ctx context.Context, reg noroff.Registration) (*noroff.Profile, error)
	Login(ctx context.Context, creds noroff.Credentials) (*noroff.Account, error)
}

// Service proxies registration and login to the upstream API and manages
// local sessions on top of the upstream access token.
type Service struct {
	api         API
	sessions    session.Store
	jwt         *jwt.Service
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewService creates an auth service. rememberTTL is used instead of ttl
// when a login asks to be remembered.
func NewService(api API, sessions session.Store, jwtService *jwt.Service, ttl, rememberTTL time.Duration) *Service {
	return &Service{
		api:         api,
		sessions:    sessions,
		jwt:         jwtService,
		ttl:         ttl,
		rememberTTL: rememberTTL,
	}
}

// Register creates a profile upstream. No session is created; the client
// logs in afterwards.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*noroff.Profile, error) {
	profile, err := s.api.Register(ctx, noroff.Registration{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		VenueManager: req.VenueManager,
	})
	if err != nil {
		var apiErr *noroff.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return profile, nil
}

// Login authenticates upstream, stores a session holding the upstream
// token, and returns a signed session token for the client.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.api.Login(ctx, noroff.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var apiErr *noroff.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	sess := &session.Session{
		ID:            uuid.New(),
		ProfileName:   account.Name,
		Email:         account.Email,
		Avatar:        account.Avatar,
		Banner:        account.Banner,
		VenueManager:  account.VenueManager,
		UpstreamToken: account.AccessToken,
		Remember:      req.RememberMe,
		CreatedAt:     time.Now(),
	}

	ttl := s.ttl
	if req.RememberMe {
		ttl = s.rememberTTL
	}
	if err := s.sessions.Create(ctx, sess, ttl); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateSessionToken(sess.ID, sess.ProfileName, sess.VenueManager, ttl)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		Profile: SessionProfile{
			Name:         account.Name,
			Email:        account.Email,
			Avatar:       account.Avatar,
			Banner:       account.Banner,
			VenueManager: account.VenueManager,
		},
	}, nil
}

// Logout deletes the stored session, invalidating every token that
// references it.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Delete(ctx, sessionID)
}
