package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"finsight/internal/user"
)

var (
	ErrInternalError = errors.New("internal Server Error")
)

type Service interface {
	// LoginURL issues a fresh state token and returns the provider consent
	// URL to redirect the browser to.
	LoginURL() (string, error)
	// HandleCallback verifies the state, exchanges the code and upserts the
	// user, returning the user plus a signed session token.
	HandleCallback(ctx context.Context, state, code string) (*user.User, string, error)
	SessionDuration() time.Duration
	SessionMiddleware() func(http.Handler) http.Handler
	CurrentUser(userID string) (*user.User, error)
}

type service struct {
	provider        IdentityProvider
	userService     user.Service
	stateManager    StateManagerInterface
	jwtManager      JWTManagerInterface
	sessionDuration time.Duration
}

func NewAuthService(
	provider IdentityProvider,
	userService user.Service,
	stateManager StateManagerInterface,
	jwtManager JWTManagerInterface,
	sessionDuration time.Duration,
) Service {
	return &service{
		provider:        provider,
		userService:     userService,
		stateManager:    stateManager,
		jwtManager:      jwtManager,
		sessionDuration: sessionDuration,
	}
}

func (s *service) LoginURL() (string, error) {
	state, err := s.stateManager.GenerateStateToken()
	if err != nil {
		return "", err
	}
	return s.provider.AuthCodeURL(state), nil
}

func (s *service) HandleCallback(ctx context.Context, state, code string) (*user.User, string, error) {
	if err := s.stateManager.VerifyStateToken(state); err != nil {
		return nil, "", err
	}

	profile, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return nil, "", err
	}

	u, err := s.userService.UpsertFromProvider("google", profile.Subject, profile.Email, profile.Name, profile.AvatarURL)
	if err != nil {
		return nil, "", fmt.Errorf("upsert user: %w", err)
	}

	token, err := s.jwtManager.GenerateSessionToken(u.ID, s.sessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}
	return u, token, nil
}

func (s *service) SessionDuration() time.Duration {
	return s.sessionDuration
}

func (s *service) CurrentUser(userID string) (*user.User, error) {
	return s.userService.GetUserByID(userID)
}
