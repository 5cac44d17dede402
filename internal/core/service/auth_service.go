package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/ports"
)

// AuthService orchestrates the login workflow: call the API, persist the
// credential, publish the new state. Subscribers are notified strictly after
// the store mutation so they always observe the post-condition.
type AuthService struct {
	api      ports.APIClient
	store    ports.CredentialStore
	notifier ports.AuthStateNotifier
	log      zerolog.Logger
}

func NewAuthService(api ports.APIClient, store ports.CredentialStore, notifier ports.AuthStateNotifier, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, store: store, notifier: notifier, log: log}
}

// Login authenticates against the backend and caches {token, role, username}
// from the response. The token stays opaque; claims are never read from it.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, domain.KeyToken, resp.Token); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, domain.KeyRole, resp.Role); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, domain.KeyUsername, resp.Username); err != nil {
		return nil, err
	}

	s.notifier.NotifyChanged(ctx)

	s.log.Info().Str("username", resp.Username).Str("role", resp.Role).Msg("logged in")
	return resp, nil
}

// Logout clears all three credential keys and publishes the anonymous state.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, domain.KeyToken); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, domain.KeyRole); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, domain.KeyUsername); err != nil {
		return err
	}

	s.notifier.NotifyChanged(ctx)

	s.log.Info().Msg("logged out")
	return nil
}

func (s *AuthService) Token(ctx context.Context) (string, error) {
	return s.store.Get(ctx, domain.KeyToken)
}

func (s *AuthService) Role(ctx context.Context) (string, error) {
	return s.store.Get(ctx, domain.KeyRole)
}

func (s *AuthService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
