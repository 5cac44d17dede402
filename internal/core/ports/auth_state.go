package ports

import (
	"context"

	"github.com/salonhub/salon-client/internal/core/domain"
)

// AuthStateNotifier publishes authentication-state transitions after the
// credential store has been mutated. The notifier never writes credentials
// itself.
type AuthStateNotifier interface {
	CurrentState(ctx context.Context) domain.AuthState
	NotifyChanged(ctx context.Context)
	Subscribe(listener func(domain.AuthState)) (unsubscribe func())
}
