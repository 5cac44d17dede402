package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/salonhub/salon-client/internal/api/metrics"
	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/ports"
)

// AuthStatePublisher is the single source of truth for "who is the current
// user". The state is derived from the credential store on every query so
// external mutations to storage are picked up on the next read; nothing is
// cached here.
type AuthStatePublisher struct {
	store ports.CredentialStore
	log   zerolog.Logger

	mu          sync.Mutex
	nextID      int
	subscribers []subscriber
}

type subscriber struct {
	id       int
	listener func(domain.AuthState)
}

func NewAuthStatePublisher(store ports.CredentialStore, log zerolog.Logger) *AuthStatePublisher {
	return &AuthStatePublisher{store: store, log: log}
}

// CurrentState reads the three credential keys and derives the state. It
// never returns an error: any store failure degrades to Anonymous, logged so
// genuine storage problems stay visible.
func (p *AuthStatePublisher) CurrentState(ctx context.Context) domain.AuthState {
	token, err := p.store.Get(ctx, domain.KeyToken)
	if err != nil {
		p.log.Warn().Err(err).Msg("credential read failed, treating session as anonymous")
		return domain.Anonymous
	}
	if token == "" {
		return domain.Anonymous
	}

	username, err := p.store.Get(ctx, domain.KeyUsername)
	if err != nil {
		p.log.Warn().Err(err).Msg("credential read failed, treating session as anonymous")
		return domain.Anonymous
	}
	role, err := p.store.Get(ctx, domain.KeyRole)
	if err != nil {
		p.log.Warn().Err(err).Msg("credential read failed, treating session as anonymous")
		return domain.Anonymous
	}

	return domain.AuthState{Authenticated: true, Username: username, Role: role}
}

// NotifyChanged publishes the current state to all subscribers, in
// subscription order. Delivery is fire-and-forget; it iterates a snapshot so
// a listener may unsubscribe (or subscribe) during delivery.
func (p *AuthStatePublisher) NotifyChanged(ctx context.Context) {
	state := p.CurrentState(ctx)

	label := "anonymous"
	if state.Authenticated {
		label = "authenticated"
	}
	metrics.AuthStateChangesTotal.WithLabelValues(label).Inc()

	p.mu.Lock()
	snapshot := make([]subscriber, len(p.subscribers))
	copy(snapshot, p.subscribers)
	p.mu.Unlock()

	for _, s := range snapshot {
		s.listener(state)
	}
}

// Subscribe registers a listener for every future publication and returns its
// unsubscribe function.
func (p *AuthStatePublisher) Subscribe(listener func(domain.AuthState)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subscribers = append(p.subscribers, subscriber{id: id, listener: listener})

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subscribers {
			if s.id == id {
				p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
				return
			}
		}
	}
}
