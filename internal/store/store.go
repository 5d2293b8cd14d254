package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

// Store keeps the courier's delivery collection. Every screen focus
// triggers a reload, so the list always reflects confirmations made on
// a just-visited detail screen; when a reload fails the previous
// snapshot stays visible rather than being cleared.
type Store struct {
	gw               deliveryGateway
	session          sessionContext
	logger           logx.Logger
	operationTimeout time.Duration
	reloads          counter

	mu       sync.Mutex
	snapshot []domain.Delivery
	loaded   bool
	dirty    bool
}

// New creates a delivery collection Store.
func New(gw deliveryGateway, session sessionContext, timeout time.Duration, logger logx.Logger, reloads counter) *Store {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Store{
		gw:               gw,
		session:          session,
		logger:           logger,
		operationTimeout: timeout,
		reloads:          reloads,
	}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Focus reloads the collection for the session user as a screen entry
// does, and returns the resulting view. On failure the stale snapshot
// comes back together with the error, so callers can keep rendering
// what the courier last saw.
func (s *Store) Focus(ctx context.Context) ([]domain.Delivery, error) {
	userID, err := s.session.CurrentUserID()
	if err != nil {
		return s.Snapshot(), err
	}
	epoch := s.session.Epoch()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	list, err := s.gw.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("delivery reload failed, keeping stale snapshot",
			logx.Int64("user_id", userID),
			logx.Any("err", err),
		)
		return s.Snapshot(), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The session changed while the fetch was in flight: user A's
	// deliveries must not show up under user B. The snapshot stays
	// dirty, so the next focus fetches again under the new session.
	if s.session.Epoch() != epoch {
		s.logger.Warn("discarding fetch from a previous session",
			logx.Int64("user_id", userID),
		)
		return s.snapshotLocked(), nil
	}

	s.snapshot = list
	s.loaded = true
	s.dirty = false
	if s.reloads != nil {
		s.reloads.Inc()
	}
	s.logger.Debug("delivery collection reloaded",
		logx.Int64("user_id", userID),
		logx.Int("count", len(list)),
	)
	return s.snapshotLocked(), nil
}

// Snapshot returns a copy of the most recently fetched collection.
func (s *Store) Snapshot() []domain.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []domain.Delivery {
	out := make([]domain.Delivery, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Loaded reports whether at least one fetch has succeeded.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Invalidate marks the snapshot stale. The confirmation workflow calls
// it after completing a delivery; the next focus refetches.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// Dirty reports whether the snapshot is known to be stale.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Create registers a new delivery owned by the session user. The
// backend assigns the id; the list picks the new record up on the next
// focus, so the local snapshot is only marked stale here.
func (s *Store) Create(ctx context.Context, n domain.NewDelivery) error {
	if err := validateNew(n); err != nil {
		return err
	}

	userID, err := s.session.CurrentUserID()
	if err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.gw.Create(ctx, n, userID); err != nil {
		return err
	}

	s.Invalidate()
	s.logger.Info("delivery created",
		logx.Int64("user_id", userID),
		logx.String("receiver", n.Receiver),
		logx.String("city", n.Address.City),
	)
	return nil
}

func validateNew(n domain.NewDelivery) error {
	required := map[string]string{
		"receiver":     n.Receiver,
		"cep":          n.Address.CEP,
		"street":       n.Address.Street,
		"number":       n.Address.Number,
		"neighborhood": n.Address.Neighborhood,
		"city":         n.Address.City,
		"state":        n.Address.State,
	}
	for name, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing %s: %w", name, apperr.Invalid)
		}
	}
	if !domain.ValidateCEP(n.Address.CEP) {
		return fmt.Errorf("malformed cep %q: %w", n.Address.CEP, apperr.Invalid)
	}
	return nil
}
