package deliveryapi

import (
	"context"
	"errors"
	"time"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

type api interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Delivery, error)
	GetByID(ctx context.Context, id int64) (*domain.Delivery, error)
	Create(ctx context.Context, n domain.NewDelivery, userID int64) error
	Confirm(ctx context.Context, id int64, proof domain.Proof, idemKey string) error
	Login(ctx context.Context, email, password string) (int64, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes the backoff applied to read-only calls.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingClient retries read-only backend calls with bounded
// exponential backoff. Create, Confirm and Login pass through without
// retry: a duplicate submission would be indistinguishable from a
// retry to the backend.
type RetryingClient struct {
	next    api
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingClient wraps next with read-only retries.
func NewRetryingClient(next api, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingClient {
	if next == nil {
		return nil
	}
	return &RetryingClient{next: next, logger: logger, retries: retries, cfg: cfg, sleep: time.Sleep}
}

// ListByUser fetches all deliveries owned by the given user, retrying
// transport-level failures.
func (g *RetryingClient) ListByUser(ctx context.Context, userID int64) ([]domain.Delivery, error) {
	return retryCall(ctx, g, "ListByUser", func() ([]domain.Delivery, error) {
		return g.next.ListByUser(ctx, userID)
	})
}

// GetByID fetches a single delivery by id, retrying transport-level
// failures.
func (g *RetryingClient) GetByID(ctx context.Context, id int64) (*domain.Delivery, error) {
	return retryCall(ctx, g, "GetByID", func() (*domain.Delivery, error) {
		return g.next.GetByID(ctx, id)
	})
}

// Create passes through unretried.
func (g *RetryingClient) Create(ctx context.Context, n domain.NewDelivery, userID int64) error {
	return g.next.Create(ctx, n, userID)
}

// Confirm passes through unretried.
func (g *RetryingClient) Confirm(ctx context.Context, id int64, proof domain.Proof, idemKey string) error {
	return g.next.Confirm(ctx, id, proof, idemKey)
}

// Login passes through unretried.
func (g *RetryingClient) Login(ctx context.Context, email, password string) (int64, error) {
	return g.next.Login(ctx, email, password)
}

func retryCall[T any](ctx context.Context, g *RetryingClient, method string, fn func() (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		v, err := fn()
		if err == nil {
			return v, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("delivery api retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, g.sleep, delay) {
			break
		}
	}
	return zero, lastErr
}

// isRetryable limits retries to transport-level failures. A missing
// delivery or a dead session does not heal with waiting.
func isRetryable(err error) bool {
	return errors.Is(err, apperr.Unavailable)
}

// backoff computes the delay before the next attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, sleep func(time.Duration), d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
