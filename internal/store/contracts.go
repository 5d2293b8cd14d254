package store

import (
	"context"

	"entrega-tracker/internal/domain"
)

// deliveryGateway defines the backend operations the store needs.
type deliveryGateway interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Delivery, error)
	Create(ctx context.Context, n domain.NewDelivery, userID int64) error
}

// sessionContext scopes every fetch to the authenticated user.
type sessionContext interface {
	CurrentUserID() (int64, error)
	Epoch() uint64
}

type counter interface {
	Inc()
}
