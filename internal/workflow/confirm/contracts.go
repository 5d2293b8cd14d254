//go:generate mockgen -source=contracts.go -destination=confirm_mocks_test.go -package=confirm

package confirm

import (
	"context"

	"entrega-tracker/internal/domain"
)

// deliveryGateway defines the backend operations the workflow needs.
type deliveryGateway interface {
	GetByID(ctx context.Context, id int64) (*domain.Delivery, error)
	Confirm(ctx context.Context, id int64, proof domain.Proof, idemKey string) error
}

// addressResolver turns the delivery address into a map pin. It is
// best-effort: a nil coordinate means the map is simply absent.
type addressResolver interface {
	Resolve(ctx context.Context, addr domain.Address) *domain.GeoCoordinate
}

// collectionInvalidator is notified when a confirmation completes so
// the list view refetches on its next focus.
type collectionInvalidator interface {
	Invalidate()
}

type counter interface {
	Inc()
}
