package cli

import (
	"context"

	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/workflow/confirm"
)

type deliveryStore interface {
	Focus(ctx context.Context) ([]domain.Delivery, error)
	Create(ctx context.Context, n domain.NewDelivery) error
}

type sessionContext interface {
	CurrentUserID() (int64, error)
	Login(userID int64) error
	Logout() error
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (int64, error)
}

// Workflow is the slice of the confirmation workflow the commands drive.
type Workflow interface {
	Load(ctx context.Context) error
	Phase() confirm.Phase
	Delivery() *domain.Delivery
	Coordinate() *domain.GeoCoordinate
	SetReceivedBy(v string) error
	SetCPFReceiver(v string) error
	SetRelation(v string) error
	CapturePhoto(ctx context.Context) error
	Confirm(ctx context.Context) error
}

// WorkflowFactory builds a confirmation workflow for one delivery.
// photoSource is the local image the proof photo is taken from; empty
// means the courier supplied none.
type WorkflowFactory func(deliveryID int64, photoSource string) Workflow
