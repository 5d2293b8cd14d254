package confirm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/capture"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/logx"
)

// Phase is the tagged state of a confirmation workflow.
type Phase string

// Workflow phases. Loading precedes the fetch; NotFound, Viewed and
// Completed are terminal.
const (
	PhaseLoading    Phase = "loading"
	PhaseReady      Phase = "ready"
	PhaseViewed     Phase = "viewed"
	PhaseNotFound   Phase = "not_found"
	PhaseConfirming Phase = "confirming"
	PhaseCompleted  Phase = "completed"
)

// ErrInFlight is returned when Confirm is invoked while a submission
// is already in flight. The delivery has no concurrency token, so a
// second submission would be indistinguishable from a retry.
var ErrInFlight = errors.New("confirmation already in flight")

// Workflow drives one delivery from open to completed: it loads the
// target delivery, resolves its address for the map, accepts proof
// edits and submits the confirmation exactly once.
type Workflow struct {
	gw               deliveryGateway
	resolver         addressResolver
	camera           capture.Camera
	collection       collectionInvalidator
	logger           logx.Logger
	operationTimeout time.Duration
	rejected         counter

	deliveryID int64
	idemKey    string

	mu         sync.Mutex
	phase      Phase
	delivery   *domain.Delivery
	coordinate *domain.GeoCoordinate
	proof      domain.Proof
	lastErr    error
}

// New creates a confirmation workflow for one delivery. The
// idempotency key is generated here, once per workflow, so every
// submission attempt of this confirmation carries the same key.
func New(
	deliveryID int64,
	gw deliveryGateway,
	resolver addressResolver,
	camera capture.Camera,
	collection collectionInvalidator,
	timeout time.Duration,
	logger logx.Logger,
	rejected counter,
) *Workflow {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Workflow{
		gw:               gw,
		resolver:         resolver,
		camera:           camera,
		collection:       collection,
		logger:           logger,
		operationTimeout: timeout,
		rejected:         rejected,
		deliveryID:       deliveryID,
		idemKey:          uuid.NewString(),
		phase:            PhaseLoading,
	}
}

func (w *Workflow) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, w.operationTimeout)
}

// Load fetches the target delivery and settles the workflow into
// Ready (open delivery), Viewed (already completed) or NotFound. The
// map coordinate is resolved right after a successful fetch and never
// gates anything else.
func (w *Workflow) Load(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != PhaseLoading {
		w.mu.Unlock()
		return fmt.Errorf("load in phase %q: %w", w.phase, apperr.Invalid)
	}
	w.mu.Unlock()

	fetchCtx, cancel := w.withTimeout(ctx)
	defer cancel()

	d, err := w.gw.GetByID(fetchCtx, w.deliveryID)
	if err != nil {
		w.mu.Lock()
		w.phase = PhaseNotFound
		w.mu.Unlock()
		if errors.Is(err, apperr.NotFound) {
			return apperr.NotFound
		}
		return fmt.Errorf("load delivery %d: %w", w.deliveryID, err)
	}

	// Best-effort map pin; nil simply means no map section.
	coord := w.resolver.Resolve(ctx, d.Address)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.delivery = d
	w.coordinate = coord
	if d.Completed() {
		w.phase = PhaseViewed
	} else {
		w.phase = PhaseReady
	}
	return nil
}

// Phase returns the current workflow phase.
func (w *Workflow) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Delivery returns a copy of the loaded delivery, or nil before Load.
func (w *Workflow) Delivery() *domain.Delivery {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.delivery == nil {
		return nil
	}
	d := *w.delivery
	return &d
}

// Coordinate returns the resolved map pin, or nil when geocoding found
// nothing.
func (w *Workflow) Coordinate() *domain.GeoCoordinate {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.coordinate == nil {
		return nil
	}
	c := *w.coordinate
	return &c
}

// Proof returns the proof under edit.
func (w *Workflow) Proof() domain.Proof {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.proof
}

// SetReceivedBy records who received the parcel.
func (w *Workflow) SetReceivedBy(v string) error {
	return w.edit(func() { w.proof.ReceivedBy = strings.TrimSpace(v) })
}

// SetCPFReceiver records the receiver's document number.
func (w *Workflow) SetCPFReceiver(v string) error {
	return w.edit(func() { w.proof.CPFReceiver = strings.TrimSpace(v) })
}

// SetRelation records the receiver's relation to the addressee.
func (w *Workflow) SetRelation(v string) error {
	return w.edit(func() { w.proof.Relation = strings.TrimSpace(v) })
}

func (w *Workflow) edit(apply func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseReady {
		return fmt.Errorf("edit in phase %q: %w", w.phase, apperr.Invalid)
	}
	apply()
	return nil
}

// CapturePhoto acquires the proof photo. A cancelled capture (user
// cancel or denied permission) leaves no photo held and is reported
// as capture.ErrCancelled.
func (w *Workflow) CapturePhoto(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != PhaseReady {
		w.mu.Unlock()
		return fmt.Errorf("capture in phase %q: %w", w.phase, apperr.Invalid)
	}
	w.mu.Unlock()

	ref, err := w.camera.Capture(ctx)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != PhaseReady {
		return fmt.Errorf("capture landed in phase %q: %w", w.phase, apperr.Invalid)
	}
	w.proof.PhotoURL = string(ref)
	return nil
}

// Confirm submits the proof of receipt. It requires the three text
// fields and a held photo; anything missing is an IncompleteProof
// rejected before any backend call. Exactly one submission is in
// flight at a time; on backend failure the workflow returns to Ready
// with everything the courier entered preserved, and Confirm must be
// re-invoked explicitly.
func (w *Workflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	switch w.phase {
	case PhaseConfirming:
		w.mu.Unlock()
		return ErrInFlight
	case PhaseReady:
	default:
		phase := w.phase
		w.mu.Unlock()
		return fmt.Errorf("confirm in phase %q: %w", phase, apperr.Invalid)
	}

	if missing := w.proof.Missing(); len(missing) > 0 {
		w.mu.Unlock()
		if w.rejected != nil {
			w.rejected.Inc()
		}
		return fmt.Errorf("missing %s: %w", strings.Join(missing, ", "), apperr.IncompleteProof)
	}

	w.phase = PhaseConfirming
	proof := w.proof
	w.lastErr = nil
	w.mu.Unlock()

	subCtx, cancel := w.withTimeout(ctx)
	defer cancel()

	err := w.gw.Confirm(subCtx, w.deliveryID, proof, w.idemKey)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.phase = PhaseReady
		w.lastErr = err
		return fmt.Errorf("confirm delivery %d: %w", w.deliveryID, err)
	}

	w.phase = PhaseCompleted
	w.delivery.Status = domain.StatusCompleted
	w.delivery.Proof = proof
	if w.collection != nil {
		w.collection.Invalidate()
	}
	w.logger.Info("delivery confirmed",
		logx.Int64("delivery_id", w.deliveryID),
		logx.String("received_by", proof.ReceivedBy),
	)
	return nil
}

// LastError returns the error from the most recent failed submission,
// or nil. It is cleared when a new submission starts.
func (w *Workflow) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
