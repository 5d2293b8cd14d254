package domain

type (
	// DeliveryStatus represents the lifecycle status of a delivery.
	DeliveryStatus string
)

// Delivery represents a parcel handoff record owned by a courier user,
// tracked from creation to confirmed receipt.
type Delivery struct {
	ID          int64
	OwnerUserID int64
	Receiver    string
	Address     Address
	Description string
	Status      DeliveryStatus
	Proof       Proof
}

// Address holds the structured postal address a delivery is bound to.
// All fields are immutable after creation.
type Address struct {
	CEP          string
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
}

// NewDelivery carries the fields a courier submits when creating a delivery.
// The server assigns the id; the status always starts as StatusInProgress.
type NewDelivery struct {
	Receiver    string
	Address     Address
	Description string
}

// Completed reports whether the delivery has been confirmed.
func (d Delivery) Completed() bool {
	return d.Status == StatusCompleted
}

// ConsistentProof reports whether the delivery honors the lifecycle
// invariant: completed exactly when all four proof fields are set.
func (d Delivery) ConsistentProof() bool {
	return d.Completed() == d.Proof.Complete()
}
