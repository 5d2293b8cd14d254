package domain

// Proof holds the receipt evidence captured when a delivery is handed
// over: who received it, their document number, their relation to the
// addressee and a photo taken at the handoff location. All fields are
// unset until confirmation and immutable afterwards.
type Proof struct {
	ReceivedBy  string
	CPFReceiver string
	Relation    string
	PhotoURL    string
}

// Complete reports whether all four proof fields are set.
func (p Proof) Complete() bool {
	return len(p.Missing()) == 0
}

// Missing returns the wire names of the unset proof fields, in a fixed
// order, so callers can tell the user exactly what is still needed.
func (p Proof) Missing() []string {
	var missing []string
	if p.ReceivedBy == "" {
		missing = append(missing, "received_by")
	}
	if p.CPFReceiver == "" {
		missing = append(missing, "cpf_receiver")
	}
	if p.Relation == "" {
		missing = append(missing, "relation")
	}
	if p.PhotoURL == "" {
		missing = append(missing, "photo_url")
	}
	return missing
}
