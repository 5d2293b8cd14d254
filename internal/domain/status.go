package domain

import "regexp"

// List of possible delivery statuses. The backend stores the
// Portuguese display values, so they are the wire values too.
const (
	StatusInProgress DeliveryStatus = "Em andamento"
	StatusCompleted  DeliveryStatus = "Concluído"
)

// List of allowed statuses
var allowedStatuses = [...]DeliveryStatus{
	StatusInProgress, StatusCompleted,
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// reCEP is a regex to validate Brazilian postal codes (12345-678 or 12345678)
var reCEP = regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`)

// ValidateCEP validates the postal code format
func ValidateCEP(s string) bool {
	return reCEP.MatchString(s)
}
