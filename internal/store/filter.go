package store

import (
	"strings"

	"entrega-tracker/internal/domain"
)

// Filter returns the deliveries matching a live search query, with an
// optional status predicate on top. The query is a case-insensitive
// substring match against receiver, city, neighborhood and state (OR
// across fields); an empty query matches everything. Both list views
// share this one function so their predicates cannot drift apart.
func Filter(list []domain.Delivery, query string, keep func(domain.Delivery) bool) []domain.Delivery {
	if query == "" && keep == nil {
		return list
	}

	q := strings.ToLower(query)
	out := make([]domain.Delivery, 0, len(list))
	for _, d := range list {
		if keep != nil && !keep(d) {
			continue
		}
		if matchesQuery(d, q) {
			out = append(out, d)
		}
	}
	return out
}

// CompletedOnly is the status predicate of the completed-deliveries view.
func CompletedOnly(d domain.Delivery) bool {
	return d.Completed()
}

func matchesQuery(d domain.Delivery, q string) bool {
	if q == "" {
		return true
	}
	for _, field := range [...]string{
		d.Receiver,
		d.Address.City,
		d.Address.Neighborhood,
		d.Address.State,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
