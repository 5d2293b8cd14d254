package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed against the deliveries backend
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed against the deliveries backend",
	})
}

// NewGeocodeFailuresTotal returns a Prometheus counter for geocoding lookups that yielded no coordinate
func NewGeocodeFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_failures_total",
		Help: "Total number of geocoding lookups that yielded no coordinate",
	})
}

// NewStoreReloadsTotal returns a Prometheus counter for delivery collection reloads
func NewStoreReloadsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_reloads_total",
		Help: "Total number of delivery collection reloads",
	})
}

// NewConfirmationsRejectedTotal returns a Prometheus counter for confirmations rejected locally before any backend call
func NewConfirmationsRejectedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "confirmations_rejected_total",
		Help: "Total number of confirmations rejected locally before any backend call",
	})
}
