package config

import "time"

var defaultAPI = API{
	BaseURL: "http://127.0.0.1:3000",
	Timeout: 10 * time.Second,
	Retry: Retry{
		MaxAttempts: 3,
		BaseDelay:   150 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	},
}

var defaultGeocode = Geocode{
	BaseURL: "https://api.opencagedata.com",
	Timeout: 5 * time.Second,
}

var defaultDebug = Debug{}

// DefaultAPI returns the default deliveries backend settings.
func DefaultAPI() API {
	return defaultAPI
}

// DefaultGeocode returns the default geocoding provider settings.
func DefaultGeocode() Geocode {
	return defaultGeocode
}

// DefaultDebug returns the default debug listener settings (disabled).
func DefaultDebug() Debug {
	return defaultDebug
}
