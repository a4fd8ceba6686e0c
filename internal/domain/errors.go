package domain

import "errors"

// Common domain errors
var (
	ErrMissingField       = errors.New("required field missing")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrDeliveryFailed     = errors.New("contact delivery failed")
	ErrContactUnavailable = errors.New("contact service is not configured")
	ErrEmptyURL           = errors.New("url is required")
)
