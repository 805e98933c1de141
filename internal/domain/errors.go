package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrEmptyScript    = errors.New("script has no messages")
	ErrInvalidFormat  = errors.New("generated content has an invalid format")
	ErrFeatureUnknown = errors.New("unknown feature")
)
