package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgPlantNotFound       = "plant not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgUpstreamData        = "malformed upstream data"
	ErrMsgUpstreamUnavailable = "upstream service unavailable"
	ErrMsgInvalidFrequency    = "task frequency must be at least one day"
	ErrMsgTxClosed            = "tx is closed"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput marks a client submission that cannot be attempted
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)

	// ErrUpstreamData marks a perception response that could not be decoded into an assessment
	ErrUpstreamData = errors.New(ErrMsgUpstreamData)

	// ErrUpstreamUnavailable marks a perception call that failed or timed out
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	ErrInvalidFrequency = errors.New(ErrMsgInvalidFrequency)
)
