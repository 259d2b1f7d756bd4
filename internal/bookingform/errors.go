package bookingform

import (
	"errors"
	"fmt"
)

var (
	// ErrLastPlayer rejects removing the only remaining player.
	ErrLastPlayer = errors.New("at least one player is required")

	// ErrFieldLocked rejects edits to date/package fields while the draft is
	// bound to a catalog event.
	ErrFieldLocked = errors.New("field is locked by the selected event")

	// ErrSubmitInFlight marks a re-entrant submit attempt. The duplicate
	// attempt performs no network call; the first submission keeps running.
	ErrSubmitInFlight = errors.New("a submission is already in progress")

	// ErrNotEditing rejects draft mutations outside the editing state.
	ErrNotEditing = errors.New("booking form is not open for editing")
)

// FieldError is one inline validation message tied to a form field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationFailed carries every field error collected by Validate.
// Submission is blocked until the list is empty; the network is never
// contacted.
type ValidationFailed struct {
	Fields []FieldError
}

func (e *ValidationFailed) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Error()
	}
	return fmt.Sprintf("%d fields failed validation", len(e.Fields))
}

// ConnectivityError means the submission never reached the backend. The
// draft is preserved and the user may retry.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot connect to booking service: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// RejectedError means the backend was reachable but refused the booking.
// Message carries the backend-provided reason when available.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "booking was rejected"
	}
	return e.Message
}
