package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a booking session id does not
// resolve to a stored draft (expired TTL or never created).
var ErrSessionNotFound = errors.New("booking session not found or expired")

// FlowError codes surfaced to the presentation layer.
const (
	CodeInvalidSelection = "invalidSelection"
	CodeSlotUnavailable  = "slotUnavailable"
	CodeDuplicateBooking = "duplicateBooking"
	CodeSlotConflict     = "slotConflict"
)

type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidSelectionError(msg string) error {
	return &FlowError{Code: CodeInvalidSelection, Message: msg}
}

func NewSlotUnavailableError(msg string) error {
	return &FlowError{Code: CodeSlotUnavailable, Message: msg}
}
