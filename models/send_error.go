package models

import (
	"errors"
	"fmt"
)

// SendFailureKind classifies a failed outbound delivery. The dispatcher
// branches on this classification: undeliverable users trigger compensation
// (disable or delete) while transient failures surface as retry candidates.
type SendFailureKind int

const (
	// SendFailureTransient is any transport error that does not implicate
	// the recipient. Redelivery of the event may succeed.
	SendFailureTransient SendFailureKind = iota

	// SendFailureBlocked means the recipient has blocked the bot. The user
	// is unreachable until they re-initiate contact; compensation disables
	// the user.
	SendFailureBlocked

	// SendFailureDeactivated means the recipient's account no longer
	// exists. Compensation deletes the user.
	SendFailureDeactivated
)

// String returns the kind label used in log fields.
func (k SendFailureKind) String() string {
	switch k {
	case SendFailureBlocked:
		return "blocked"
	case SendFailureDeactivated:
		return "deactivated"
	default:
		return "transient"
	}
}

// SendError is the typed result of a failed delivery. It is returned by
// value from the delivery service, never panicked; callers match it with
// [errors.As] and branch on Kind.
type SendError struct {
	// Kind is the failure classification.
	Kind SendFailureKind

	// UserID is the recipient whose delivery failed.
	UserID int64

	// Cause is the underlying transport error.
	Cause error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send to user %d failed (%s): %v", e.UserID, e.Kind, e.Cause)
}

func (e *SendError) Unwrap() error {
	return e.Cause
}

// Undeliverable reports whether the failure implicates the recipient rather
// than the transport, i.e. whether redelivery is pointless.
func (e *SendError) Undeliverable() bool {
	return e.Kind == SendFailureBlocked || e.Kind == SendFailureDeactivated
}

// AsSendError extracts a *SendError from an error chain, if present.
func AsSendError(err error) (*SendError, bool) {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr, true
	}
	return nil, false
}
