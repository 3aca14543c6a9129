package handler

import "errors"

var (
	// ErrUnhandledInputState means a user row carries an input state the
	// conversation state machine has no branch for. Fatal for the turn.
	ErrUnhandledInputState = errors.New("no handler for user input state")

	// ErrBadCallbackData means a recognized callback command arrived with
	// an argument that does not parse. Fatal for the turn.
	ErrBadCallbackData = errors.New("invalid callback data")
)
