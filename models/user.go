package models

import (
	"fmt"
	"time"
)

// UserInputState is the persisted conversation cursor: it determines how the
// next free-form message from the user is interpreted by the message handler.
// It survives process restarts because it is stored on the users row.
type UserInputState int16

const (
	// InputStateNone means no conversational flow is in progress.
	InputStateNone UserInputState = 0

	// InputStateSetTimeZone awaits a location share to resolve the timezone.
	InputStateSetTimeZone UserInputState = 1

	// InputStateConfirmTimeZone awaits a yes/no answer on the resolved zone.
	InputStateConfirmTimeZone UserInputState = 2

	// InputStateSetFrequency awaits one of the repeat-frequency labels.
	InputStateSetFrequency UserInputState = 3

	// InputStateAwaitingPhraseAdding awaits a new vocabulary phrase.
	InputStateAwaitingPhraseAdding UserInputState = 10

	// InputStateAwaitingPhraseTranslation awaits the translation for the
	// phrase added on the previous turn.
	InputStateAwaitingPhraseTranslation UserInputState = 11
)

// Validate reports whether the state is one of the declared values.
// Assigning an undeclared value must fail here, not at persistence time.
func (s UserInputState) Validate() error {
	switch s {
	case InputStateNone,
		InputStateSetTimeZone,
		InputStateConfirmTimeZone,
		InputStateSetFrequency,
		InputStateAwaitingPhraseAdding,
		InputStateAwaitingPhraseTranslation:
		return nil
	default:
		return fmt.Errorf("%w: UserInputState(%d)", ErrUnknownInputState, int16(s))
	}
}

// String returns a human-readable label, used only for logging.
func (s UserInputState) String() string {
	switch s {
	case InputStateNone:
		return "None"
	case InputStateSetTimeZone:
		return "SetTimeZone"
	case InputStateConfirmTimeZone:
		return "ConfirmTimeZone"
	case InputStateSetFrequency:
		return "SetFrequency"
	case InputStateAwaitingPhraseAdding:
		return "AwaitingPhraseAdding"
	case InputStateAwaitingPhraseTranslation:
		return "AwaitingPhraseTranslation"
	default:
		return fmt.Sprintf("UserInputState(%d)", int16(s))
	}
}

// User represents one chat participant. The ID is the opaque identifier
// assigned by the chat channel and is stable across the conversation.
//
// A User exclusively owns its settings row and its phrases; deleting a user
// cascades to both at the storage layer.
type User struct {
	// ID is the chat-channel user identifier, used as the primary key.
	ID int64 `json:"id"`

	// IsDisabled marks a user that proved temporarily unreachable
	// (e.g. blocked the bot). Disabled users are re-enabled when they
	// initiate contact again.
	IsDisabled bool `json:"is_disabled"`

	// InputState is the conversation cursor for this user.
	InputState UserInputState `json:"input_state"`

	// Created is the timestamp of the first onboarding event.
	Created time.Time `json:"created"`

	// Updated is bumped on every lifecycle or state change.
	Updated time.Time `json:"updated"`
}

// NewUser constructs a user record for first contact: enabled, with no
// conversational flow in progress.
func NewUser(id int64) User {
	now := time.Now().UTC()
	return User{
		ID:         id,
		InputState: InputStateNone,
		Created:    now,
		Updated:    now,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
