package models

import "strings"

// Event is one normalized inbound occurrence handed to the dispatcher by the
// transport layer. Exactly one of Message / Callback is set; an event with
// neither is unhandled and resolves to a committed no-op.
type Event struct {
	Message  *Message
	Callback *Callback
}

// Message is a normalized inbound chat message: free-form text, an optional
// location share, or a bot command.
type Message struct {
	// UserID identifies the sender in the chat channel.
	UserID int64

	// Text is the raw message text. May be empty for location-only messages.
	Text string

	// Location is set when the user shared their coordinates.
	Location *Location
}

// Location is a geographic coordinate pair from a location share.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Callback is a normalized button-press event carrying an opaque
// "command:argument" payload bound to the pressed button.
type Callback struct {
	// UserID identifies the user who pressed the button.
	UserID int64

	// Data is the opaque payload attached to the button at send time.
	Data string
}

// Action is one interactive button attached to an outbound message.
type Action struct {
	// Label is the visible button text.
	Label string

	// Data is the opaque callback payload returned when the button is
	// pressed, in "command:argument" form.
	Data string
}

// Receipt is the delivery confirmation for one outbound message.
type Receipt struct {
	// MessageID is the chat-channel identifier of the delivered message.
	MessageID int64
}

// normalizeToken lowercases and trims user input for case-insensitive
// token matching.
func normalizeToken(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsAffirmative reports whether the text is a recognized "yes" token.
func IsAffirmative(text string) bool {
	switch normalizeToken(text) {
	case "да", "yes":
		return true
	default:
		return false
	}
}

// IsNegative reports whether the text is a recognized "no" token.
func IsNegative(text string) bool {
	switch normalizeToken(text) {
	case "нет", "no":
		return true
	default:
		return false
	}
}
