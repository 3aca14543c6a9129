package models

import "errors"

// Validation errors raised at assignment time. Enum fields reject undeclared
// values immediately rather than letting them reach the storage layer.
var (
	// ErrUnknownInputState is returned when a UserInputState value is not in
	// the declared set.
	ErrUnknownInputState = errors.New("unknown user input state")

	// ErrUnknownFrequency is returned when a RepeatFrequencyPerDay value is
	// not one of the declared discrete values.
	ErrUnknownFrequency = errors.New("unknown repeat frequency")

	// ErrUnknownMemoryState is returned when a MemoryState value is not in
	// the declared set.
	ErrUnknownMemoryState = errors.New("unknown memory state")

	// ErrBlankPhraseText is returned when a phrase is created with blank
	// native text.
	ErrBlankPhraseText = errors.New("phrase native text is blank")
)
