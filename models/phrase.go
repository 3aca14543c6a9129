package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// MemoryState tracks how well a phrase is memorized. This service only ever
// moves a phrase from NotShown to Learning (when its translation arrives);
// the remaining transitions belong to the external repetition scheduler.
type MemoryState int16

const (
	MemoryStateNotShown  MemoryState = 0
	MemoryStateLearning  MemoryState = 1
	MemoryStateRepeating MemoryState = 2
	MemoryStateLearned   MemoryState = 3
)

// Validate reports whether the memory state is one of the declared values.
func (m MemoryState) Validate() error {
	switch m {
	case MemoryStateNotShown, MemoryStateLearning, MemoryStateRepeating, MemoryStateLearned:
		return nil
	default:
		return fmt.Errorf("%w: MemoryState(%d)", ErrUnknownMemoryState, int16(m))
	}
}

// Phrase is one vocabulary entry owned by exactly one user. The native text
// is set at creation and never blank; the translation arrives on the
// following conversation turn (or never, if the user cancels the entry).
type Phrase struct {
	// ID is the server-assigned phrase identifier.
	ID int64 `json:"id"`

	// UserID is the owner. Phrases never move between users.
	UserID int64 `json:"user_id"`

	// NativeText is the phrase in the language being learned. Required.
	NativeText string `json:"native_text"`

	// TranslationText is NULL until the user supplies the translation.
	TranslationText sql.NullString `json:"translation_text"`

	// MemoryState becomes Learning when the translation is attached.
	MemoryState MemoryState `json:"memory_state"`

	// Added is the creation timestamp; translation attachment binds to the
	// most recently added phrase for the user, so ordering matters.
	Added time.Time `json:"added"`

	// PhraseMessageID references the chat message that announced the phrase.
	PhraseMessageID sql.NullInt64 `json:"phrase_message_id"`

	// TranslationMessageID references the chat message that announced the
	// translation.
	TranslationMessageID sql.NullInt64 `json:"translation_message_id"`
}

// NewPhrase constructs an untranslated phrase for the given user.
// The native text must not be blank.
func NewPhrase(userID int64, nativeText string) (Phrase, error) {
	if strings.TrimSpace(nativeText) == "" {
		return Phrase{}, ErrBlankPhraseText
	}

	return Phrase{
		UserID:      userID,
		NativeText:  nativeText,
		MemoryState: MemoryStateNotShown,
		Added:       time.Now().UTC(),
	}, nil
}

// TableName returns the name of the database table
// associated with the Phrase model.
func (p Phrase) TableName() string {
	return "phrases"
}
