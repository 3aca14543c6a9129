package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/mzhuravlev/phrasebot/models"
)

// UserService is the account and onboarding surface consumed by the
// conversation handlers. It fronts the user and settings repositories and
// keeps the hot per-user values (input state, settings) in the scratch cache
// so that successive turns do not re-read the same rows.
type UserService interface {
	CreateUser(ctx context.Context, userID int64) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	EnableUser(ctx context.Context, userID int64) error

	GetInputState(ctx context.Context, userID int64) (models.UserInputState, error)
	SetInputState(ctx context.Context, userID int64, state models.UserInputState) error

	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	SetTimeZone(ctx context.Context, userID int64, timeZone string) error
	SetRepeatFrequency(ctx context.Context, userID int64, frequency models.RepeatFrequencyPerDay) error
}

// PhraseService is the vocabulary surface consumed by the conversation
// handlers: phrase capture, late-bound translation, cancellation, deletion,
// and recording of the chat message ids announcing each half of an entry.
type PhraseService interface {
	AddPhrase(ctx context.Context, userID int64, nativeText string) (models.Phrase, error)
	AttachTranslation(ctx context.Context, userID int64, translation string) (models.Phrase, error)
	CancelPendingPhrase(ctx context.Context, userID int64) error
	DeletePhrase(ctx context.Context, phraseID int64) error
	RecordPhraseMessageID(ctx context.Context, phraseID, messageID int64) error
	RecordTranslationMessageID(ctx context.Context, phraseID, messageID int64) error
}
