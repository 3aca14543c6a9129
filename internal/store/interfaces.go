package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/mzhuravlev/phrasebot/models"
)

// UserRepository owns the users table: account lifecycle (create, delete,
// enable, disable) and the persisted conversation input state.
//
// Lifecycle updates touch only the affected columns so that compensation
// writes (disable/delete of an undeliverable user) never need to load the
// full entity first.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	DeleteUser(ctx context.Context, userID int64) error
	EnableUser(ctx context.Context, userID int64) error
	DisableUser(ctx context.Context, userID int64) error
	GetInputState(ctx context.Context, userID int64) (models.UserInputState, error)
	SetInputState(ctx context.Context, userID int64, state models.UserInputState) error
}

// SettingsRepository owns the one-to-one user_settings table. Both setters
// upsert so that onboarding does not depend on row creation order.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID int64) (models.UserSettings, error)
	UpsertTimeZone(ctx context.Context, userID int64, timeZone string) error
	UpsertRepeatFrequency(ctx context.Context, userID int64, frequency models.RepeatFrequencyPerDay) error
}

// PhraseRepository owns the phrases table: append-only creation, late-bound
// translation attachment, and deletion.
type PhraseRepository interface {
	CreatePhrase(ctx context.Context, phrase models.Phrase) (models.Phrase, error)
	LatestPhrase(ctx context.Context, userID int64) (models.Phrase, error)
	AttachTranslationToLatest(ctx context.Context, userID int64, translation string) (models.Phrase, error)
	DeletePhrase(ctx context.Context, phraseID int64) error
	DeleteLatestUntranslated(ctx context.Context, userID int64) error
	SetPhraseMessageID(ctx context.Context, phraseID, messageID int64) error
	SetTranslationMessageID(ctx context.Context, phraseID, messageID int64) error
}

// UnitOfWork is one open database transaction plus the repositories bound to
// it. Commit or Rollback must be called exactly once; Rollback after a
// successful Commit is a no-op at the driver level.
type UnitOfWork interface {
	Commit() error
	Rollback() error
	Storages() Storages
}

// TxManager hands out transactional units of work and direct (auto-commit)
// repository access. The direct storages are used for compensation writes
// that must survive the rollback of the transaction they react to.
type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
	Storages() Storages
}
