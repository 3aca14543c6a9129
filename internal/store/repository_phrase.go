package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// phraseRepository is the PostgreSQL-backed implementation of
// [PhraseRepository] over the "phrases" table.
type phraseRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewPhraseRepository constructs a [PhraseRepository] backed by the provided
// querier and logger.
func NewPhraseRepository(db Querier, logger *logger.Logger) PhraseRepository {
	return &phraseRepository{
		db:     db,
		logger: logger,
	}
}

func scanPhrase(row *sql.Row) (models.Phrase, error) {
	var phrase models.Phrase
	err := row.Scan(
		&phrase.ID,
		&phrase.UserID,
		&phrase.NativeText,
		&phrase.TranslationText,
		&phrase.MemoryState,
		&phrase.Added,
		&phrase.PhraseMessageID,
		&phrase.TranslationMessageID,
	)
	return phrase, err
}

// CreatePhrase persists a new phrase and returns it with the server-assigned
// id. The native text must already be validated via [models.NewPhrase].
func (r *phraseRepository) CreatePhrase(ctx context.Context, phrase models.Phrase) (models.Phrase, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPhrase, phrase.UserID, phrase.NativeText, int16(phrase.MemoryState), phrase.Added)

	created, err := scanPhrase(row)
	if err != nil {
		log.Err(err).Str("func", "*phraseRepository.CreatePhrase").Int64("user_id", phrase.UserID).Msg("error inserting phrase")
		return models.Phrase{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// LatestPhrase retrieves the most recently added phrase for the user,
// ordered by the added timestamp (id breaks ties).
//
// Returns [ErrPhraseNotFound] when the user has no phrases.
func (r *phraseRepository) LatestPhrase(ctx context.Context, userID int64) (models.Phrase, error) {
	log := logger.FromContext(ctx)

	phrase, err := scanPhrase(r.db.QueryRowContext(ctx, latestPhrase, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Phrase{}, ErrPhraseNotFound
		}

		log.Err(err).Str("func", "*phraseRepository.LatestPhrase").Int64("user_id", userID).Msg("error scanning latest phrase")
		return models.Phrase{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return phrase, nil
}

// AttachTranslationToLatest sets the translation on the user's most recently
// added phrase and moves its memory state to Learning. The binding is purely
// "last phrase wins": overlapping add-phrase turns from the same user can
// attach a translation to the later of the two phrases.
//
// Returns [ErrPhraseNotFound] when the user has no phrases.
func (r *phraseRepository) AttachTranslationToLatest(ctx context.Context, userID int64, translation string) (models.Phrase, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, attachTranslationToLatest, translation, int16(models.MemoryStateLearning), userID)

	updated, err := scanPhrase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Phrase{}, ErrPhraseNotFound
		}

		log.Err(err).Str("func", "*phraseRepository.AttachTranslationToLatest").Int64("user_id", userID).Msg("error attaching translation")
		return models.Phrase{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeletePhrase removes the phrase with the given id. Deleting an
// already-deleted id is not an error, so duplicate delete callbacks are
// harmless.
func (r *phraseRepository) DeletePhrase(ctx context.Context, phraseID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deletePhrase, phraseID); err != nil {
		log.Err(err).Str("func", "*phraseRepository.DeletePhrase").Int64("phrase_id", phraseID).Msg("error deleting phrase")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteLatestUntranslated removes the most recently added phrase that still
// has no translation, used when the user cancels a pending entry. Nothing to
// delete is not an error.
func (r *phraseRepository) DeleteLatestUntranslated(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteLatestUntranslated, userID); err != nil {
		log.Err(err).Str("func", "*phraseRepository.DeleteLatestUntranslated").Int64("user_id", userID).Msg("error deleting pending phrase")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetPhraseMessageID records the chat message that announced the phrase.
func (r *phraseRepository) SetPhraseMessageID(ctx context.Context, phraseID, messageID int64) error {
	return r.setMessageID(ctx, "phrase_message_id", phraseID, messageID, "*phraseRepository.SetPhraseMessageID")
}

// SetTranslationMessageID records the chat message that announced the
// translation.
func (r *phraseRepository) SetTranslationMessageID(ctx context.Context, phraseID, messageID int64) error {
	return r.setMessageID(ctx, "translation_message_id", phraseID, messageID, "*phraseRepository.SetTranslationMessageID")
}

func (r *phraseRepository) setMessageID(ctx context.Context, column string, phraseID, messageID int64, funcName string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetMessageIDQuery(column, phraseID, messageID)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("phrase_id", phraseID).Msg("failed to build query")
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Int64("phrase_id", phraseID).Msg("error updating message reference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
