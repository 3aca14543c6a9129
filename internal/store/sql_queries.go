package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mzhuravlev/phrasebot/models"
)

const (
	createUser = `INSERT INTO users (id, is_disabled, input_state, created, updated)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, is_disabled, input_state, created, updated;`

	getUser = `SELECT id, is_disabled, input_state, created, updated
    FROM users
    WHERE id = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	getInputState = `SELECT input_state
    FROM users
    WHERE id = $1;`

	getSettings = `SELECT user_id, time_zone, repeat_frequency
    FROM user_settings
    WHERE user_id = $1;`

	upsertTimeZone = `INSERT INTO user_settings (user_id, time_zone)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET time_zone = EXCLUDED.time_zone;`

	upsertRepeatFrequency = `INSERT INTO user_settings (user_id, repeat_frequency)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE SET repeat_frequency = EXCLUDED.repeat_frequency;`

	phraseColumns = `id, user_id, native_text, translation_text, memory_state, added, phrase_message_id, translation_message_id`

	createPhrase = `INSERT INTO phrases (user_id, native_text, memory_state, added)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + phraseColumns + `;`

	latestPhrase = `SELECT ` + phraseColumns + `
    FROM phrases
    WHERE user_id = $1
    ORDER BY added DESC, id DESC
    LIMIT 1;`

	// The subquery picks "the most recently added phrase for the user";
	// there is no explicit correlation between the adding turn and the
	// translation turn beyond that ordering.
	attachTranslationToLatest = `UPDATE phrases
    SET translation_text = $1, memory_state = $2
    WHERE id = (
        SELECT id FROM phrases
        WHERE user_id = $3
        ORDER BY added DESC, id DESC
        LIMIT 1
    )
    RETURNING ` + phraseColumns + `;`

	deletePhrase = `DELETE FROM phrases
    WHERE id = $1;`

	deleteLatestUntranslated = `DELETE FROM phrases
    WHERE id = (
        SELECT id FROM phrases
        WHERE user_id = $1 AND translation_text IS NULL
        ORDER BY added DESC, id DESC
        LIMIT 1
    );`
)

// Partial-column UPDATE statements are built with squirrel so lifecycle
// flags and message references can be written without loading the entity.

func buildSetDisabledQuery(userID int64, disabled bool) (string, []any, error) {
	query, args, err := sq.Update("users").
		Set("is_disabled", disabled).
		Set("updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetInputStateQuery(userID int64, state models.UserInputState) (string, []any, error) {
	query, args, err := sq.Update("users").
		Set("input_state", int16(state)).
		Set("updated", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSetMessageIDQuery(column string, phraseID, messageID int64) (string, []any, error) {
	query, args, err := sq.Update("phrases").
		Set(column, messageID).
		Where(sq.Eq{"id": phraseID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
