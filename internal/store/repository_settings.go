package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository] over the "user_settings" table.
type settingsRepository struct {
	logger *logger.Logger
	db     Querier
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided querier and logger.
func NewSettingsRepository(db Querier, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// GetSettings retrieves the settings row owned by the user.
//
// Returns [ErrSettingsNotFound] when the user has no settings row yet.
func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	var settings models.UserSettings
	row := r.db.QueryRowContext(ctx, getSettings, userID)

	if err := row.Scan(&settings.UserID, &settings.TimeZone, &settings.RepeatFrequencyPerDay); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{}, ErrSettingsNotFound
		}

		log.Err(err).Str("func", "*settingsRepository.GetSettings").Int64("user_id", userID).Msg("error scanning settings")
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// UpsertTimeZone stores the resolved IANA timezone identifier, creating the
// settings row if the user has none yet.
func (r *settingsRepository) UpsertTimeZone(ctx context.Context, userID int64, timeZone string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertTimeZone, userID, timeZone); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertTimeZone").Int64("user_id", userID).Msg("error upserting time zone")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpsertRepeatFrequency stores the repetition frequency, creating the
// settings row if the user has none yet. The value is validated before any
// SQL runs (fail-fast).
func (r *settingsRepository) UpsertRepeatFrequency(ctx context.Context, userID int64, frequency models.RepeatFrequencyPerDay) error {
	log := logger.FromContext(ctx)

	if err := frequency.Validate(); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, upsertRepeatFrequency, userID, int16(frequency)); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertRepeatFrequency").Int64("user_id", userID).Msg("error upserting repeat frequency")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
