package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/models"
)

// perUserCacheTTL bounds how long cached per-user values survive in the
// shared tier. Input state also lives on the users row, so an expired entry
// only costs one extra read.
const perUserCacheTTL = time.Hour

func inputStateCacheKey(userID int64) string {
	return fmt.Sprintf("user_input_state:%d", userID)
}

func settingsCacheKey(userID int64) string {
	return fmt.Sprintf("user_settings:%d", userID)
}

type userService struct {
	users    store.UserRepository
	settings store.SettingsRepository
	scratch  *cache.Scratch

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, settings store.SettingsRepository, scratch *cache.Scratch, logger *logger.Logger) UserService {
	return &userService{
		users:    users,
		settings: settings,
		scratch:  scratch,
		logger:   logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.CreateUser(ctx, models.NewUser(userID))
	if err != nil {
		return models.User{}, err
	}

	s.scratch.Set(inputStateCacheKey(userID), user.InputState, perUserCacheTTL)

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.users.GetUser(ctx, userID)
}

func (s *userService) UserExists(ctx context.Context, userID int64) (bool, error) {
	return s.users.UserExists(ctx, userID)
}

func (s *userService) EnableUser(ctx context.Context, userID int64) error {
	return s.users.EnableUser(ctx, userID)
}

func (s *userService) GetInputState(ctx context.Context, userID int64) (models.UserInputState, error) {
	if cached, ok := s.scratch.TryGet(inputStateCacheKey(userID)); ok {
		if state, ok := cached.(models.UserInputState); ok {
			return state, nil
		}
	}

	state, err := s.users.GetInputState(ctx, userID)
	if err != nil {
		return models.InputStateNone, err
	}

	s.scratch.Set(inputStateCacheKey(userID), state, perUserCacheTTL)

	return state, nil
}

func (s *userService) SetInputState(ctx context.Context, userID int64, state models.UserInputState) error {
	if err := s.users.SetInputState(ctx, userID, state); err != nil {
		return err
	}

	s.scratch.Set(inputStateCacheKey(userID), state, perUserCacheTTL)

	return nil
}

func (s *userService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	if cached, ok := s.scratch.TryGet(settingsCacheKey(userID)); ok {
		if settings, ok := cached.(models.UserSettings); ok {
			return settings, nil
		}
	}

	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, err
	}

	s.scratch.Set(settingsCacheKey(userID), settings, perUserCacheTTL)

	return settings, nil
}

func (s *userService) SetTimeZone(ctx context.Context, userID int64, timeZone string) error {
	if err := s.settings.UpsertTimeZone(ctx, userID, timeZone); err != nil {
		return err
	}

	s.refreshCachedSettings(ctx, userID)

	return nil
}

func (s *userService) SetRepeatFrequency(ctx context.Context, userID int64, frequency models.RepeatFrequencyPerDay) error {
	if err := s.settings.UpsertRepeatFrequency(ctx, userID, frequency); err != nil {
		return err
	}

	s.refreshCachedSettings(ctx, userID)

	return nil
}

// refreshCachedSettings re-reads the row just written so the buffered cache
// entry carries the full upserted record, not a partial patch. A failed
// re-read is only logged: the write already succeeded.
func (s *userService) refreshCachedSettings(ctx context.Context, userID int64) {
	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "refreshCachedSettings").
			Int64("user_id", userID).
			Msg("cannot re-read settings after upsert")
		return
	}

	s.scratch.Set(settingsCacheKey(userID), settings, perUserCacheTTL)
}
