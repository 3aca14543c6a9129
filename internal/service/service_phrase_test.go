package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

type mockPhraseRepository struct {
	createPhraseFn              func(ctx context.Context, phrase models.Phrase) (models.Phrase, error)
	latestPhraseFn              func(ctx context.Context, userID int64) (models.Phrase, error)
	attachTranslationToLatestFn func(ctx context.Context, userID int64, translation string) (models.Phrase, error)
	deletePhraseFn              func(ctx context.Context, phraseID int64) error
	deleteLatestUntranslatedFn  func(ctx context.Context, userID int64) error
	setPhraseMessageIDFn        func(ctx context.Context, phraseID, messageID int64) error
	setTranslationMessageIDFn   func(ctx context.Context, phraseID, messageID int64) error
}

func (m *mockPhraseRepository) CreatePhrase(ctx context.Context, phrase models.Phrase) (models.Phrase, error) {
	if m.createPhraseFn != nil {
		return m.createPhraseFn(ctx, phrase)
	}
	phrase.ID = 1
	return phrase, nil
}

func (m *mockPhraseRepository) LatestPhrase(ctx context.Context, userID int64) (models.Phrase, error) {
	if m.latestPhraseFn != nil {
		return m.latestPhraseFn(ctx, userID)
	}
	return models.Phrase{}, nil
}

func (m *mockPhraseRepository) AttachTranslationToLatest(ctx context.Context, userID int64, translation string) (models.Phrase, error) {
	if m.attachTranslationToLatestFn != nil {
		return m.attachTranslationToLatestFn(ctx, userID, translation)
	}
	return models.Phrase{}, nil
}

func (m *mockPhraseRepository) DeletePhrase(ctx context.Context, phraseID int64) error {
	if m.deletePhraseFn != nil {
		return m.deletePhraseFn(ctx, phraseID)
	}
	return nil
}

func (m *mockPhraseRepository) DeleteLatestUntranslated(ctx context.Context, userID int64) error {
	if m.deleteLatestUntranslatedFn != nil {
		return m.deleteLatestUntranslatedFn(ctx, userID)
	}
	return nil
}

func (m *mockPhraseRepository) SetPhraseMessageID(ctx context.Context, phraseID, messageID int64) error {
	if m.setPhraseMessageIDFn != nil {
		return m.setPhraseMessageIDFn(ctx, phraseID, messageID)
	}
	return nil
}

func (m *mockPhraseRepository) SetTranslationMessageID(ctx context.Context, phraseID, messageID int64) error {
	if m.setTranslationMessageIDFn != nil {
		return m.setTranslationMessageIDFn(ctx, phraseID, messageID)
	}
	return nil
}

func newTestPhraseService(phrases *mockPhraseRepository) PhraseService {
	return NewPhraseService(phrases, logger.Nop())
}

func TestPhraseService_AddPhrase(t *testing.T) {
	var created models.Phrase
	phrases := &mockPhraseRepository{
		createPhraseFn: func(ctx context.Context, phrase models.Phrase) (models.Phrase, error) {
			created = phrase
			phrase.ID = 7
			return phrase, nil
		},
	}
	svc := newTestPhraseService(phrases)

	phrase, err := svc.AddPhrase(context.Background(), 42, "hello")
	require.NoError(t, err)

	assert.Equal(t, int64(7), phrase.ID)
	assert.Equal(t, "hello", created.NativeText)
	assert.Equal(t, int64(42), created.UserID)
	assert.False(t, created.TranslationText.Valid)
	assert.Equal(t, models.MemoryStateNotShown, created.MemoryState)
}

func TestPhraseService_AddPhrase_RejectsBlankText(t *testing.T) {
	phrases := &mockPhraseRepository{
		createPhraseFn: func(ctx context.Context, phrase models.Phrase) (models.Phrase, error) {
			t.Fatal("repository must not be called for blank text")
			return models.Phrase{}, nil
		},
	}
	svc := newTestPhraseService(phrases)

	_, err := svc.AddPhrase(context.Background(), 42, "   ")
	assert.ErrorIs(t, err, models.ErrBlankPhraseText)
}

func TestPhraseService_AttachTranslation(t *testing.T) {
	phrases := &mockPhraseRepository{
		attachTranslationToLatestFn: func(ctx context.Context, userID int64, translation string) (models.Phrase, error) {
			return models.Phrase{
				ID:              7,
				UserID:          userID,
				NativeText:      "hello",
				TranslationText: sql.NullString{String: translation, Valid: true},
				MemoryState:     models.MemoryStateLearning,
			}, nil
		},
	}
	svc := newTestPhraseService(phrases)

	phrase, err := svc.AttachTranslation(context.Background(), 42, "привет")
	require.NoError(t, err)

	assert.Equal(t, "привет", phrase.TranslationText.String)
	assert.Equal(t, models.MemoryStateLearning, phrase.MemoryState)
}

func TestPhraseService_CancelPendingPhrase(t *testing.T) {
	var gotUserID int64
	phrases := &mockPhraseRepository{
		deleteLatestUntranslatedFn: func(ctx context.Context, userID int64) error {
			gotUserID = userID
			return nil
		},
	}
	svc := newTestPhraseService(phrases)

	require.NoError(t, svc.CancelPendingPhrase(context.Background(), 42))
	assert.Equal(t, int64(42), gotUserID)
}

func TestPhraseService_DeletePhrase_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	phrases := &mockPhraseRepository{
		deletePhraseFn: func(ctx context.Context, phraseID int64) error {
			return wantErr
		},
	}
	svc := newTestPhraseService(phrases)

	assert.ErrorIs(t, svc.DeletePhrase(context.Background(), 7), wantErr)
}

func TestPhraseService_RecordMessageIDs(t *testing.T) {
	var phraseMsg, translationMsg int64
	phrases := &mockPhraseRepository{
		setPhraseMessageIDFn: func(ctx context.Context, phraseID, messageID int64) error {
			phraseMsg = messageID
			return nil
		},
		setTranslationMessageIDFn: func(ctx context.Context, phraseID, messageID int64) error {
			translationMsg = messageID
			return nil
		},
	}
	svc := newTestPhraseService(phrases)

	require.NoError(t, svc.RecordPhraseMessageID(context.Background(), 7, 100))
	require.NoError(t, svc.RecordTranslationMessageID(context.Background(), 7, 101))

	assert.Equal(t, int64(100), phraseMsg)
	assert.Equal(t, int64(101), translationMsg)
}
