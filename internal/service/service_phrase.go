package service

import (
	"context"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/models"
)

type phraseService struct {
	phrases store.PhraseRepository

	logger *logger.Logger
}

func NewPhraseService(phrases store.PhraseRepository, logger *logger.Logger) PhraseService {
	return &phraseService{
		phrases: phrases,
		logger:  logger,
	}
}

func (p *phraseService) AddPhrase(ctx context.Context, userID int64, nativeText string) (models.Phrase, error) {
	phrase, err := models.NewPhrase(userID, nativeText)
	if err != nil {
		return models.Phrase{}, err
	}

	return p.phrases.CreatePhrase(ctx, phrase)
}

// AttachTranslation binds the translation to the user's most recently added
// phrase and moves it to the learning memory state. Which phrase is "most
// recent" is decided by the repository's added-ordering.
func (p *phraseService) AttachTranslation(ctx context.Context, userID int64, translation string) (models.Phrase, error) {
	return p.phrases.AttachTranslationToLatest(ctx, userID, translation)
}

// CancelPendingPhrase removes the user's most recent translation-less phrase.
// Nothing to remove is not an error.
func (p *phraseService) CancelPendingPhrase(ctx context.Context, userID int64) error {
	return p.phrases.DeleteLatestUntranslated(ctx, userID)
}

func (p *phraseService) DeletePhrase(ctx context.Context, phraseID int64) error {
	return p.phrases.DeletePhrase(ctx, phraseID)
}

func (p *phraseService) RecordPhraseMessageID(ctx context.Context, phraseID, messageID int64) error {
	return p.phrases.SetPhraseMessageID(ctx, phraseID, messageID)
}

func (p *phraseService) RecordTranslationMessageID(ctx context.Context, phraseID, messageID int64) error {
	return p.phrases.SetTranslationMessageID(ctx, phraseID, messageID)
}
