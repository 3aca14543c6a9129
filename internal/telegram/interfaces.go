package telegram

//go:generate mockgen -source=interfaces.go -destination=../mock/telegram_mock.go -package=mock

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhuravlev/phrasebot/models"
)

// Sender delivers one formatted reply, optionally with inline actions, to a
// recipient. On failure it returns a *models.SendError classifying the
// transport error, except for context cancellation which surfaces as the
// context's own error.
type Sender interface {
	Send(ctx context.Context, userID int64, text string, actions []models.Action) (models.Receipt, error)
}

// botClient is the slice of *tgbotapi.BotAPI the delivery service needs.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
