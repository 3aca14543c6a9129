package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// Markers Telegram embeds in the error description when the recipient, not
// the transport, is the problem ("Forbidden: bot was blocked by the user",
// "Forbidden: user is deactivated").
const (
	blockedMarker     = "blocked"
	deactivatedMarker = "deactivated"
)

// Service implements [Sender] over the Telegram Bot API. One instance is
// built per event over the event's scratch buffer, so escaped-text
// memoization follows the same commit/rollback visibility rules as every
// other cache write of the turn.
type Service struct {
	bot     botClient
	scratch *cache.Scratch

	logger *logger.Logger
}

func NewService(bot botClient, scratch *cache.Scratch, logger *logger.Logger) *Service {
	return &Service{
		bot:     bot,
		scratch: scratch,
		logger:  logger,
	}
}

// SenderFactory builds a per-event [Sender] over that event's scratch
// buffer. The bot client behind it is shared across events.
type SenderFactory func(scratch *cache.Scratch) Sender

func NewSenderFactory(bot botClient, logger *logger.Logger) SenderFactory {
	return func(scratch *cache.Scratch) Sender {
		return NewService(bot, scratch, logger)
	}
}

// Send escapes text for HTML, attaches one inline button per action, and
// delivers the message. A cancelled context aborts before the network call.
func (s *Service) Send(ctx context.Context, userID int64, text string, actions []models.Action) (models.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return models.Receipt{}, fmt.Errorf("delivery aborted: %w", err)
	}

	msg := tgbotapi.NewMessage(userID, s.escapeHTML(text))
	msg.ParseMode = tgbotapi.ModeHTML

	if len(actions) > 0 {
		rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(actions))
		for _, action := range actions {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(action.Label, action.Data),
			))
		}
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	sent, err := s.bot.Send(msg)
	if err != nil {
		sendErr := classifySendError(userID, err)
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "Send").
			Int64("user_id", userID).
			Str("kind", sendErr.Kind.String()).
			Msg("delivery failed")
		return models.Receipt{}, sendErr
	}

	return models.Receipt{MessageID: int64(sent.MessageID)}, nil
}

// escapeHTML escapes text for the HTML parse mode. The same canned prompts go
// out to many users, so results are memoized in the scratch cache keyed by a
// content hash.
func (s *Service) escapeHTML(text string) string {
	key := escapeCacheKey(text)
	if cached, ok := s.scratch.TryGet(key); ok {
		if escaped, ok := cached.(string); ok {
			return escaped
		}
	}

	escaped := tgbotapi.EscapeText(tgbotapi.ModeHTML, text)
	s.scratch.Set(key, escaped, 0)

	return escaped
}

// classifySendError maps a transport error onto the delivery failure
// taxonomy by the textual markers in Telegram's error description.
func classifySendError(userID int64, err error) *models.SendError {
	kind := models.SendFailureTransient

	description := strings.ToLower(err.Error())
	switch {
	case strings.Contains(description, blockedMarker):
		kind = models.SendFailureBlocked
	case strings.Contains(description, deactivatedMarker):
		kind = models.SendFailureDeactivated
	}

	return &models.SendError{Kind: kind, UserID: userID, Cause: err}
}
