package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/service"
	"github.com/mzhuravlev/phrasebot/internal/telegram"
	"github.com/mzhuravlev/phrasebot/models"
)

type callbackHandler struct {
	phrases service.PhraseService
	sender  telegram.Sender

	logger *logger.Logger
}

func NewCallbackHandler(phrases service.PhraseService, sender telegram.Sender, logger *logger.Logger) CallbackHandler {
	return &callbackHandler{
		phrases: phrases,
		sender:  sender,
		logger:  logger,
	}
}

func (h *callbackHandler) Handle(ctx context.Context, callback models.Callback) error {
	command, argument, _ := strings.Cut(callback.Data, callbackDelimiter)

	switch command {
	case commandDeletePhrase:
		phraseID, err := strconv.ParseInt(argument, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: cannot parse phrase id from %q", ErrBadCallbackData, callback.Data)
		}

		if err = h.phrases.DeletePhrase(ctx, phraseID); err != nil {
			return err
		}

		_, err = h.sender.Send(ctx, callback.UserID, textPhraseDeleted, nil)
		return err

	case commandCancelPhraseInput:
		// the cancel button only collapses the inline keyboard; the
		// pending phrase is handled by the message-side cancel token
		return nil

	default:
		logger.FromContext(ctx).Error().
			Str("func", "Handle").
			Int64("user_id", callback.UserID).
			Str("command", command).
			Msg("unknown callback command")
		return nil
	}
}
