package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mzhuravlev/phrasebot/internal/geo"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/service"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/internal/telegram"
	"github.com/mzhuravlev/phrasebot/models"
)

type messageHandler struct {
	users    service.UserService
	phrases  service.PhraseService
	sender   telegram.Sender
	resolver geo.Resolver

	logger *logger.Logger
}

func NewMessageHandler(users service.UserService, phrases service.PhraseService, sender telegram.Sender, resolver geo.Resolver, logger *logger.Logger) MessageHandler {
	return &messageHandler{
		users:    users,
		phrases:  phrases,
		sender:   sender,
		resolver: resolver,
		logger:   logger,
	}
}

func (h *messageHandler) Handle(ctx context.Context, message models.Message) error {
	if strings.HasPrefix(message.Text, "/") {
		return h.handleCommand(ctx, message)
	}
	return h.handleUserInput(ctx, message)
}

func (h *messageHandler) handleCommand(ctx context.Context, message models.Message) error {
	log := logger.FromContext(ctx)
	userID := message.UserID

	if message.Text != startCommand {
		log.Error().
			Str("func", "handleCommand").
			Str("command", message.Text).
			Msg("no handler for bot command")
		return nil
	}

	user, err := h.users.GetUser(ctx, userID)
	switch {
	case err == nil:
		if !user.IsDisabled {
			return nil
		}

		if err = h.users.EnableUser(ctx, userID); err != nil {
			return err
		}
		_, err = h.sender.Send(ctx, userID, textWelcomeBack, nil)
		return err

	case errors.Is(err, store.ErrUserNotFound):
		if _, err = h.users.CreateUser(ctx, userID); err != nil {
			return err
		}
		if _, err = h.sender.Send(ctx, userID, textWelcome, nil); err != nil {
			return err
		}
		if err = h.users.SetInputState(ctx, userID, models.InputStateSetTimeZone); err != nil {
			return err
		}
		_, err = h.sender.Send(ctx, userID, textSetupTimeZone, nil)
		return err

	default:
		return err
	}
}

func (h *messageHandler) handleUserInput(ctx context.Context, message models.Message) error {
	userID := message.UserID

	state, err := h.users.GetInputState(ctx, userID)
	if err != nil {
		return err
	}

	switch state {
	case models.InputStateSetTimeZone:
		return h.handleSetTimeZone(ctx, message)
	case models.InputStateConfirmTimeZone:
		return h.handleConfirmTimeZone(ctx, message)
	case models.InputStateSetFrequency:
		return h.handleSetFrequency(ctx, message)
	case models.InputStateAwaitingPhraseAdding:
		return h.handlePhraseAdding(ctx, message)
	case models.InputStateAwaitingPhraseTranslation:
		return h.handlePhraseTranslation(ctx, message)
	case models.InputStateNone:
		logger.FromContext(ctx).Warn().
			Str("func", "handleUserInput").
			Int64("user_id", userID).
			Msg("free-form input while no setup process is active")
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnhandledInputState, state)
	}
}

func (h *messageHandler) handleSetTimeZone(ctx context.Context, message models.Message) error {
	userID := message.UserID

	if message.Location == nil {
		_, err := h.sender.Send(ctx, userID, textSetupTimeZoneInvalidLocation, nil)
		return err
	}

	// only a definitive not-found re-prompts; a lookup outage fails the
	// turn so the event is classified like any other infrastructure fault
	zone, err := h.resolver.Resolve(ctx, message.Location.Latitude, message.Location.Longitude)
	if err != nil {
		if errors.Is(err, geo.ErrTimeZoneNotFound) {
			_, err = h.sender.Send(ctx, userID, textSetupTimeZoneFailed, nil)
			return err
		}
		return err
	}

	if err = h.users.SetTimeZone(ctx, userID, zone); err != nil {
		return err
	}
	if err = h.users.SetInputState(ctx, userID, models.InputStateConfirmTimeZone); err != nil {
		return err
	}

	_, err = h.sender.Send(ctx, userID, fmt.Sprintf(textConfirmTimeZone, zone), nil)
	return err
}

func (h *messageHandler) handleConfirmTimeZone(ctx context.Context, message models.Message) error {
	userID := message.UserID

	switch {
	case models.IsAffirmative(message.Text):
		if err := h.users.SetInputState(ctx, userID, models.InputStateSetFrequency); err != nil {
			return err
		}
		_, err := h.sender.Send(ctx, userID, textSetupFrequency, nil)
		return err

	case models.IsNegative(message.Text):
		if err := h.users.SetInputState(ctx, userID, models.InputStateSetTimeZone); err != nil {
			return err
		}
		_, err := h.sender.Send(ctx, userID, textSetupTimeZone, nil)
		return err

	default:
		_, err := h.sender.Send(ctx, userID, textConfirmTimeZoneInvalidInput, nil)
		return err
	}
}

func (h *messageHandler) handleSetFrequency(ctx context.Context, message models.Message) error {
	userID := message.UserID

	frequency, err := models.ParseRepeatFrequency(message.Text)
	if err != nil {
		_, err = h.sender.Send(ctx, userID, textSetupFrequencyInvalidInput, nil)
		return err
	}

	if err = h.users.SetRepeatFrequency(ctx, userID, frequency); err != nil {
		return err
	}
	if _, err = h.sender.Send(ctx, userID, textSetupFinished, nil); err != nil {
		return err
	}

	return h.users.SetInputState(ctx, userID, models.InputStateAwaitingPhraseAdding)
}

func (h *messageHandler) handlePhraseAdding(ctx context.Context, message models.Message) error {
	userID := message.UserID

	if strings.TrimSpace(message.Text) == "" {
		logger.FromContext(ctx).Error().
			Str("func", "handlePhraseAdding").
			Int64("user_id", userID).
			Msg("user sent an empty phrase")
		return nil
	}

	phrase, err := h.phrases.AddPhrase(ctx, userID, message.Text)
	if err != nil {
		return err
	}
	if err = h.users.SetInputState(ctx, userID, models.InputStateAwaitingPhraseTranslation); err != nil {
		return err
	}

	receipt, err := h.sender.Send(ctx, userID, fmt.Sprintf(textAwaitingTranslation, message.Text), nil)
	if err != nil {
		return err
	}

	return h.phrases.RecordPhraseMessageID(ctx, phrase.ID, receipt.MessageID)
}

func (h *messageHandler) handlePhraseTranslation(ctx context.Context, message models.Message) error {
	userID := message.UserID

	if strings.TrimSpace(message.Text) == "" {
		logger.FromContext(ctx).Error().
			Str("func", "handlePhraseTranslation").
			Int64("user_id", userID).
			Msg("user sent an empty translation")
		return nil
	}

	if message.Text == cancelInputToken {
		if err := h.users.SetInputState(ctx, userID, models.InputStateAwaitingPhraseAdding); err != nil {
			return err
		}
		if err := h.phrases.CancelPendingPhrase(ctx, userID); err != nil {
			return err
		}
		_, err := h.sender.Send(ctx, userID, textInputCancelled, nil)
		return err
	}

	phrase, err := h.phrases.AttachTranslation(ctx, userID, message.Text)
	if err != nil {
		return err
	}
	if err = h.users.SetInputState(ctx, userID, models.InputStateAwaitingPhraseAdding); err != nil {
		return err
	}

	reply := fmt.Sprintf(textTranslationComplete, phrase.NativeText, phrase.TranslationText.String)
	actions := []models.Action{{Label: textDeletePhraseAction, Data: deletePhraseCallback(phrase.ID)}}

	receipt, err := h.sender.Send(ctx, userID, reply, actions)
	if err != nil {
		return err
	}

	return h.phrases.RecordTranslationMessageID(ctx, phrase.ID, receipt.MessageID)
}
