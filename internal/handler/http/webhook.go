package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhuravlev/phrasebot/internal/handler"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// webhook accepts one Telegram update per request and reports the
// dispatcher's verdict through the status code: 200 tells Telegram the
// update is done (including final errors, where redelivery would only fail
// again), 500 asks for redelivery.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	secret := chi.URLParam(r, "secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.telegram.WebhookSecret)) != 1 {
		log.Warn().Str("func", "webhook").Msg("webhook call with wrong secret")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Error().Err(err).Str("func", "webhook").Msg("cannot decode update payload")
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()
	if h.server.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.server.RequestTimeout)
		defer cancel()
	}

	result := h.dispatcher.Handle(ctx, normalizeUpdate(update))

	log.Info().
		Str("func", "webhook").
		Int("update_id", update.UpdateID).
		Str("result", result.String()).
		Msg("update handled")

	if result == handler.ResultRetryNeeded {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// normalizeUpdate maps the wire update onto the event shape the dispatcher
// consumes. Updates without an identifiable sender come out empty and the
// dispatcher commits them as no-ops.
func normalizeUpdate(update tgbotapi.Update) models.Event {
	switch {
	case update.Message != nil:
		if update.Message.From == nil {
			return models.Event{}
		}

		message := &models.Message{
			UserID: update.Message.From.ID,
			Text:   update.Message.Text,
		}
		if update.Message.Location != nil {
			message.Location = &models.Location{
				Latitude:  update.Message.Location.Latitude,
				Longitude: update.Message.Location.Longitude,
			}
		}
		return models.Event{Message: message}

	case update.CallbackQuery != nil:
		if update.CallbackQuery.From == nil {
			return models.Event{}
		}

		return models.Event{Callback: &models.Callback{
			UserID: update.CallbackQuery.From.ID,
			Data:   update.CallbackQuery.Data,
		}}

	default:
		return models.Event{}
	}
}
