package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mzhuravlev/phrasebot/internal/telegram"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the secret path segment is the webhook's authentication: only
	// Telegram was told the full URL
	router.Post(telegram.WebhookPath("{secret}"), h.webhook)

	return router
}
