package http

import (
	"context"

	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/handler"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

// updateDispatcher is the slice of *handler.Dispatcher the transport needs.
type updateDispatcher interface {
	Handle(ctx context.Context, event models.Event) handler.Result
}

type Handler struct {
	dispatcher updateDispatcher
	telegram   config.Telegram
	server     config.Server

	logger *logger.Logger
}

func NewHandler(dispatcher updateDispatcher, telegram config.Telegram, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		dispatcher: dispatcher,
		telegram:   telegram,
		server:     server,
		logger:     logger,
	}
}
