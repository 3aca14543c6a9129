package handler

//go:generate mockgen -source=interfaces.go -destination=../mock/handler_mock.go -package=mock

import (
	"context"

	"github.com/mzhuravlev/phrasebot/models"
)

// MessageHandler advances the per-user conversation state machine for one
// inbound message (command or free-form text/location).
type MessageHandler interface {
	Handle(ctx context.Context, message models.Message) error
}

// CallbackHandler executes one inline-button action.
type CallbackHandler interface {
	Handle(ctx context.Context, callback models.Callback) error
}
