package handler

import (
	"context"
	"strings"

	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/geo"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/service"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/internal/telegram"
	"github.com/mzhuravlev/phrasebot/models"
)

// HandlerFactory builds the per-event handler chain over one transaction's
// repositories and one event's scratch buffer. The dispatcher calls it once
// per event; tests substitute mocks here.
type HandlerFactory func(storages store.Storages, scratch *cache.Scratch) (MessageHandler, CallbackHandler, telegram.Sender)

// NewHandlerFactory wires the production handler chain: domain services over
// the transactional repositories, a delivery service over the shared bot
// client, and the two conversation handlers on top.
func NewHandlerFactory(senderFactory telegram.SenderFactory, resolver geo.Resolver, log *logger.Logger) HandlerFactory {
	return func(storages store.Storages, scratch *cache.Scratch) (MessageHandler, CallbackHandler, telegram.Sender) {
		services := service.NewServices(storages, scratch, log)
		sender := senderFactory(scratch)

		message := NewMessageHandler(services.UserService, services.PhraseService, sender, resolver, log)
		callback := NewCallbackHandler(services.PhraseService, sender, log)

		return message, callback, sender
	}
}

// Dispatcher is the transactional envelope around one event: it begins a
// transaction, routes the event, and reconciles transaction outcome with
// cache visibility and compensation.
type Dispatcher struct {
	tx      store.TxManager
	shared  *cache.Shared
	factory HandlerFactory

	logger *logger.Logger
}

func NewDispatcher(tx store.TxManager, shared *cache.Shared, factory HandlerFactory, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		tx:      tx,
		shared:  shared,
		factory: factory,
		logger:  logger,
	}
}

// Handle processes one event end to end.
//
// On a clean return from the handler the transaction is committed and the
// scratch buffer is flushed into the shared cache, in that order. On failure
// the transaction is rolled back and the buffer discarded; what happens next
// depends on the failure kind:
//
//   - undeliverable recipient: compensate (disable or delete the user) in a
//     fresh unit of work that survives the rollback, report ResultSuccess
//     since redelivery cannot help;
//   - transient send failure: report ResultRetryNeeded;
//   - anything else: best-effort apology to the originating user, then
//     ResultRetryNeeded for transient storage faults and ResultError
//     otherwise.
func (d *Dispatcher) Handle(ctx context.Context, event models.Event) Result {
	log := logger.FromContext(ctx)

	scratch := cache.NewScratch(d.shared)

	uow, err := d.tx.Begin(ctx)
	if err != nil {
		log.Error().Err(err).Str("func", "Handle").Msg("cannot begin transaction")
		return d.classify(err)
	}

	message, callback, sender := d.factory(uow.Storages(), scratch)

	err = d.route(ctx, event, message, callback)
	if err == nil {
		if commitErr := uow.Commit(); commitErr != nil {
			err = commitErr
		} else {
			scratch.Flush()
			return ResultSuccess
		}
	}

	if rbErr := uow.Rollback(); rbErr != nil {
		log.Error().Err(rbErr).Str("func", "Handle").Msg("rollback failed")
	}
	scratch.Clear()

	if sendErr, ok := models.AsSendError(err); ok {
		if sendErr.Undeliverable() {
			d.compensate(ctx, sendErr)
			return ResultSuccess
		}

		log.Error().Err(err).
			Str("func", "Handle").
			Int64("user_id", sendErr.UserID).
			Msg("transient delivery failure")
		return ResultRetryNeeded
	}

	log.Error().Err(err).Str("func", "Handle").Msg("event handling failed")

	if event.Message != nil {
		if _, apologyErr := sender.Send(ctx, event.Message.UserID, textSomethingWentWrong, nil); apologyErr != nil {
			log.Warn().Err(apologyErr).Str("func", "Handle").Msg("apology delivery failed")
		}
	}

	return d.classify(err)
}

// route normalizes the event and dispatches it. Contentless messages and
// callbacks, and unrecognized event shapes, are logged no-ops: the turn
// commits as a success so the sender does not redeliver them.
func (d *Dispatcher) route(ctx context.Context, event models.Event, message MessageHandler, callback CallbackHandler) error {
	log := logger.FromContext(ctx)

	switch {
	case event.Message != nil:
		if strings.TrimSpace(event.Message.Text) == "" && event.Message.Location == nil {
			log.Error().
				Str("func", "route").
				Int64("user_id", event.Message.UserID).
				Msg("message has neither text nor location")
			return nil
		}
		return message.Handle(ctx, *event.Message)

	case event.Callback != nil:
		if strings.TrimSpace(event.Callback.Data) == "" {
			log.Error().
				Str("func", "route").
				Int64("user_id", event.Callback.UserID).
				Msg("callback has no data")
			return nil
		}
		return callback.Handle(ctx, *event.Callback)

	default:
		log.Error().Str("func", "route").Msg("no handler for event type")
		return nil
	}
}

// compensate disables a blocked user or deletes a deactivated one. It runs
// on auto-commit repositories with cancellation stripped from the context,
// so the write survives both the rolled-back transaction and an expiring
// request deadline.
func (d *Dispatcher) compensate(ctx context.Context, sendErr *models.SendError) {
	log := logger.FromContext(ctx)
	log.Error().
		Str("func", "compensate").
		Int64("user_id", sendErr.UserID).
		Str("kind", sendErr.Kind.String()).
		Msg("user undeliverable")

	ctx = context.WithoutCancel(ctx)
	users := d.tx.Storages().Users

	var err error
	if sendErr.Kind == models.SendFailureDeactivated {
		err = users.DeleteUser(ctx, sendErr.UserID)
	} else {
		err = users.DisableUser(ctx, sendErr.UserID)
	}
	if err != nil {
		log.Error().Err(err).
			Str("func", "compensate").
			Int64("user_id", sendErr.UserID).
			Msg("compensation write failed")
	}
}

// classify maps a failure onto the dispatcher's result taxonomy: transient
// storage faults ask for redelivery, everything else is final.
func (d *Dispatcher) classify(err error) Result {
	if store.IsTransient(err) {
		return ResultRetryNeeded
	}
	return ResultError
}
