package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/mock"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/internal/telegram"
	"github.com/mzhuravlev/phrasebot/models"
)

type dispatcherFixture struct {
	dispatcher *Dispatcher
	tx         *mock.MockTxManager
	uow        *mock.MockUnitOfWork
	message    *mock.MockMessageHandler
	callback   *mock.MockCallbackHandler
	sender     *mock.MockSender
	shared     *cache.Shared

	// scratch is captured when the dispatcher invokes the factory.
	scratch *cache.Scratch
}

func newDispatcherFixture(t *testing.T, ctrl *gomock.Controller) *dispatcherFixture {
	t.Helper()

	f := &dispatcherFixture{
		tx:       mock.NewMockTxManager(ctrl),
		uow:      mock.NewMockUnitOfWork(ctrl),
		message:  mock.NewMockMessageHandler(ctrl),
		callback: mock.NewMockCallbackHandler(ctrl),
		sender:   mock.NewMockSender(ctrl),
		shared:   cache.NewShared(time.Minute, 0),
	}

	factory := func(storages store.Storages, scratch *cache.Scratch) (MessageHandler, CallbackHandler, telegram.Sender) {
		f.scratch = scratch
		return f.message, f.callback, f.sender
	}

	f.dispatcher = NewDispatcher(f.tx, f.shared, factory, logger.Nop())

	return f
}

func (f *dispatcherFixture) expectBegin(ctx context.Context) {
	f.tx.EXPECT().Begin(ctx).Return(f.uow, nil)
	f.uow.EXPECT().Storages().Return(store.Storages{})
}

func textMessageEvent(userID int64, text string) models.Event {
	return models.Event{Message: &models.Message{UserID: userID, Text: text}}
}

func TestDispatcher_CommitFlushesScratchWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Message) error {
			f.scratch.Set("turn_key", "turn_value", 0)
			return nil
		},
	)
	f.uow.EXPECT().Commit().Return(nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultSuccess, result)

	value, ok := f.shared.TryGet("turn_key")
	require.True(t, ok)
	assert.Equal(t, "turn_value", value)
}

func TestDispatcher_RollbackDiscardsScratchWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Message) error {
			f.scratch.Set("turn_key", "turn_value", 0)
			return errors.New("handler blew up")
		},
	)
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).Return(models.Receipt{MessageID: 1}, nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultError, result)

	_, ok := f.shared.TryGet("turn_key")
	assert.False(t, ok)
}

func TestDispatcher_TransientStorageFaultAsksForRedelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).Return(models.Receipt{MessageID: 1}, nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultRetryNeeded, result)
}

func TestDispatcher_ApologyFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).Return(errors.New("handler blew up"))
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).
		Return(models.Receipt{}, errors.New("apology failed too"))

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultError, result)
}

func TestDispatcher_TransientSendFailureAsksForRedeliveryWithoutApology(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	sendErr := &models.SendError{Kind: models.SendFailureTransient, UserID: 42, Cause: errors.New("bad gateway")}

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).Return(sendErr)
	f.uow.EXPECT().Rollback().Return(nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultRetryNeeded, result)
}

func TestDispatcher_BlockedRecipientIsDisabledNotDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	sendErr := &models.SendError{Kind: models.SendFailureBlocked, UserID: 42, Cause: errors.New("blocked")}
	users := mock.NewMockUserRepository(ctrl)

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Message) error {
			f.scratch.Set("turn_key", "turn_value", 0)
			return sendErr
		},
	)
	f.uow.EXPECT().Rollback().Return(nil)
	f.tx.EXPECT().Storages().Return(store.Storages{Users: users})
	users.EXPECT().DisableUser(gomock.Any(), int64(42)).Return(nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultSuccess, result)

	// the rolled-back turn's cache writes must not leak
	_, ok := f.shared.TryGet("turn_key")
	assert.False(t, ok)
}

func TestDispatcher_DeactivatedRecipientIsDeletedNotDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	sendErr := &models.SendError{Kind: models.SendFailureDeactivated, UserID: 42, Cause: errors.New("deactivated")}
	users := mock.NewMockUserRepository(ctrl)

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).Return(sendErr)
	f.uow.EXPECT().Rollback().Return(nil)
	f.tx.EXPECT().Storages().Return(store.Storages{Users: users})
	users.EXPECT().DeleteUser(gomock.Any(), int64(42)).Return(nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_CompensationRunsWithCancellationStripped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	sendErr := &models.SendError{Kind: models.SendFailureBlocked, UserID: 42, Cause: errors.New("blocked")}
	users := mock.NewMockUserRepository(ctrl)

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Message) error {
			cancel()
			return sendErr
		},
	)
	f.uow.EXPECT().Rollback().Return(nil)
	f.tx.EXPECT().Storages().Return(store.Storages{Users: users})
	users.EXPECT().DisableUser(gomock.Any(), int64(42)).DoAndReturn(
		func(compCtx context.Context, _ int64) error {
			assert.NoError(t, compCtx.Err(), "compensation context must not carry the cancelled deadline")
			return nil
		},
	)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_ContentlessMessageCommitsAsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.uow.EXPECT().Commit().Return(nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "   "))
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_EmptyCallbackDataCommitsAsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.uow.EXPECT().Commit().Return(nil)

	result := f.dispatcher.Handle(ctx, models.Event{Callback: &models.Callback{UserID: 42}})
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_UnrecognizedEventShapeCommitsAsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.uow.EXPECT().Commit().Return(nil)

	result := f.dispatcher.Handle(ctx, models.Event{})
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_CallbackEventRoutesToCallbackHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.callback.EXPECT().Handle(ctx, models.Callback{UserID: 42, Data: "DeletePhrase:7"}).Return(nil)
	f.uow.EXPECT().Commit().Return(nil)

	result := f.dispatcher.Handle(ctx, models.Event{Callback: &models.Callback{UserID: 42, Data: "DeletePhrase:7"}})
	assert.Equal(t, ResultSuccess, result)
}

func TestDispatcher_CallbackFailureSendsNoApology(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.callback.EXPECT().Handle(ctx, gomock.Any()).Return(ErrBadCallbackData)
	f.uow.EXPECT().Rollback().Return(nil)

	result := f.dispatcher.Handle(ctx, models.Event{Callback: &models.Callback{UserID: 42, Data: "DeletePhrase:x"}})
	assert.Equal(t, ResultError, result)
}

func TestDispatcher_BeginFailureAsksForRedelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.tx.EXPECT().Begin(ctx).
		Return(nil, fmt.Errorf("%w: down for maintenance", store.ErrBeginningTransaction))

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultRetryNeeded, result)
}

func TestDispatcher_CommitFailureAsksForRedelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Message) error {
			f.scratch.Set("turn_key", "turn_value", 0)
			return nil
		},
	)
	f.uow.EXPECT().Commit().
		Return(fmt.Errorf("%w: %w", store.ErrCommittingTransaction, errors.New("connection reset")))
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).Return(models.Receipt{MessageID: 1}, nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultRetryNeeded, result)

	_, ok := f.shared.TryGet("turn_key")
	assert.False(t, ok)
}

func TestDispatcher_CancelledContextIsFinalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).
		Return(fmt.Errorf("delivery aborted: %w", context.Canceled))
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).
		Return(models.Receipt{}, context.Canceled)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultError, result)
}

func TestDispatcher_CancelledStorageCallIsFinalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newDispatcherFixture(t, ctrl)
	ctx := context.Background()

	// the deadline fires inside a repository call, so the cancellation
	// surfaces wrapped in a storage sentinel instead of a delivery error
	f.expectBegin(ctx)
	f.message.EXPECT().Handle(ctx, gomock.Any()).
		Return(fmt.Errorf("%w: %w", store.ErrExecutingStatement, context.DeadlineExceeded))
	f.uow.EXPECT().Rollback().Return(nil)
	f.sender.EXPECT().Send(ctx, int64(42), textSomethingWentWrong, nil).
		Return(models.Receipt{MessageID: 1}, nil)

	result := f.dispatcher.Handle(ctx, textMessageEvent(42, "hello"))
	assert.Equal(t, ResultError, result)
}
