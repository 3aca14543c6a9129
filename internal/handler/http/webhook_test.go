package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/handler"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/models"
)

type fakeDispatcher struct {
	result handler.Result

	events []models.Event
}

func (f *fakeDispatcher) Handle(ctx context.Context, event models.Event) handler.Result {
	f.events = append(f.events, event)
	return f.result
}

func newTestHandler(dispatcher *fakeDispatcher) *Handler {
	return NewHandler(
		dispatcher,
		config.Telegram{WebhookSecret: "s3cret"},
		config.Server{RequestTimeout: time.Second},
		logger.Nop(),
	)
}

func postUpdate(t *testing.T, h *Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	return rec
}

func TestWebhook_MessageUpdate(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	body := `{"update_id":1,"message":{"message_id":10,"from":{"id":42},"chat":{"id":42},"text":"hello"}}`
	rec := postUpdate(t, h, "/webhook/s3cret", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, dispatcher.events, 1)
	event := dispatcher.events[0]
	require.NotNil(t, event.Message)
	assert.Equal(t, int64(42), event.Message.UserID)
	assert.Equal(t, "hello", event.Message.Text)
	assert.Nil(t, event.Message.Location)
}

func TestWebhook_LocationUpdate(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	body := `{"update_id":1,"message":{"message_id":10,"from":{"id":42},"chat":{"id":42},"location":{"latitude":40.7,"longitude":-74.0}}}`
	rec := postUpdate(t, h, "/webhook/s3cret", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, dispatcher.events, 1)
	require.NotNil(t, dispatcher.events[0].Message)
	location := dispatcher.events[0].Message.Location
	require.NotNil(t, location)
	assert.Equal(t, 40.7, location.Latitude)
	assert.Equal(t, -74.0, location.Longitude)
}

func TestWebhook_CallbackUpdate(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	body := `{"update_id":1,"callback_query":{"id":"cb1","from":{"id":42},"data":"DeletePhrase:7"}}`
	rec := postUpdate(t, h, "/webhook/s3cret", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, dispatcher.events, 1)
	callback := dispatcher.events[0].Callback
	require.NotNil(t, callback)
	assert.Equal(t, int64(42), callback.UserID)
	assert.Equal(t, "DeletePhrase:7", callback.Data)
}

func TestWebhook_RetryNeededMapsTo500(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultRetryNeeded}
	h := newTestHandler(dispatcher)

	rec := postUpdate(t, h, "/webhook/s3cret", `{"update_id":1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWebhook_FinalErrorMapsTo200(t *testing.T) {
	// final errors answer 200 so Telegram does not redeliver an update
	// that will only fail again
	dispatcher := &fakeDispatcher{result: handler.ResultError}
	h := newTestHandler(dispatcher)

	rec := postUpdate(t, h, "/webhook/s3cret", `{"update_id":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_WrongSecretIs404(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	rec := postUpdate(t, h, "/webhook/wrong", `{"update_id":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, dispatcher.events)
}

func TestWebhook_MalformedPayloadIs200(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	rec := postUpdate(t, h, "/webhook/s3cret", `{not json`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dispatcher.events)
}

func TestWebhook_SetsTraceIDHeader(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	rec := postUpdate(t, h, "/webhook/s3cret", `{"update_id":1}`)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestNormalizeUpdate_NoSenderComesOutEmpty(t *testing.T) {
	dispatcher := &fakeDispatcher{result: handler.ResultSuccess}
	h := newTestHandler(dispatcher)

	body := `{"update_id":1,"message":{"message_id":10,"chat":{"id":42},"text":"hello"}}`
	rec := postUpdate(t, h, "/webhook/s3cret", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.events, 1)
	assert.Nil(t, dispatcher.events[0].Message)
	assert.Nil(t, dispatcher.events[0].Callback)
}
