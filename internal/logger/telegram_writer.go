package logger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// defaultPacingDelay is the fixed delay enforced between consecutive sends
// to the side channel, to respect outbound rate limits.
const defaultPacingDelay = time.Second

// chatSender is the subset of the bot API used by the side channel.
// *tgbotapi.BotAPI satisfies it.
type chatSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramWriter forwards warning-and-above log entries to a fixed set of
// admin chats. It is an independent observer with its own failure domain:
// sends happen on background goroutines, consecutive sends are serialized
// through a single mutex shared by all callers (a compliance gate for the
// chat channel's rate limits), and every failure is swallowed.
//
// It implements zerolog.LevelWriter and is attached to a logger via
// [NewLoggerWithSideChannel].
type TelegramWriter struct {
	sender  chatSender
	chatIDs []int64
	pacing  time.Duration

	mu sync.Mutex
}

// NewTelegramWriter constructs a side-channel writer that reports to the
// given admin chat ids.
func NewTelegramWriter(sender chatSender, chatIDs []int64) *TelegramWriter {
	return &TelegramWriter{
		sender:  sender,
		chatIDs: chatIDs,
		pacing:  defaultPacingDelay,
	}
}

// Write satisfies io.Writer. Entries arriving without level information are
// ignored: the side channel only reports diagnosable problems.
func (w *TelegramWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

// WriteLevel forwards warning, error and fatal entries to the admin chats.
// It never blocks the logging call and never returns a non-nil error.
func (w *TelegramWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.WarnLevel {
		return len(p), nil
	}

	// zerolog reuses the entry buffer after WriteLevel returns
	entry := make([]byte, len(p))
	copy(entry, p)

	go w.report(level, entry)

	return len(p), nil
}

func (w *TelegramWriter) report(level zerolog.Level, entry []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	text := w.formatEntry(level, entry)

	for _, chatID := range w.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML

		// best effort: a broken side channel must never affect the caller
		_, _ = w.sender.Send(msg)

		time.Sleep(w.pacing)
	}
}

// formatEntry renders one JSON log entry as an HTML chat message: bold level
// header, the message line, then the remaining structured fields.
func (w *TelegramWriter) formatEntry(level zerolog.Level, entry []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(entry, &fields); err != nil {
		return fmt.Sprintf("<b>%s</b>\n<pre>%s</pre>",
			strings.ToUpper(level.String()),
			tgbotapi.EscapeText(tgbotapi.ModeHTML, string(entry)))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>%s</b>", strings.ToUpper(level.String())))

	if message, ok := fields[zerolog.MessageFieldName].(string); ok {
		sb.WriteString(fmt.Sprintf("\n%s", tgbotapi.EscapeText(tgbotapi.ModeHTML, message)))
		delete(fields, zerolog.MessageFieldName)
	}

	delete(fields, zerolog.LevelFieldName)

	for key, value := range fields {
		sb.WriteString(fmt.Sprintf("\n<code>%s</code>: %s",
			tgbotapi.EscapeText(tgbotapi.ModeHTML, key),
			tgbotapi.EscapeText(tgbotapi.ModeHTML, fmt.Sprint(value))))
	}

	return sb.String()
}
