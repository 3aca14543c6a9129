package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/logger"
)

// WebhookPath returns the bot-local URL path updates arrive on. The secret
// acts as the path segment authenticating calls, so only Telegram (which was
// told the full URL) can reach the endpoint.
func WebhookPath(secret string) string {
	return "/webhook/" + secret
}

func webhookEndpoint(cfg config.Telegram) string {
	return strings.TrimRight(cfg.WebhookURL, "/") + WebhookPath(cfg.WebhookSecret)
}

// RegisterWebhook points Telegram at this instance's webhook endpoint and
// logs any delivery error Telegram already recorded for the previous
// registration.
func RegisterWebhook(bot *tgbotapi.BotAPI, cfg config.Telegram, log *logger.Logger) error {
	wh, err := tgbotapi.NewWebhook(webhookEndpoint(cfg))
	if err != nil {
		return fmt.Errorf("building webhook config: %w", err)
	}

	if _, err = bot.Request(wh); err != nil {
		return fmt.Errorf("registering webhook: %w", err)
	}

	info, err := bot.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("reading webhook info: %w", err)
	}
	if info.LastErrorDate != 0 {
		log.Warn().
			Str("func", "RegisterWebhook").
			Str("last_error", info.LastErrorMessage).
			Msg("telegram reported a webhook delivery error")
	}

	return nil
}

// DeleteWebhook removes the registration on shutdown. Pending updates are
// kept so Telegram redelivers them to the next instance.
func DeleteWebhook(bot *tgbotapi.BotAPI) error {
	if _, err := bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}
	return nil
}
