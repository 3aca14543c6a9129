package main

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/geo"
	"github.com/mzhuravlev/phrasebot/internal/handler"
	handlerhttp "github.com/mzhuravlev/phrasebot/internal/handler/http"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/server"
	"github.com/mzhuravlev/phrasebot/internal/store"
	"github.com/mzhuravlev/phrasebot/internal/telegram"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("phrasebot")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot api client")
	}

	// warning-and-above entries are mirrored to the admin chats
	if len(cfg.Telegram.AdminChatIDs) != 0 {
		log = logger.NewLoggerWithSideChannel(
			"phrasebot",
			logger.NewTelegramWriter(bot, cfg.Telegram.AdminChatIDs),
		)
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	shared := cache.NewShared(cfg.Cache.DefaultTTL, cfg.Cache.CleanupInterval)
	resolver := geo.NewHTTPResolver(cfg.Geo, log)

	dispatcher := handler.NewDispatcher(
		db,
		shared,
		handler.NewHandlerFactory(telegram.NewSenderFactory(bot, log), resolver, log),
		log,
	)

	handlers := handlerhttp.NewHandler(dispatcher, cfg.Telegram, cfg.Server, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := telegram.RegisterWebhook(bot, cfg.Telegram, log); err != nil {
		log.Fatal().Err(err).Msg("error registering webhook")
	}
	defer func() {
		if err := telegram.DeleteWebhook(bot); err != nil {
			log.Error().Err(err).Msg("error deleting webhook")
		}
	}()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
