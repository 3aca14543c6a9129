package service

import (
	"github.com/mzhuravlev/phrasebot/internal/cache"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/internal/store"
)

// Services bundles the domain services constructed for one event. The
// dispatcher builds a fresh bundle per event over the transaction's
// repositories and the event's scratch buffer.
type Services struct {
	UserService   UserService
	PhraseService PhraseService
}

func NewServices(storages store.Storages, scratch *cache.Scratch, logger *logger.Logger) *Services {
	return &Services{
		UserService:   NewUserService(storages.Users, storages.Settings, scratch, logger),
		PhraseService: NewPhraseService(storages.Phrases, logger),
	}
}
