package store

import (
	"context"
	"database/sql"

	"github.com/mzhuravlev/phrasebot/internal/logger"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are written against it so the same implementation serves both
// transactional and auto-commit access.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Storages bundles all repositories bound to one [Querier]: either a live
// transaction or the connection pool itself.
type Storages struct {
	Users    UserRepository
	Settings SettingsRepository
	Phrases  PhraseRepository
}

// NewStorages constructs the repository set over q.
func NewStorages(q Querier, log *logger.Logger) Storages {
	return Storages{
		Users:    NewUserRepository(q, log),
		Settings: NewSettingsRepository(q, log),
		Phrases:  NewPhraseRepository(q, log),
	}
}
