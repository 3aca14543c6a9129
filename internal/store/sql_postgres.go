package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mzhuravlev/phrasebot/internal/config"
	"github.com/mzhuravlev/phrasebot/internal/logger"
	"github.com/mzhuravlev/phrasebot/migrations"
)

// DB wraps the PostgreSQL connection pool and implements [TxManager].
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens and pings the PostgreSQL connection described by
// cfg and returns the wrapped pool.
func NewConnectPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Storages returns repositories bound directly to the connection pool.
// Each call runs in auto-commit mode, independent of any open transaction.
func (db *DB) Storages() Storages {
	return NewStorages(db.DB, db.logger)
}

// Begin opens a transaction and returns the unit of work bound to it.
func (db *DB) Begin(ctx context.Context) (UnitOfWork, error) {
	log := logger.FromContext(ctx)

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.Begin").Msg("error beginning transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	return &unitOfWork{
		tx:       tx,
		storages: NewStorages(tx, db.logger),
	}, nil
}

type unitOfWork struct {
	tx       *sql.Tx
	storages Storages
}

func (u *unitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}

func (u *unitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func (u *unitOfWork) Storages() Storages {
	return u.storages
}

// postgresError extracts the PostgreSQL error code from an error chain, or
// returns an empty string when the error did not originate in the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// IsTransient reports whether err is an infrastructure fault that may
// resolve on redelivery: a lost connection, a failed statement or a failed
// transaction boundary. Domain errors (not-found, already-exists, validation)
// are not transient, and neither is a cancelled or expired context: the
// event's turn is over, redelivery cannot revive it.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}

	return errors.Is(err, ErrExecutingQuery) ||
		errors.Is(err, ErrExecutingStatement) ||
		errors.Is(err, ErrBeginningTransaction) ||
		errors.Is(err, ErrCommittingTransaction) ||
		errors.Is(err, ErrScanningRow)
}
