package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mzhuravlev/phrasebot/internal/logger"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bad connection", driver.ErrBadConn, true},
		{"postgres error", &pgconn.PgError{Code: "57P01"}, true},
		{"wrapped executing query", fmt.Errorf("%w: boom", ErrExecutingQuery), true},
		{"wrapped executing statement", fmt.Errorf("%w: boom", ErrExecutingStatement), true},
		{"begin failure", fmt.Errorf("%w: boom", ErrBeginningTransaction), true},
		{"commit failure", fmt.Errorf("%w: boom", ErrCommittingTransaction), true},
		{"scan failure", fmt.Errorf("%w: boom", ErrScanningRow), true},
		{"cancelled context", context.Canceled, false},
		{"expired deadline", context.DeadlineExceeded, false},
		{"statement aborted by cancellation", fmt.Errorf("%w: %w", ErrExecutingStatement, context.Canceled), false},
		{"scan aborted by deadline", fmt.Errorf("%w: %w", ErrScanningRow, context.DeadlineExceeded), false},
		{"user not found", ErrUserNotFound, false},
		{"already exists", ErrUserAlreadyExists, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	db := &DB{DB: conn, logger: logger.NewLogger("test")}

	mock.ExpectBegin()
	mock.ExpectCommit()

	uow, err := db.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uow.Commit(); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	// rollback after commit must be a silent no-op
	if err := uow.Rollback(); err != nil {
		t.Fatalf("rollback after commit should be a no-op, got: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUnitOfWork_Rollback(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	db := &DB{DB: conn, logger: logger.NewLogger("test")}

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow, err := db.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uow.Rollback(); err != nil {
		t.Fatalf("unexpected rollback error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestBegin_Failure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	db := &DB{DB: conn, logger: logger.NewLogger("test")}

	mock.ExpectBegin().WillReturnError(errors.New("db is down"))

	_, err = db.Begin(context.Background())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
	if !IsTransient(err) {
		t.Errorf("a begin failure must classify as transient")
	}
}
