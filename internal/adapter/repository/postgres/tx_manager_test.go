package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
)

func newPgxmockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func requireExpectations(t *testing.T, pool pgxmock.PgxPoolIface) {
	t.Helper()
	if err := pool.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet pgxmock expectations: %v", err)
	}
}

func TestTxManager_BeginAndCommit(t *testing.T) {
	pool := newPgxmockPool(t)
	pool.ExpectBegin()
	pool.ExpectCommit()

	manager := newTxManagerWithPool(pool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	requireExpectations(t, pool)
}

func TestTxManager_BeginFailure(t *testing.T) {
	pool := newPgxmockPool(t)
	beginErr := errors.New("connection refused")
	pool.ExpectBegin().WillReturnError(beginErr)

	manager := newTxManagerWithPool(pool)
	if _, err := manager.Begin(context.Background()); !errors.Is(err, beginErr) {
		t.Fatalf("expected the pool error to surface, got %v", err)
	}
}

func TestTxManager_Rollback(t *testing.T) {
	pool := newPgxmockPool(t)
	pool.ExpectBegin()
	pool.ExpectRollback()

	manager := newTxManagerWithPool(pool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	if err := tx.Rollback(context.Background()); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}

	requireExpectations(t, pool)
}

// Repositories reach the raw pgx transaction through PgxTx to run
// their statements; the commit must cover work done that way.
func TestTx_PgxTxRunsStatements(t *testing.T) {
	pool := newPgxmockPool(t)
	pool.ExpectBegin()
	pool.ExpectExec("INSERT INTO withdrawals").
		WithArgs("wdr-1", "emp-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	pool.ExpectCommit()

	manager := newTxManagerWithPool(pool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	pgxTx := tx.(*Tx).PgxTx()
	if _, err := pgxTx.Exec(context.Background(),
		"INSERT INTO withdrawals (id, employee_id) VALUES ($1, $2)", "wdr-1", "emp-1"); err != nil {
		t.Fatalf("exec through PgxTx failed: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	requireExpectations(t, pool)
}
