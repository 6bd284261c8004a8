package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: un pool que solo sabe abrir transacciones y una tx que
// registra commit/rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTx struct {
	begun      bool
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) {
	t.begun = true
	return t, nil
}
func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}
func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}
func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

type fakePool struct {
	tx       *fakeTx
	beginErr error
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	return p.tx, nil
}
func (p *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests inTx: las escrituras de varias sentencias (rol + claves, cotización +
// líneas) dependen de este helper para no quedar a medias sobre el pool.
// ──────────────────────────────────────────────────────────────────────────────

func TestInTx_SobreElPool_AbreTxYComitea(t *testing.T) {
	tx := &fakeTx{}
	pool := &fakePool{tx: tx}

	var seen Querier
	err := inTx(context.Background(), pool, func(q Querier) error {
		seen = q
		return nil
	})
	require.NoError(t, err)

	assert.Same(t, tx, seen, "el callback debe operar sobre la tx, no sobre el pool")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestInTx_SobreElPool_ErrorHaceRollback(t *testing.T) {
	tx := &fakeTx{}
	pool := &fakePool{tx: tx}
	fallo := errors.New("insert role permission: conexión caída")

	err := inTx(context.Background(), pool, func(q Querier) error {
		return fallo
	})
	require.ErrorIs(t, err, fallo)

	assert.False(t, tx.committed, "nada se comitea si una sentencia intermedia falla")
	assert.True(t, tx.rolledBack)
}

// Dentro de una tx del TxRunner el helper no anida: ejecuta directo y deja
// commit/rollback en manos del caller.
func TestInTx_DentroDeUnaTx_NoAnida(t *testing.T) {
	tx := &fakeTx{}

	var seen Querier
	err := inTx(context.Background(), tx, func(q Querier) error {
		seen = q
		return nil
	})
	require.NoError(t, err)

	assert.Same(t, tx, seen)
	assert.False(t, tx.begun, "no se abre una tx anidada")
	assert.False(t, tx.committed, "el commit es del caller")
}

func TestInTx_BeginFalla(t *testing.T) {
	pool := &fakePool{beginErr: errors.New("pool agotado")}

	called := false
	err := inTx(context.Background(), pool, func(q Querier) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called, "sin tx no se ejecuta ninguna sentencia")
}
