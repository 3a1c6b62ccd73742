package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedExec struct {
	sql  string
	args []any
}

// cascadeTx records the statements a cascade issues. Only the methods the
// cascade touches are implemented; anything else panics via the embedded nil.
type cascadeTx struct {
	pgx.Tx
	execs       []recordedExec
	projectRows int64
	committed   bool
	rolledBack  bool
}

func (t *cascadeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, recordedExec{sql: sql, args: args})
	if strings.Contains(sql, "FROM projects") {
		return pgconn.NewCommandTag(fmt.Sprintf("DELETE %d", t.projectRows)), nil
	}
	return pgconn.NewCommandTag("DELETE 2"), nil
}

func (t *cascadeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *cascadeTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

type cascadeBeginner struct {
	tx *cascadeTx
}

func (b *cascadeBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

func TestDeleteProjectCascadeOrder(t *testing.T) {
	tx := &cascadeTx{projectRows: 1}
	err := deleteProjectCascade(context.Background(), &cascadeBeginner{tx: tx}, "usr_1", "prj_1")
	require.NoError(t, err)

	require.Len(t, tx.execs, 2)
	assert.Contains(t, tx.execs[0].sql, "FROM project_screenshots")
	assert.Equal(t, []any{"prj_1"}, tx.execs[0].args)
	assert.Contains(t, tx.execs[1].sql, "FROM projects")
	assert.Equal(t, []any{"prj_1", "usr_1"}, tx.execs[1].args)
	assert.True(t, tx.committed)
}

func TestDeleteProjectCascadeMissingProject(t *testing.T) {
	tx := &cascadeTx{projectRows: 0}
	err := deleteProjectCascade(context.Background(), &cascadeBeginner{tx: tx}, "usr_1", "prj_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}
