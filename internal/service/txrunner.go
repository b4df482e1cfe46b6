package service

import (
	"context"

	"organizame.app/api/core/db"
	"organizame.app/api/core/db/sqlc"
	"organizame.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Workspaces() store.WorkspaceStore
	Boards() store.BoardStore
	Stages() store.StageStore
	Tasks() store.TaskStore
	Tags() store.TagStore
	Subtasks() store.SubtaskStore
	Attachments() store.AttachmentStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}
