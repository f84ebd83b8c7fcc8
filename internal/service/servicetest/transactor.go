// Package servicetest provides in-memory repositories and a transactor for
// service tests. Stores snapshot their state so a failed transaction leaves
// nothing behind.
package servicetest

import (
	"context"

	"github.com/konveksi/payroll-backend-go/internal/pkg/database"
)

type snapshotter interface {
	snapshot() (restore func())
}

type Transactor struct {
	stores []snapshotter
	Calls  int
}

func NewTransactor(stores ...snapshotter) *Transactor {
	return &Transactor{stores: stores}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.Calls++
	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

var _ database.Transactor = (*Transactor)(nil)
