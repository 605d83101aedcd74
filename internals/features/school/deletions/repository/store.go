// internals/features/school/deletions/repository/store.go
package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Filter: baris di Table yang kolom Column-nya ada di Values.
type Filter struct {
	Table  string
	Column string
	Values []int64
}

// Store membuka transaksi. fn error → rollback, nil → commit.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Tx) error) error
}

// Tx adalah handle yang terikat ke satu transaksi.
type Tx interface {
	// FindByID mengambil label baris (lock=true → SELECT ... FOR UPDATE).
	// ErrNotFound jika baris tidak ada.
	FindByID(ctx context.Context, table, pk, labelColumn string, id int64, lock bool) (string, error)
	PluckIDs(ctx context.Context, f Filter, pk string) ([]int64, error)
	Count(ctx context.Context, f Filter) (int64, error)
	DeleteMany(ctx context.Context, f Filter) (int64, error)
}
