// internals/features/school/deletions/repository/gorm_store.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultBatchSize = 500

type GormStore struct {
	db        *gorm.DB
	batchSize int
}

// NewGormStore: batchSize = jumlah id maksimum per IN (...), sisanya dipecah.
func NewGormStore(db *gorm.DB, batchSize int) *GormStore {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &GormStore{db: db, batchSize: batchSize}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx, batchSize: s.batchSize})
	})
}

type gormTx struct {
	db        *gorm.DB
	batchSize int
}

func (t *gormTx) FindByID(ctx context.Context, table, pk, labelColumn string, id int64, lock bool) (string, error) {
	col := labelColumn
	if col == "" {
		col = pk
	}
	q := t.db.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: pk}, Value: id}).
		Limit(1)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var labels []sql.NullString
	if err := q.Pluck(col, &labels).Error; err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", ErrNotFound
	}
	if labelColumn == "" || !labels[0].Valid || labels[0].String == "" {
		return "#" + strconv.FormatInt(id, 10), nil
	}
	return labels[0].String, nil
}

func (t *gormTx) PluckIDs(ctx context.Context, f Filter, pk string) ([]int64, error) {
	out := make([]int64, 0)
	err := t.eachChunk(f.Values, func(chunk []int64) error {
		var ids []int64
		if err := t.where(ctx, f, chunk).Order(pk).Pluck(pk, &ids).Error; err != nil {
			return err
		}
		out = append(out, ids...)
		return nil
	})
	return out, err
}

func (t *gormTx) Count(ctx context.Context, f Filter) (int64, error) {
	var total int64
	err := t.eachChunk(f.Values, func(chunk []int64) error {
		var n int64
		if err := t.where(ctx, f, chunk).Count(&n).Error; err != nil {
			return err
		}
		total += n
		return nil
	})
	return total, err
}

func (t *gormTx) DeleteMany(ctx context.Context, f Filter) (int64, error) {
	var total int64
	err := t.eachChunk(f.Values, func(chunk []int64) error {
		res := t.where(ctx, f, chunk).Delete(map[string]any{})
		if res.Error != nil {
			return res.Error
		}
		total += res.RowsAffected
		return nil
	})
	return total, err
}

func (t *gormTx) where(ctx context.Context, f Filter, values []int64) *gorm.DB {
	in := make([]any, len(values))
	for i, v := range values {
		in[i] = v
	}
	return t.db.WithContext(ctx).
		Table(f.Table).
		Where(clause.IN{Column: clause.Column{Name: f.Column}, Values: in})
}

// eachChunk: filter kosong = tidak ada query sama sekali.
func (t *gormTx) eachChunk(values []int64, fn func(chunk []int64) error) error {
	for start := 0; start < len(values); start += t.batchSize {
		end := start + t.batchSize
		if end > len(values) {
			end = len(values)
		}
		if err := fn(values[start:end]); err != nil {
			return err
		}
	}
	return nil
}

// IsNotFound juga mengenali gorm.ErrRecordNotFound dari caller lain.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
