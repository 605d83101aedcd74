// Package testutil menyiapkan database SQLite (file sementara) berisi skema sekolah.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/features/school/deletions/model"
)

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	// file di TempDir, bukan :memory:, supaya koneksi yang dibuang database/sql
	// (mis. saat context dibatalkan di tengah transaksi) tidak ikut menghapus data
	dsn := filepath.Join(t.TempDir(), "school.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi: hindari SQLITE_BUSY antar koneksi
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// Create menyimpan semua row, gagal = test berhenti.
func Create(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

// Count menghitung baris pada tabel dengan kondisi opsional.
func Count(t *testing.T, db *gorm.DB, table string, where ...any) int64 {
	t.Helper()
	var n int64
	q := db.Table(table)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func Ptr[T any](v T) *T { return &v }
