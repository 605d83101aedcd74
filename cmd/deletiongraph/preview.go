package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/school/deletions/registry"
	deletionRoute "schoolku_backend/internals/features/school/deletions/route"
)

var previewCmd = &cobra.Command{
	Use:   "preview <entity> <id>",
	Short: "Count what deleting one row would remove (read-only, always rolled back)",
	Args:  cobra.ExactArgs(2),
	RunE:  runPreview,
}

var previewDSN string

// openDB diganti di test.
var openDB = func(dsn string) (*gorm.DB, func(), error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: configs.NewGormLogger()})
	if err != nil {
		return nil, nil, err
	}
	return db, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewDSN, "dsn", "", "PostgreSQL DSN (default: dibangun dari DB_* env)")
}

type previewDoc struct {
	Entity    string           `yaml:"entity"`
	ID        int64            `yaml:"id"`
	Label     string           `yaml:"label"`
	Tipo      string           `yaml:"tipo"`
	Deletable bool             `yaml:"deletable"`
	Detalhes  map[string]int64 `yaml:"detalhes"`
	Message   string           `yaml:"message"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("id tidak valid: %q", args[1])
	}

	configs.LoadEnv()
	dsn := previewDSN
	if dsn == "" {
		dsn = configs.PostgresDSN()
	}
	db, closeDB, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("koneksi DB gagal: %w", err)
	}
	defer closeDB()

	engine := deletionRoute.NewEngine(db, configs.Deletion)
	prev, err := engine.PreviewEntity(cmd.Context(), registry.EntityType(args[0]), id)
	if err != nil {
		return err
	}

	return writeYAML(cmd.OutOrStdout(), previewDoc{
		Entity:    string(prev.Entity),
		ID:        prev.ID,
		Label:     prev.Label,
		Tipo:      string(prev.Kind),
		Deletable: prev.Deletable,
		Detalhes:  prev.Details,
		Message:   prev.Message,
	})
}
