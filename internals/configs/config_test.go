package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDeletionConfig(t *testing.T) {
	t.Setenv("DELETE_TX_TIMEOUT", "45s")
	t.Setenv("DELETE_BATCH_SIZE", "100")

	cfg := LoadDeletionConfig()
	assert.Equal(t, 45*time.Second, cfg.TxTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
}

func TestLoadDeletionConfig_InvalidFallsBack(t *testing.T) {
	t.Setenv("DELETE_TX_TIMEOUT", "soon")
	t.Setenv("DELETE_BATCH_SIZE", "-3")

	cfg := LoadDeletionConfig()
	assert.Equal(t, 30*time.Second, cfg.TxTimeout)
	assert.Equal(t, 500, cfg.BatchSize)
}
