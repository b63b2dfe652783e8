package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "data_tiket.txt", cfg.TicketFile)
	assert.Equal(t, "data_pembelian.txt", cfg.PurchaseFile)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "zero_stock", cfg.ExpiryPolicy)
	assert.Equal(t, 168*time.Hour, cfg.TTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PERSISTENCE_FORMAT", "binary")
	t.Setenv("EXPIRY_POLICY", "delete")
	t.Setenv("TICKET_TTL", "24h")
	t.Setenv("DATA_DIR", "/tmp/tickets")

	cfg := LoadConfig()

	assert.Equal(t, "binary", cfg.Format)
	assert.Equal(t, "delete", cfg.ExpiryPolicy)
	assert.Equal(t, 24*time.Hour, cfg.TTL)
	assert.Equal(t, filepath.Join("/tmp/tickets", "data_tiket.txt"), cfg.TicketPath())
}

func TestLoadConfig_BadDurationFallsBack(t *testing.T) {
	t.Setenv("TICKET_TTL", "not-a-duration")

	cfg := LoadConfig()

	assert.Equal(t, 168*time.Hour, cfg.TTL)
}
