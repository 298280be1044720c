package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "booking_events", cfg.Kafka.BookingEventsTopic)
	assert.Equal(t, 10, cfg.Booking.LockTTLSeconds)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
database:
  host: db
  port: 6543
  name: staffing
kafka:
  brokers: ["kafka:9092"]
media:
  base_url: "https://cdn.example.com/media/"
`), 0o600))

	t.Setenv("WORKERSHUB_DB_HOST", "override-host")
	t.Setenv("WORKERSHUB_KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTP.Address)
	assert.Equal(t, "override-host", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "staffing", cfg.Database.Name)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "https://cdn.example.com/media/", cfg.Media.BaseURL)
	// untouched defaults survive a partial file
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [unterminated"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())

	d.MaxConns = 20
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=n sslmode=disable pool_max_conns=20", d.DSN())
}
