package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "meeplehub", cfg.Database.DBName)
	assert.Equal(t, "1h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "5m", cfg.Email.ResetCodeExpiry)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  dbname: "meeplehub_test"
jwt:
  secret: "from-file"
email:
  reset_code_expiry: "10m"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	// Environment wins over the file
	t.Setenv("DB_NAME", "meeplehub_env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "meeplehub_env", cfg.Database.DBName)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "10m", cfg.Email.ResetCodeExpiry)
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RESET_CODE_EXPIRY", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset code expiry")
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "meeplehub"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/meeplehub?sslmode=disable",
		cfg.GetPostgresConnectionString(),
	)
}
