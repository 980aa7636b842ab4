package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "VISUS API", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin", cfg.Admin.Password)
	assert.Equal(t, StorageModeLocal, cfg.Storage.Mode)
	assert.Equal(t, "/app/storage", cfg.Storage.LocalPath)
	assert.Equal(t, "http://localhost:8080/media", cfg.Storage.LocalPublicURL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:4173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("LOCAL_STORAGE_PATH", "/srv/files")
	t.Setenv("ALLOWED_ORIGINS", " https://clinic.kz , ,https://admin.clinic.kz")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("SEED_ON_STARTUP", "true")

	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, "/srv/files", cfg.Storage.LocalPath)
	assert.Equal(t, []string{"https://clinic.kz", "https://admin.clinic.kz"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.App.SeedOnStartup)
}

func TestLoadFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("APP_PORT=9090\nADMIN_PASSWORD=fromfile\n"), 0o600))

	cfg, err := load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "fromfile", cfg.Admin.Password)
}

func TestLoadRejectsUnknownStorageMode(t *testing.T) {
	t.Setenv("STORAGE_MODE", "ftp")

	_, err := load("")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DBConfig
		want string
	}{
		{
			name: "sqlalchemy url",
			cfg:  DBConfig{URL: "postgresql+psycopg2://visus:visus@db:5432/visus"},
			want: "postgresql://visus:visus@db:5432/visus",
		},
		{
			name: "plain url",
			cfg:  DBConfig{URL: "postgres://u:p@localhost/clinic?sslmode=disable"},
			want: "postgres://u:p@localhost/clinic?sslmode=disable",
		},
		{
			name: "discrete settings",
			cfg: DBConfig{
				Host: "db", Port: "5432", User: "visus", Password: "pw",
				Name: "visus", SSLMode: "disable", TimeZone: "Asia/Almaty",
			},
			want: "host=db user=visus password=pw dbname=visus port=5432 sslmode=disable TimeZone=Asia/Almaty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
