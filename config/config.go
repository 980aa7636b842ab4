package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Admin   AdminConfig
	Storage StorageConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name          string
	Port          string
	Env           string
	LogLevel      string
	SeedOnStartup bool
}

type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Host          string
	Port          string
	Password      string
	DB            int
	NotifyChannel string
}

// Enabled reports whether a Redis host was configured at all.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AdminConfig struct {
	Username string
	Password string
}

type StorageConfig struct {
	Mode            string
	LocalPath       string
	LocalPublicURL  string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicURL     string
	UploadMaxMemory int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	StorageModeLocal = "local"
	StorageModeS3    = "s3"
)

// LoadConfig reads settings from the process environment, optionally
// overlaid on a .env file in the working directory.
func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Port:          v.GetString("APP_PORT"),
			Env:           v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			SeedOnStartup: v.GetBool("SEED_ON_STARTUP"),
		},
		DB: DBConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			TimeZone: v.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:          v.GetString("REDIS_HOST"),
			Port:          v.GetString("REDIS_PORT"),
			Password:      v.GetString("REDIS_PASSWORD"),
			DB:            v.GetInt("REDIS_DB"),
			NotifyChannel: v.GetString("NOTIFY_CHANNEL"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			Mode:            strings.ToLower(v.GetString("STORAGE_MODE")),
			LocalPath:       v.GetString("LOCAL_STORAGE_PATH"),
			LocalPublicURL:  v.GetString("LOCAL_PUBLIC_URL"),
			S3Endpoint:      v.GetString("S3_ENDPOINT"),
			S3AccessKey:     v.GetString("S3_ACCESS_KEY"),
			S3SecretKey:     v.GetString("S3_SECRET_KEY"),
			S3Bucket:        v.GetString("S3_BUCKET"),
			S3PublicURL:     v.GetString("S3_PUBLIC_URL"),
			UploadMaxMemory: v.GetInt64("UPLOAD_MAX_MEMORY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		},
	}

	if cfg.Storage.Mode != StorageModeLocal && cfg.Storage.Mode != StorageModeS3 {
		return nil, fmt.Errorf("unsupported STORAGE_MODE %q", cfg.Storage.Mode)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "VISUS API")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_ON_STARTUP", false)

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "visus")
	v.SetDefault("DB_PASSWORD", "visus")
	v.SetDefault("DB_NAME", "visus")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Asia/Almaty")

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFY_CHANNEL", "clinic:callbacks")

	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin")

	v.SetDefault("STORAGE_MODE", StorageModeLocal)
	v.SetDefault("LOCAL_STORAGE_PATH", "/app/storage")
	v.SetDefault("LOCAL_PUBLIC_URL", "http://localhost:8080/media")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_ACCESS_KEY", "")
	v.SetDefault("S3_SECRET_KEY", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_PUBLIC_URL", "")
	v.SetDefault("UPLOAD_MAX_MEMORY", int64(32<<20))

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:4173")
}

// DSN builds the PostgreSQL connection string. DATABASE_URL wins over the
// discrete DB_* settings; SQLAlchemy-style driver suffixes are dropped so the
// same value can be shared with the old deployment.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		url := c.URL
		if i := strings.Index(url, "://"); i > 0 {
			scheme := url[:i]
			if j := strings.Index(scheme, "+"); j > 0 {
				url = scheme[:j] + url[i:]
			}
		}
		return url
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
