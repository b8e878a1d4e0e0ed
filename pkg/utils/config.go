package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Email      EmailConfig
	Notify     NotifyConfig
	Admin      AdminConfig
	Session    SessionConfig
	LocalStore LocalStoreConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	// CORSOrigins lists allowed browser origins; "*" allows any
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// Configured reports whether a remote store was set up at all.
func (d DatabaseConfig) Configured() bool {
	return d.Host != "" && d.Name != ""
}

type RedisConfig struct {
	Addr            string
	Password        string
	DB              int
	CatalogCacheTTL int // seconds
}

type KafkaConfig struct {
	Brokers            []string
	NotificationsTopic string
	GroupID            string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type NotifyConfig struct {
	AdminEmail string
}

type AdminConfig struct {
	Username string
	Password string
	Email    string
}

type SessionConfig struct {
	ExpiryHours int
}

type LocalStoreConfig struct {
	Driver string // "file" or "redis"
	Path   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "tourism-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("KAFKA_NOTIFICATIONS_TOPIC", "tourism.notifications")
	viper.SetDefault("KAFKA_GROUP_ID", "tourism-notifier")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOCAL_STORE_DRIVER", "file")
	viper.SetDefault("LOCAL_STORE_PATH", "data/local/")

	// .env is optional, the environment alone is enough
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),

			CORSOrigins: splitList(viper.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASS"),
			DB:              viper.GetInt("REDIS_DB"),
			CatalogCacheTTL: viper.GetInt("CATALOG_CACHE_TTL_SECONDS"),
		},
		Kafka: KafkaConfig{
			Brokers:            splitList(viper.GetString("KAFKA_BROKERS")),
			NotificationsTopic: viper.GetString("KAFKA_NOTIFICATIONS_TOPIC"),
			GroupID:            viper.GetString("KAFKA_GROUP_ID"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Notify: NotifyConfig{
			AdminEmail: viper.GetString("NOTIFY_ADMIN_EMAIL"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Email:    viper.GetString("ADMIN_EMAIL"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		LocalStore: LocalStoreConfig{
			Driver: viper.GetString("LOCAL_STORE_DRIVER"),
			Path:   viper.GetString("LOCAL_STORE_PATH"),
		},
	}

	return config, nil
}

// splitList parses comma separated env values like KAFKA_BROKERS
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
