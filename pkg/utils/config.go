package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Session    SessionConfig
	Redis      RedisConfig
	RabbitMQ   RabbitMQConfig
	Pagination PaginationConfig
	CORS       CORSConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	SeatCacheTTL time.Duration
}

// RabbitMQConfig. URL kosong = publisher dimatikan
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type PaginationConfig struct {
	FilmsPerPage    int
	BookingsPerPage int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "bioskop-ticket")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEAT_CACHE_TTL", "30s")
	viper.SetDefault("BOOKING_EXCHANGE", "bioskop.bookings")
	viper.SetDefault("FILMS_PER_PAGE", 8)
	viper.SetDefault("BOOKINGS_PER_PAGE", 10)
	viper.SetDefault("CORS_ORIGINS", "*")

	// .env opsional, env variable tetap dibaca
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			ShutdownTimeout: viper.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Redis: RedisConfig{
			Addr:         viper.GetString("REDIS_ADDR"),
			Password:     viper.GetString("REDIS_PASSWORD"),
			DB:           viper.GetInt("REDIS_DB"),
			SeatCacheTTL: viper.GetDuration("SEAT_CACHE_TTL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      viper.GetString("RABBITMQ_URL"),
			Exchange: viper.GetString("BOOKING_EXCHANGE"),
		},
		Pagination: PaginationConfig{
			FilmsPerPage:    viper.GetInt("FILMS_PER_PAGE"),
			BookingsPerPage: viper.GetInt("BOOKINGS_PER_PAGE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(viper.GetString("CORS_ORIGINS")),
		},
	}

	return config, nil
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
