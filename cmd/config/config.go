package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the placeholder signing key used when JWT_SECRET is unset.
const DefaultJWTSecret = "change-me"

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Image       ImageConfig
	CORS        CORSConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	BcryptCost     int
}

type ImageConfig struct {
	Dir            string
	MaxUploadBytes int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RabbitMQConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	RetryDelay  time.Duration
	MaxAttempts int
}

type InternalConfig struct {
	APIKey string
	APIURL string
}

// Load reads configuration from the environment, after an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DB_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "classifieds"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", DefaultJWTSecret),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXPIRATION", 24*time.Hour),
			BcryptCost:     getInt("BCRYPT_COST", 10),
		},
		Image: ImageConfig{
			Dir:            getEnv("IMAGE_DIR_PATH", "./images"),
			MaxUploadBytes: int64(getInt("IMAGE_MAX_UPLOAD_BYTES", 10<<20)),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		RabbitMQ: RabbitMQConfig{
			Host:        getEnv("RABBITMQ_HOST", ""),
			Port:        getInt("RABBITMQ_PORT", 5672),
			User:        getEnv("RABBITMQ_USER", "guest"),
			Password:    getEnv("RABBITMQ_PASSWORD", "guest"),
			RetryDelay:  getDuration("RABBITMQ_RETRY_DELAY", 30*time.Second),
			MaxAttempts: getInt("RABBITMQ_MAX_ATTEMPTS", 10),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
			APIURL: getEnv("API_URL", "http://localhost:8080"),
		},
	}
}

// SessionsEnabled reports whether bearer tokens can be issued.
func (c *Config) SessionsEnabled() bool {
	return c.Redis.Host != ""
}

// Validate rejects configurations that would let anyone sign bearer tokens.
func (c *Config) Validate() error {
	if c.SessionsEnabled() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DefaultJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set when REDIS_HOST is configured")
	}
	return nil
}

// GetDSN returns the MySQL DSN, preferring DB_URL when set.
func (c *Config) GetDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
