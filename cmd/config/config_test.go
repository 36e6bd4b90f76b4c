package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/classifieds/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IMAGE_DIR_PATH", "")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")
	t.Setenv("DB_PORT", "nope")

	cfg := config.Load()

	assert.Equal(t, "", cfg.Image.Dir, "explicitly empty value is kept")
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("IMAGE_DIR_PATH", "/var/lib/classifieds/images")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("JWT_EXPIRATION", "2h")

	cfg := config.Load()

	assert.Equal(t, "/var/lib/classifieds/images", cfg.Image.Dir)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.Auth.JWTExpiration)
}

func TestGetDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: 3307, User: "app", Password: "secret", Name: "ads",
	}}
	assert.Equal(t, "app:secret@tcp(db:3307)/ads?parseTime=true&loc=UTC&charset=utf8mb4", cfg.GetDSN())

	cfg.Database.URL = "u:p@tcp(other:3306)/x"
	assert.Equal(t, "u:p@tcp(other:3306)/x", cfg.GetDSN())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "sessions disabled with default secret", cfg: config.Config{Auth: config.AuthConfig{JWTSecret: config.DefaultJWTSecret}}},
		{name: "sessions enabled with default secret", cfg: config.Config{Redis: config.RedisConfig{Host: "redis"}, Auth: config.AuthConfig{JWTSecret: config.DefaultJWTSecret}}, wantErr: true},
		{name: "sessions enabled with empty secret", cfg: config.Config{Redis: config.RedisConfig{Host: "redis"}}, wantErr: true},
		{name: "sessions enabled with real secret", cfg: config.Config{Redis: config.RedisConfig{Host: "redis"}, Auth: config.AuthConfig{JWTSecret: "s3cret-signing-key"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
