// Package config читает настройки сервиса из переменных окружения.
//
// Переменные имеют префикс HELPREQ_, уровни вложенности разделяются двойным
// подчёркиванием: HELPREQ_DATABASE__DSN -> database.dsn -> Config.Database.DSN.
// Если рядом с бинарником лежит .env, он подгружается до чтения окружения.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix префикс переменных окружения сервиса.
const EnvPrefix = "HELPREQ_"

// Config корневая конфигурация приложения.
type Config struct {
	Env      string         `koanf:"env" validate:"required,oneof=local development production"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig параметры HTTP-сервера.
type ServerConfig struct {
	Addr               string        `koanf:"addr" validate:"required"`
	ReadTimeout        time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
}

// DatabaseConfig подключение к PostgreSQL.
type DatabaseConfig struct {
	DSN         string `koanf:"dsn" validate:"required"`
	MaxConns    int32  `koanf:"max_conns" validate:"gte=1"`
	AutoMigrate bool   `koanf:"auto_migrate"`
	LogQueries  bool   `koanf:"log_queries"`
}

// AuthConfig настройки проверки bearer-токенов.
// AdminEmails получают ROLE_ADMIN независимо от ролей в токене.
type AuthConfig struct {
	JWTSecret   string        `koanf:"jwt_secret" validate:"required,min=16"`
	TokenTTL    time.Duration `koanf:"token_ttl" validate:"gt=0"`
	AdminEmails []string      `koanf:"admin_emails" validate:"dive,email"`
}

// LoggingConfig уровень и формат логов.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// Default возвращает конфигурацию со значениями по умолчанию.
// Обязательные поля (DSN, секрет) остаются пустыми.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeout:        10 * time.Second,
			WriteTimeout:       10 * time.Second,
			IdleTimeout:        60 * time.Second,
			ShutdownTimeout:    5 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			MaxConns:    10,
			AutoMigrate: true,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load читает окружение поверх значений по умолчанию и валидирует результат.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Auth.AdminEmails = normalizeList(cfg.Auth.AdminEmails)
	cfg.Server.CORSAllowedOrigins = normalizeList(cfg.Server.CORSAllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// IsProduction сообщает, запущен ли сервис в production-окружении.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// envKey превращает HELPREQ_DATABASE__MAX_CONNS в database.max_conns.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// normalizeList разбивает значения вида "a, b," по запятым,
// убирает пробелы и пустые элементы.
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
