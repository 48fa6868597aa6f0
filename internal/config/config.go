package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	CatalogService CatalogServiceConfig `toml:"catalog_service"`
	Slots          SlotsConfig          `toml:"slots"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogServiceConfig сервис каталога услуг и мастеров
type CatalogServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// SlotsConfig настройки генерации слотов
type SlotsConfig struct {
	// Timezone часовой пояс, в котором интерпретируются часы работы
	Timezone string `toml:"timezone"`
	// MaxGenerateDays максимальное число дней в одном запросе генерации
	MaxGenerateDays int `toml:"max_generate_days"`
	// WorkerEnabled включает фоновую догенерацию слотов на горизонт
	WorkerEnabled   bool `toml:"worker_enabled"`
	HorizonDays     int  `toml:"horizon_days"`
	HorizonInterval int  `toml:"horizon_interval"`

	location *time.Location
}

// Location часовой пояс слотов. Заполняется в Load
func (s SlotsConfig) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// RateLimitConfig ограничение частоты создания бронирований (на IP)
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load читает конфигурацию из TOML файла, проставляет значения по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon_availability",
		},
		CatalogService: CatalogServiceConfig{
			Timeout: 5,
		},
		Slots: SlotsConfig{
			Timezone:        "UTC",
			MaxGenerateDays: 31,
			HorizonDays:     14,
			HorizonInterval: 3600,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     1,
			Burst:   5,
		},
	}
}

func (c *Config) finalize() error {
	loc, err := time.LoadLocation(c.Slots.Timezone)
	if err != nil {
		return fmt.Errorf("%w: slots.timezone %q: %v", ErrInvalidConfig, c.Slots.Timezone, err)
	}
	c.Slots.location = loc

	return c.Validate()
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.CatalogService.URL == "":
		return fmt.Errorf("%w: catalog_service.url is required", ErrInvalidConfig)
	case c.Slots.MaxGenerateDays < 1:
		return fmt.Errorf("%w: slots.max_generate_days must be positive", ErrInvalidConfig)
	case c.Slots.WorkerEnabled && (c.Slots.HorizonDays < 1 || c.Slots.HorizonInterval < 1):
		return fmt.Errorf("%w: slots.horizon_days and slots.horizon_interval must be positive", ErrInvalidConfig)
	case c.Slots.WorkerEnabled && c.Slots.HorizonDays > c.Slots.MaxGenerateDays:
		return fmt.Errorf("%w: slots.horizon_days must not exceed slots.max_generate_days", ErrInvalidConfig)
	case c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1):
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	return nil
}
