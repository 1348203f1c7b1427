package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
	"github.com/m04kA/SMC-ScheduleService/pkg/timeslot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig значения по умолчанию для нормализации расписания
type ScheduleConfig struct {
	SlotIntervalMinutes    int    `toml:"slot_interval_minutes"`
	DayStart               string `toml:"day_start"`
	DayEnd                 string `toml:"day_end"`
	BreakStart             string `toml:"break_start"`
	BreakEnd               string `toml:"break_end"`
	DefaultWorkingDays     []int  `toml:"default_working_days"`
	DefaultLeadTimeMinutes int    `toml:"default_lead_time_minutes"`
	DefaultBufferMinutes   int    `toml:"default_buffer_minutes"`
	DefaultTravelMinutes   int    `toml:"default_travel_minutes"`
	SessionTTLMinutes      int    `toml:"session_ttl_minutes"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	std := schedule.StandardDefaults()
	prefs := domain.DefaultPreferences()

	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_schedule",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "schedule-service",
		},
		Schedule: ScheduleConfig{
			SlotIntervalMinutes:    timeslot.DefaultGranularityMinutes,
			DayStart:               std.Start.String(),
			DayEnd:                 std.End.String(),
			BreakStart:             std.BreakStart.String(),
			BreakEnd:               std.BreakEnd.String(),
			DefaultWorkingDays:     std.WorkingDays.Days(),
			DefaultLeadTimeMinutes: prefs.LeadTimeMinutes,
			DefaultBufferMinutes:   prefs.BufferMinutes,
			DefaultTravelMinutes:   prefs.TravelMinutes,
			SessionTTLMinutes:      30,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию и валидирует её
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает TOML поверх значений по умолчанию
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: decode toml: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be between 1 and 65535", ErrInvalidConfig)
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("%w: database pool sizes must not be negative", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Schedule.SessionTTLMinutes <= 0 {
		return fmt.Errorf("%w: schedule.session_ttl_minutes must be positive", ErrInvalidConfig)
	}

	prefs := c.Schedule.Preferences()
	if !prefs.IsValid() {
		return fmt.Errorf("%w: schedule default preferences out of range", ErrInvalidConfig)
	}

	if _, err := c.Schedule.NewNormalizer(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Defaults собирает неизменяемые значения по умолчанию нормализатора
func (s ScheduleConfig) Defaults() (schedule.Defaults, error) {
	times := make(map[string]types.TimeString, 4)
	for name, value := range map[string]string{
		"day_start":   s.DayStart,
		"day_end":     s.DayEnd,
		"break_start": s.BreakStart,
		"break_end":   s.BreakEnd,
	} {
		ts, err := types.NewTimeStringFromString(value)
		if err != nil {
			return schedule.Defaults{}, fmt.Errorf("schedule.%s: %w", name, err)
		}
		times[name] = ts
	}

	for _, d := range s.DefaultWorkingDays {
		if d < domain.MinWeekday || d > domain.MaxWeekday {
			return schedule.Defaults{}, fmt.Errorf("schedule.default_working_days: %d is not a weekday", d)
		}
	}

	return schedule.Defaults{
		Start:       times["day_start"],
		End:         times["day_end"],
		BreakStart:  times["break_start"],
		BreakEnd:    times["break_end"],
		WorkingDays: schedule.NewDaySet(s.DefaultWorkingDays...),
	}, nil
}

// NewNormalizer строит каталог слотов и нормализатор по настройкам
func (s ScheduleConfig) NewNormalizer() (*schedule.Normalizer, error) {
	catalog, err := timeslot.Build(s.SlotIntervalMinutes)
	if err != nil {
		return nil, err
	}
	defaults, err := s.Defaults()
	if err != nil {
		return nil, err
	}
	return schedule.NewNormalizer(catalog, defaults)
}

// Preferences значения lead/buffer/travel по умолчанию
func (s ScheduleConfig) Preferences() domain.SchedulingPreferences {
	return domain.SchedulingPreferences{
		LeadTimeMinutes: s.DefaultLeadTimeMinutes,
		BufferMinutes:   s.DefaultBufferMinutes,
		TravelMinutes:   s.DefaultTravelMinutes,
	}
}
