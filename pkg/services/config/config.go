package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. REPORTS_SERVER_PORT.
const EnvPrefix = "REPORTS"

type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type ReportsConfig struct {
	StoreDir    string `mapstructure:"store_dir" validate:"required"`
	Locale      string `mapstructure:"locale" validate:"required"`
	Currency    string `mapstructure:"currency" validate:"required,len=3"`
	RecordLimit int    `mapstructure:"record_limit" validate:"min=1,max=10000"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Reports  ReportsConfig  `mapstructure:"reports"`
	LogLevel string         `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("database.path", "reports.db")
	v.SetDefault("reports.store_dir", "state")
	v.SetDefault("reports.locale", "pt-BR")
	v.SetDefault("reports.currency", "BRL")
	v.SetDefault("reports.record_limit", 10000)
	v.SetDefault("log_level", "info")
}

// LoadConfig reads the config file at path, if any, on top of the defaults.
// Environment variables take precedence over both.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
