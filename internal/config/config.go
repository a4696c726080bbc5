package config

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyServerPort     = "server_port"
	KeyGinMode        = "gin_mode"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyHighlightStyle = "highlight_style"
)

type Config struct {
	ServerPort     string `validate:"required,numeric"`
	GinMode        string `validate:"oneof=debug release test"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	LogFormat      string `validate:"oneof=console json"`
	HighlightStyle string `validate:"required"`
}

// Load — .env (если есть) + переменные окружения + то, что CLI положил в viper.
// Обязательных переменных нет: у всего есть значение по умолчанию.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(viper.GetViper())
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyServerPort, "8080")
	v.SetDefault(KeyGinMode, "release")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyHighlightStyle, "monokai")
}

func FromViper(v *viper.Viper) *Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return &Config{
		ServerPort:     v.GetString(KeyServerPort),
		GinMode:        v.GetString(KeyGinMode),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		HighlightStyle: v.GetString(KeyHighlightStyle),
	}
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.ServerPort
}
