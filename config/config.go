package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Catalog  Catalog  `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Page     Page     `json:"page" yaml:"page" mapstructure:"page"`
	Viewport Viewport `json:"viewport" yaml:"viewport" mapstructure:"viewport"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Logging  Logging  `json:"logging" yaml:"logging" mapstructure:"logging"`
}

// Catalog configures access to the movie catalog api. A zero timeout means requests never time out.
type Catalog struct {
	BaseURL        string        `json:"baseURL" yaml:"baseURL" mapstructure:"baseURL" validate:"required,url"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	BaseBackoff    time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff" validate:"gte=0"`
	MaxConcurrency int           `json:"maxConcurrency" yaml:"maxConcurrency" mapstructure:"maxConcurrency" validate:"gte=0"`
}

// Page controls how many titles each home page section asks for
type Page struct {
	TopPageSize      int      `json:"topPageSize" yaml:"topPageSize" mapstructure:"topPageSize" validate:"gte=2"`
	CategoryPageSize int      `json:"categoryPageSize" yaml:"categoryPageSize" mapstructure:"categoryPageSize" validate:"gte=1"`
	Categories       []string `json:"categories" yaml:"categories" mapstructure:"categories" validate:"dive,required"`
}

type Viewport struct {
	CellWidth int `json:"cellWidth" yaml:"cellWidth" mapstructure:"cellWidth" validate:"gte=1"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=1,lte=65535"`
}

// Logging is only used by the tui, which can't share the terminal with its logs
type Logging struct {
	File string `json:"file" yaml:"file" mapstructure:"file"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the values New read
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
