package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `validate:"required"`
	Postgres PostgresConfig `validate:"required"`
	Logging  LoggingConfig  `validate:"required"`
	Cache    CacheConfig
	Sentry   SentryConfig
	Pdf      PdfConfig
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggingConfig struct {
	Level string `validate:"required,oneof=debug info warn error"`
}

type CacheConfig struct {
	Enabled bool
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64
}

// PdfConfig locates the typst toolchain used for work-order rendering.
type PdfConfig struct {
	BinaryPath  string
	TemplateDir string
	FontDir     string
	OutputDir   string
	Template    string
}

func NewConfig() (*Configuration, error) {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/spk")

	v.SetEnvPrefix("SPK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("sentry.samplerate", 1.0)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("pdf.binarypath", "typst")
	v.SetDefault("pdf.templatedir", "assets/typst")
	v.SetDefault("pdf.fontdir", "assets/fonts")
	v.SetDefault("pdf.outputdir", "")
	v.SetDefault("pdf.template", "spk.typ")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts or tests without a config file.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: "debug"},
		Cache:   CacheConfig{Enabled: true},
		Pdf: PdfConfig{
			BinaryPath:  "typst",
			TemplateDir: "assets/typst",
			FontDir:     "assets/fonts",
			Template:    "spk.typ",
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
