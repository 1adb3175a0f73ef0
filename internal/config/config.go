// Package config loads application configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leighmacdonald/cslogstats/internal/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var (
	ErrReadConfig      = errors.New("failed to read config file")
	ErrFormatConfig    = errors.New("invalid config file format")
	ErrHomeDirNotFound = errors.New("failed to locate home directory")
)

type matchConfig struct {
	// LogPath is the console log file served by the API.
	LogPath string `mapstructure:"log_path"`
}

type httpConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	LogEnabled     bool     `mapstructure:"log_enabled"`
	CORSEnabled    bool     `mapstructure:"cors_enabled"`
	CORSOrigins    []string `mapstructure:"cors_origins"`
	MetricsEnabled bool     `mapstructure:"metrics_enabled"`
}

// Addr returns the listen address in host:port form.
func (h httpConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

type logConfig struct {
	Level     log.Level `mapstructure:"level"`
	File      string    `mapstructure:"file"`
	SentryDSN string    `mapstructure:"sentry_dsn"`
}

type Config struct {
	Match matchConfig `mapstructure:"match"`
	HTTP  httpConfig  `mapstructure:"http"`
	Log   logConfig   `mapstructure:"logging"`
}

// Read loads the config file and env overrides. When cfgFile is empty the
// default search path applies and a missing file is not an error, defaults
// are used instead.
func Read(cfgFile string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix("cslogstats")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if errRead := viper.ReadInConfig(); errRead != nil {
			return Config{}, errors.Join(errRead, ErrReadConfig)
		}
	} else {
		home, errHome := homedir.Dir()
		if errHome != nil {
			return Config{}, errors.Join(errHome, ErrHomeDirNotFound)
		}

		viper.SetConfigName("cslogstats")
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)

		var notFound viper.ConfigFileNotFoundError
		if errRead := viper.ReadInConfig(); errRead != nil && !errors.As(errRead, &notFound) {
			return Config{}, errors.Join(errRead, ErrReadConfig)
		}
	}

	var conf Config
	if errUnmarshal := viper.Unmarshal(&conf); errUnmarshal != nil {
		return Config{}, errors.Join(errUnmarshal, ErrFormatConfig)
	}

	return conf, nil
}

func setDefaults() {
	viper.SetDefault("match.log_path", "")

	viper.SetDefault("http.host", "127.0.0.1")
	viper.SetDefault("http.port", 6007)
	viper.SetDefault("http.mode", "release")
	viper.SetDefault("http.log_enabled", true)
	viper.SetDefault("http.cors_enabled", true)
	viper.SetDefault("http.cors_origins", []string{"http://localhost:3000"})
	viper.SetDefault("http.metrics_enabled", true)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.sentry_dsn", "")
}
