// Package config loads gateway client configuration from a yaml file and
// environment variables, and assembles a fully wired client from it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/onrik/logrus/filename"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	smsgateway "github.com/android-sms-gateway/client-go"
	"github.com/android-sms-gateway/client-go/httpclient"
)

var Logger *logrus.Logger

type Cfg struct {
	BaseURL  string        `mapstructure:"base_url"`
	Login    string        `mapstructure:"login"`
	Password string        `mapstructure:"password"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func NewConfig(filepath string) (*Cfg, error) {
	cfg := &Cfg{}

	// Set defaults first
	cfg.setDefaults()

	// Read from yaml file if provided
	if filepath != "" {
		v := viper.New()
		v.SetConfigType("yaml")
		v.SetConfigFile(filepath)
		if err := v.ReadInConfig(); err != nil {
			Log().Warnf("reading config file: %v", err)
		} else {
			if err := v.Unmarshal(cfg); err != nil {
				return nil, fmt.Errorf("unmarshaling config: %w", err)
			}
		}
	}

	// Override config with environment variables
	cfg.loadFromEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (cfg *Cfg) setDefaults() {
	cfg.BaseURL = smsgateway.BaseURL
	cfg.Timeout = 30 * time.Second
}

// loadFromEnv overrides config values with environment variables if they exist
func (cfg *Cfg) loadFromEnv() {
	const envPrefix = "SMSGATE_"

	if envBaseURL := os.Getenv(envPrefix + "BASE_URL"); envBaseURL != "" {
		cfg.BaseURL = envBaseURL
	}
	if envLogin := os.Getenv(envPrefix + "LOGIN"); envLogin != "" {
		cfg.Login = envLogin
	}
	if envPassword := os.Getenv(envPrefix + "PASSWORD"); envPassword != "" {
		cfg.Password = envPassword
	}
	if envToken := os.Getenv(envPrefix + "TOKEN"); envToken != "" {
		cfg.Token = envToken
	}
	if envTimeout := os.Getenv(envPrefix + "TIMEOUT"); envTimeout != "" {
		if duration, err := time.ParseDuration(envTimeout); err == nil {
			cfg.Timeout = duration
		}
	}
}

func (cfg *Cfg) validate() error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}

	hasCredentials := cfg.Login != "" && cfg.Password != ""
	hasToken := cfg.Token != ""

	if !hasCredentials && !hasToken {
		return fmt.Errorf("either login/password or token is required")
	}
	if hasCredentials && hasToken {
		return fmt.Errorf("login/password and token are mutually exclusive")
	}

	return nil
}

// Auth returns the authentication method the config describes.
func (cfg *Cfg) Auth() smsgateway.AuthMethod {
	if cfg.Token != "" {
		return smsgateway.BearerToken(cfg.Token)
	}
	return smsgateway.Credentials(cfg.Login, cfg.Password)
}

// NewClient builds a gateway client wired with the default net/http
// transport and the shared logger.
func (cfg *Cfg) NewClient() *smsgateway.Client {
	transport := httpclient.New(
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithLogger(Log()),
	)
	return smsgateway.New(cfg.Auth(), transport, smsgateway.WithBaseURL(cfg.BaseURL))
}

func Log() *logrus.Logger {
	if Logger != nil {
		return Logger
	}

	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	Logger.Hooks.Add(filename.NewHook())
	return Logger
}
