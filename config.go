package hub

import (
	"net/http"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jmgilman/go/hub/errors"
)

// Config is the environment-driven client configuration.
type Config struct {
	Token     string        `env:"GITHUB_TOKEN" env-description:"Bearer token; empty means anonymous access"`
	BaseURL   string        `env:"GITHUB_API_URL" env-default:"https://api.github.com/" env-description:"REST API root"`
	UserAgent string        `env:"HUB_USER_AGENT" env-default:"hub-go" env-description:"User-Agent header"`
	Timeout   time.Duration `env:"HUB_HTTP_TIMEOUT" env-default:"30s" env-description:"Timeout of a single HTTP round trip"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to read configuration from environment")
	}
	if cfg.Timeout < 0 {
		err := errors.New(errors.CodeInvalidConfig, "HUB_HTTP_TIMEOUT cannot be negative")
		return Config{}, errors.WithContext(err, "timeout", cfg.Timeout.String())
	}
	return cfg, nil
}

// Options converts the configuration into client options.
func (c Config) Options() []Option {
	opts := []Option{
		WithHTTPClient(&http.Client{Timeout: c.Timeout}),
	}
	if c.BaseURL != "" {
		opts = append(opts, WithBaseURL(c.BaseURL))
	}
	if c.UserAgent != "" {
		opts = append(opts, WithUserAgent(c.UserAgent))
	}
	if c.Token != "" {
		opts = append(opts, WithToken(c.Token))
	}
	return opts
}

// NewClientFromEnv creates a client from LoadConfig. Options in opts are
// applied after the environment and take precedence.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewClient(append(cfg.Options(), opts...)...)
}

// EnvUsage returns a description of the environment variables read by LoadConfig.
func EnvUsage() (string, error) {
	var cfg Config
	usage, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "failed to describe configuration")
	}
	return usage, nil
}
