package storefront

import (
	"errors"
	"strings"
)

// Config holds configuration for the storefront REST API integration
type Config struct {
	// BaseURL is the storefront site root, e.g. https://shop.example.com
	BaseURL string
	// ConsumerKey is the REST API consumer key
	ConsumerKey string
	// ConsumerSecret is the REST API consumer secret
	ConsumerSecret string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// Errors for storefront configuration
var (
	ErrConfigMissingBaseURL        = errors.New("storefront: base URL is required")
	ErrConfigMissingConsumerKey    = errors.New("storefront: consumer key is required")
	ErrConfigMissingConsumerSecret = errors.New("storefront: consumer secret is required")
)

// NewConfig creates a new storefront configuration with defaults
func NewConfig(baseURL, consumerKey, consumerSecret string) *Config {
	return &Config{
		BaseURL:        baseURL,
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		TimeoutSeconds: 30,
	}
}

// Validate validates the storefront configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrConfigMissingBaseURL
	}
	if strings.TrimSpace(c.ConsumerKey) == "" {
		return ErrConfigMissingConsumerKey
	}
	if strings.TrimSpace(c.ConsumerSecret) == "" {
		return ErrConfigMissingConsumerSecret
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
