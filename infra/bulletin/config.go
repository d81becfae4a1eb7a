package bulletin

import (
	"fmt"
	"net/url"
)

// DefaultURL is the regional average price bulletin published by MIMIT.
const DefaultURL = "https://www.mimit.gov.it/images/stories/carburanti/MediaRegionaleStradale.pdf"

// Config defines where the price bulletin is fetched and how it is read.
type Config struct {
	URL             string  `json:"url"`
	Region          string  `json:"region"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
	SpoolPath       string  `json:"spool_path"`
	DefaultGasoline float64 `json:"default_gasoline"`
	DefaultDiesel   float64 `json:"default_diesel"`
}

// SetDefaults applies the public bulletin URL, the Lombardia region and a
// 10 second timeout.
func (c *Config) SetDefaults() {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.Region == "" {
		c.Region = "Lombardia"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	if c.DefaultGasoline <= 0 {
		c.DefaultGasoline = 1.84
	}
	if c.DefaultDiesel <= 0 {
		c.DefaultDiesel = 1.75
	}
}

// Validate checks the bulletin URL.
func (c Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("bulletin url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("bulletin url must be http or https: %s", c.URL)
	}
	return nil
}
