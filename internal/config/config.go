package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DefaultBackendURL = "https://ai-meeting-summarizer-backend-arx1.onrender.com/api"

type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Logging LoggingConfig `yaml:"logging"`
	Inbox   InboxConfig   `yaml:"inbox"`
	Export  ExportConfig  `yaml:"export"`
}

type BackendConfig struct {
	BaseURL string `yaml:"base_url"`

	// Timeout bounds a single HTTP exchange. Zero means no limit.
	Timeout time.Duration `yaml:"timeout"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// InboxConfig describes the optional drop folder watched for transcript files.
type InboxConfig struct {
	Dir        string   `yaml:"dir"`
	Extensions []string `yaml:"extensions"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendURL
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("backend.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend.base_url must be http or https, got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative")
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if len(c.Inbox.Extensions) == 0 {
		c.Inbox.Extensions = []string{".txt", ".doc", ".docx", ".pdf"}
	}
	for i, ext := range c.Inbox.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Inbox.Extensions[i] = ext
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "exports"
	}

	return nil
}
