package backend

import (
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/meeting-notes/internal/config"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
)

type implBackend struct {
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

// New creates a Backend that talks to the service at cfg.BaseURL.
func New(cfg config.BackendConfig, log logger.Logger) Backend {
	return NewWithClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, log)
}

// NewWithClient creates a Backend using the supplied HTTP client.
func NewWithClient(baseURL string, client *http.Client, log logger.Logger) Backend {
	if client == nil {
		client = http.DefaultClient
	}
	return &implBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  log,
	}
}
