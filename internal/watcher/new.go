package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
)

// DefaultSettle is how long a new file is left alone before it is read.
const DefaultSettle = 500 * time.Millisecond

// New creates a Watcher for inboxDir that calls handler for every created
// file whose extension is in extensions.
func New(inboxDir string, extensions []string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle < 0 {
		settle = DefaultSettle
	}

	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = true
	}

	return &implWatcher{
		inboxDir:   inboxDir,
		extensions: accepted,
		handler:    handler,
		logger:     log,
		watcher:    watcher,
		settle:     settle,
	}, nil
}
