package workflow

import (
	"sync"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

type implController struct {
	mu       sync.Mutex
	state    *session.Session
	backend  backend.Backend
	notifier Notifier
	logger   logger.Logger
}

// New creates a Controller with an empty session. A nil notifier discards notices.
func New(b backend.Backend, n Notifier, log logger.Logger) Controller {
	if n == nil {
		n = nopNotifier{}
	}
	return &implController{
		state:    session.New(),
		backend:  b,
		notifier: n,
		logger:   log,
	}
}
