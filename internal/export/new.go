package export

import (
	"time"

	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
)

type implExporter struct {
	dir    string
	logger logger.Logger
	now    func() time.Time
}

// New creates an Exporter that writes into dir.
func New(dir string, log logger.Logger) Exporter {
	return &implExporter{
		dir:    dir,
		logger: log,
		now:    time.Now,
	}
}
