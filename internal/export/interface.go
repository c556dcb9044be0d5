package export

import (
	"context"
	"errors"
)

// ErrEmptySummary is returned when there is nothing to export.
var ErrEmptySummary = errors.New("summary is empty")

type Format string

const (
	FormatDocx     Format = "docx"
	FormatMarkdown Format = "md"
)

// Exporter writes an edited summary to a local file.
type Exporter interface {
	// Export writes summary in the given format and returns the file path.
	Export(ctx context.Context, summaryID, summary string, format Format) (string, error)
}
