package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const documentTitle = "Meeting Summary"

var reUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func (e *implExporter) Export(ctx context.Context, summaryID, summary string, format Format) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return "", ErrEmptySummary
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, e.fileName(summaryID, format))

	switch format {
	case FormatDocx:
		if err := markdownToDocx(documentTitle, summary, path); err != nil {
			return "", fmt.Errorf("write docx: %w", err)
		}
	case FormatMarkdown:
		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			documentTitle,
			e.now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return "", fmt.Errorf("write markdown: %w", err)
		}
	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	e.logger.Info(ctx, "Summary exported: %s", path)
	return path, nil
}

// fileName is summary-<id>.<ext>, falling back to a timestamp for summaries
// that were typed by hand and have no identifier.
func (e *implExporter) fileName(summaryID string, format Format) string {
	stem := reUnsafe.ReplaceAllString(summaryID, "_")
	if strings.Trim(stem, "_") == "" {
		stem = e.now().Format("20060102-150405")
	}
	return fmt.Sprintf("summary-%s.%s", stem, format)
}
