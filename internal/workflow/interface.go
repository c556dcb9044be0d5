package workflow

import (
	"context"

	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

// Controller owns the session and drives the three backend operations.
// All methods are safe to call from multiple goroutines.
type Controller interface {
	// Snapshot returns a copy of the current session.
	Snapshot() session.Session

	SetTranscript(text string)
	SetInstruction(text string)
	EditSummary(text string)
	SetRecipients(text string)

	SetMode(mode session.InputMode)
	SelectFile(file session.File)

	// ClearAll resets the session. CanClear reports whether a front end should offer it.
	ClearAll()
	CanClear() bool

	// ProcessFile uploads the selected file with the instruction.
	ProcessFile(ctx context.Context) error
	// GenerateSummary summarizes the typed transcript with the instruction.
	GenerateSummary(ctx context.Context) error
	// SendEmail dispatches the edited summary to the parsed recipients.
	SendEmail(ctx context.Context) error
}
