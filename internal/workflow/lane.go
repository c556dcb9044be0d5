package workflow

import (
	"errors"

	"github.com/nguyentantai21042004/meeting-notes/internal/gate"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

// ErrLaneBusy is returned when an operation is invoked while its previous
// invocation is still in flight. The call is dropped without touching the session.
var ErrLaneBusy = errors.New("operation already in progress")

// Lane is one independent operation pathway with its own busy flag.
type Lane int

const (
	LaneFile Lane = iota
	LaneText
	LaneEmail
)

func (l Lane) String() string {
	switch l {
	case LaneFile:
		return "file"
	case LaneText:
		return "text"
	case LaneEmail:
		return "email"
	default:
		return "unknown"
	}
}

func (l Lane) operation() gate.Operation {
	switch l {
	case LaneFile:
		return gate.OpProcessFile
	case LaneText:
		return gate.OpGenerateSummary
	default:
		return gate.OpSendEmail
	}
}

func (l Lane) failurePrefix() string {
	switch l {
	case LaneFile:
		return "Error processing file"
	case LaneText:
		return "Error generating summary"
	default:
		return "Error sending email"
	}
}

// busyFlag points at the session field guarding l.
func busyFlag(s *session.Session, l Lane) *bool {
	switch l {
	case LaneFile:
		return &s.ProcessingFile
	case LaneText:
		return &s.SummarizingText
	default:
		return &s.SendingEmail
	}
}

// Busy reports whether l has an invocation in flight in s.
func Busy(s session.Session, l Lane) bool {
	return *busyFlag(&s, l)
}
