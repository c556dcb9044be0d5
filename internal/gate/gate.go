// Package gate holds the synchronous precondition checks that run before
// every network-bound workflow operation.
package gate

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

// Operation names a network-bound workflow operation.
type Operation string

const (
	OpProcessFile     Operation = "process_file"
	OpGenerateSummary Operation = "generate_summary"
	OpSendEmail       Operation = "send_email"
)

const (
	msgProcessFile     = "Please select a file and provide custom instruction"
	msgGenerateSummary = "Please provide both transcript and custom instruction"
	msgSendEmail       = "Please provide both summary and recipient emails"
)

// ValidationError reports a failed precondition. No request is issued when it is returned.
type ValidationError struct {
	Op      Operation
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ProcessFile requires a selected file and a non-blank instruction.
func ProcessFile(s *session.Session) error {
	if s.SelectedFile == nil || blank(s.CustomInstruction) {
		return &ValidationError{Op: OpProcessFile, Message: msgProcessFile}
	}
	return nil
}

// GenerateSummary requires a non-blank transcript and instruction.
func GenerateSummary(s *session.Session) error {
	if blank(s.Transcript) || blank(s.CustomInstruction) {
		return &ValidationError{Op: OpGenerateSummary, Message: msgGenerateSummary}
	}
	return nil
}

// SendEmail requires a non-blank edited summary and recipient list.
func SendEmail(s *session.Session) error {
	if blank(s.EditedSummaryText) || blank(s.RecipientsRaw) {
		return &ValidationError{Op: OpSendEmail, Message: msgSendEmail}
	}
	return nil
}

// Check runs the precondition for op.
func Check(op Operation, s *session.Session) error {
	switch op {
	case OpProcessFile:
		return ProcessFile(s)
	case OpGenerateSummary:
		return GenerateSummary(s)
	case OpSendEmail:
		return SendEmail(s)
	}
	return nil
}
