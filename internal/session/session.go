// Package session holds the single mutable record of a summarizing session
// and the pure transitions that act on it.
package session

// InputMode selects where the transcript comes from.
type InputMode int

const (
	ModeText InputMode = iota
	ModeFile
)

func (m InputMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeFile:
		return "file"
	default:
		return "unknown"
	}
}

// File is a transcript file chosen for upload.
type File struct {
	Name string
	Data []byte
}

// Session is the whole workflow state. It is not safe for concurrent use;
// the workflow controller serializes access to it.
type Session struct {
	Transcript        string
	CustomInstruction string
	InputMode         InputMode
	SelectedFile      *File

	// SummaryText is the last successfully generated summary.
	SummaryText string

	// EditedSummaryText starts as a copy of SummaryText and then follows user edits.
	EditedSummaryText string

	// SummaryID correlates the generated summary with a later email dispatch.
	SummaryID string

	RecipientsRaw string

	ProcessingFile  bool
	SummarizingText bool
	SendingEmail    bool
}

// New returns an empty session in text mode.
func New() *Session {
	return &Session{InputMode: ModeText}
}

// SelectedFileName returns the name of the selected file, or "" when none is selected.
func (s *Session) SelectedFileName() string {
	if s.SelectedFile == nil {
		return ""
	}
	return s.SelectedFile.Name
}

// ApplySummary records a freshly produced summary. The edited copy is reset
// to match; the two diverge again only through EditSummary.
func (s *Session) ApplySummary(summary, id string) {
	s.SummaryText = summary
	s.EditedSummaryText = summary
	s.SummaryID = id
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() Session {
	c := *s
	if s.SelectedFile != nil {
		f := *s.SelectedFile
		f.Data = append([]byte(nil), s.SelectedFile.Data...)
		c.SelectedFile = &f
	}
	return c
}
