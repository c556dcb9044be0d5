package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

type field int

const (
	fieldInput field = iota // transcript textarea or file path, depending on mode
	fieldInstruction
	fieldSummary
	fieldRecipients
)

// opDoneMsg reports that a workflow operation returned.
type opDoneMsg struct {
	lane workflow.Lane
	err  error
}

// FileSelectedMsg tells the model that a file was selected outside the UI,
// e.g. by the inbox watcher.
type FileSelectedMsg struct {
	Name string
}

type exportDoneMsg struct {
	path string
	err  error
}

type Model struct {
	ctx      context.Context
	ctrl     workflow.Controller
	exporter export.Exporter
	notifier *Notifier

	transcript  textarea.Model
	filePath    textinput.Model
	instruction textinput.Model
	summary     textarea.Model
	recipients  textinput.Model

	focus   field
	pending map[workflow.Lane]bool
	notices []workflow.Notice
	width   int
	height  int
}

// NewModel builds the UI around ctrl. exporter and notifier may be nil.
func NewModel(ctx context.Context, ctrl workflow.Controller, exporter export.Exporter, notifier *Notifier) Model {
	tr := textarea.New()
	tr.Placeholder = "Paste your meeting transcript here..."
	tr.ShowLineNumbers = false
	tr.CharLimit = 0
	tr.MaxHeight = 0
	tr.SetHeight(10)

	fp := textinput.New()
	fp.Placeholder = "path/to/meeting.txt (.txt, .doc, .docx, .pdf), enter to select"
	fp.CharLimit = 500

	in := textinput.New()
	in.Placeholder = "e.g., Summarize in bullet points for executives"
	in.CharLimit = 1000

	sm := textarea.New()
	sm.ShowLineNumbers = false
	sm.CharLimit = 0
	sm.MaxHeight = 0
	sm.SetHeight(15)

	rc := textinput.New()
	rc.Placeholder = "Enter email addresses (comma-separated)"
	rc.CharLimit = 2000

	m := Model{
		ctx:         ctx,
		ctrl:        ctrl,
		exporter:    exporter,
		notifier:    notifier,
		transcript:  tr,
		filePath:    fp,
		instruction: in,
		summary:     sm,
		recipients:  rc,
		pending:     make(map[workflow.Lane]bool),
		width:       100,
		height:      40,
	}
	m.syncFromSession()
	m.applyFocus()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.notifier != nil {
		cmds = append(cmds, m.notifier.wait())
	}
	return tea.Batch(cmds...)
}

// syncFromSession copies session values into the widgets that differ.
// Widgets push every edit to the controller, so the only differences are
// changes applied by completed operations, resets and external selections.
func (m *Model) syncFromSession() {
	s := m.ctrl.Snapshot()

	if m.transcript.Value() != s.Transcript {
		m.transcript.SetValue(s.Transcript)
	}
	if m.instruction.Value() != s.CustomInstruction {
		m.instruction.SetValue(s.CustomInstruction)
	}
	if m.summary.Value() != s.EditedSummaryText {
		m.summary.SetValue(s.EditedSummaryText)
	}
	if m.recipients.Value() != s.RecipientsRaw {
		m.recipients.SetValue(s.RecipientsRaw)
	}
	if s.InputMode == session.ModeText {
		m.filePath.SetValue("")
	}

	if !m.fieldVisible(m.focus, s) {
		m.focus = fieldInput
	}
}

func (m Model) fieldVisible(f field, s session.Session) bool {
	switch f {
	case fieldSummary, fieldRecipients:
		return s.SummaryText != ""
	default:
		return true
	}
}

func (m *Model) applyFocus() tea.Cmd {
	m.transcript.Blur()
	m.filePath.Blur()
	m.instruction.Blur()
	m.summary.Blur()
	m.recipients.Blur()

	switch m.focus {
	case fieldInput:
		if m.ctrl.Snapshot().InputMode == session.ModeFile {
			return m.filePath.Focus()
		}
		return m.transcript.Focus()
	case fieldInstruction:
		return m.instruction.Focus()
	case fieldSummary:
		return m.summary.Focus()
	case fieldRecipients:
		return m.recipients.Focus()
	}
	return nil
}

func (m *Model) cycleFocus(step int) tea.Cmd {
	s := m.ctrl.Snapshot()
	count := int(fieldRecipients) + 1
	next := m.focus
	for i := 0; i < count; i++ {
		next = field((int(next) + step + count) % count)
		if m.fieldVisible(next, s) {
			break
		}
	}
	m.focus = next
	return m.applyFocus()
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.transcript.SetWidth(w)
	m.summary.SetWidth(w)
	m.filePath.Width = w - 4
	m.instruction.Width = w - 4
	m.recipients.Width = w - 20
}
