package tui

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/gate"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case noticeMsg:
		m.notices = append(m.notices, workflow.Notice(msg))
		return m, m.notifier.wait()

	case opDoneMsg:
		delete(m.pending, msg.lane)
		if msg.lane == workflow.LaneFile && msg.err == nil {
			m.filePath.SetValue("")
		}
		m.syncFromSession()
		return m, m.applyFocus()

	case FileSelectedMsg:
		m.syncFromSession()
		m.filePath.SetValue(msg.Name)
		return m, m.applyFocus()

	case exportDoneMsg:
		if msg.err != nil {
			m.notices = append(m.notices, workflow.Notice{Level: workflow.LevelError, Text: "Error exporting summary: " + msg.err.Error()})
		} else {
			m.notices = append(m.notices, workflow.Notice{Level: workflow.LevelInfo, Text: "Summary exported to " + msg.path})
		}
		return m, nil

	case tea.KeyMsg:
		if len(m.notices) > 0 {
			return m.updateNotice(msg)
		}
		return m.updateKeys(msg)
	}

	return m.forward(msg)
}

// updateNotice handles keys while a notice is shown; nothing else gets through.
func (m Model) updateNotice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc", " ":
		m.notices = m.notices[1:]
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ctrl.Snapshot()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		return m, m.cycleFocus(1)

	case "shift+tab":
		return m, m.cycleFocus(-1)

	case "ctrl+t":
		if s.InputMode == session.ModeText {
			m.ctrl.SetMode(session.ModeFile)
		} else {
			m.ctrl.SetMode(session.ModeText)
		}
		m.syncFromSession()
		return m, m.applyFocus()

	case "ctrl+g":
		lane := primaryLane(s)
		if !m.primaryEnabled(s) {
			return m, nil
		}
		m.pending[lane] = true
		return m, m.run(lane)

	case "ctrl+s":
		if s.SummaryText == "" || m.busy(s, workflow.LaneEmail) {
			return m, nil
		}
		m.pending[workflow.LaneEmail] = true
		return m, m.run(workflow.LaneEmail)

	case "ctrl+x":
		if !m.ctrl.CanClear() {
			return m, nil
		}
		m.ctrl.ClearAll()
		m.filePath.SetValue("")
		m.focus = fieldInput
		m.syncFromSession()
		return m, m.applyFocus()

	case "ctrl+e":
		if s.SummaryText == "" || m.exporter == nil {
			return m, nil
		}
		return m, m.export(s)

	case "enter":
		if m.focus == fieldInput && s.InputMode == session.ModeFile {
			return m.selectFile()
		}
	}

	return m.forward(msg)
}

// forward passes msg to the focused widget and pushes its value to the controller.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case fieldInput:
		if m.ctrl.Snapshot().InputMode == session.ModeFile {
			m.filePath, cmd = m.filePath.Update(msg)
			return m, cmd
		}
		m.transcript, cmd = m.transcript.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.ctrl.SetTranscript(m.transcript.Value())
		}
	case fieldInstruction:
		m.instruction, cmd = m.instruction.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.ctrl.SetInstruction(m.instruction.Value())
		}
	case fieldSummary:
		m.summary, cmd = m.summary.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.ctrl.EditSummary(m.summary.Value())
		}
	case fieldRecipients:
		m.recipients, cmd = m.recipients.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			m.ctrl.SetRecipients(m.recipients.Value())
		}
	}

	return m, cmd
}

func (m Model) selectFile() (tea.Model, tea.Cmd) {
	path := expandHome(strings.TrimSpace(m.filePath.Value()))
	if path == "" {
		return m, nil
	}

	f, err := session.ReadFile(path)
	if err != nil {
		m.notices = append(m.notices, workflow.Notice{Level: workflow.LevelError, Text: "Cannot read file: " + err.Error()})
		return m, nil
	}

	m.ctrl.SelectFile(f)
	m.syncFromSession()
	return m, nil
}

func (m Model) run(lane workflow.Lane) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		var err error
		switch lane {
		case workflow.LaneFile:
			err = ctrl.ProcessFile(ctx)
		case workflow.LaneText:
			err = ctrl.GenerateSummary(ctx)
		case workflow.LaneEmail:
			err = ctrl.SendEmail(ctx)
		}
		return opDoneMsg{lane: lane, err: err}
	}
}

func (m Model) export(s session.Session) tea.Cmd {
	ctx, exporter := m.ctx, m.exporter
	return func() tea.Msg {
		path, err := exporter.Export(ctx, s.SummaryID, s.EditedSummaryText, export.FormatDocx)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m Model) busy(s session.Session, lane workflow.Lane) bool {
	return m.pending[lane] || workflow.Busy(s, lane)
}

// primaryLane is the summary-producing lane for the current input mode.
func primaryLane(s session.Session) workflow.Lane {
	if s.InputMode == session.ModeFile {
		return workflow.LaneFile
	}
	return workflow.LaneText
}

// primaryEnabled mirrors a disabled button: busy or failing its precondition.
func (m Model) primaryEnabled(s session.Session) bool {
	lane := primaryLane(s)
	if m.busy(s, lane) {
		return false
	}
	op := gate.OpGenerateSummary
	if lane == workflow.LaneFile {
		op = gate.OpProcessFile
	}
	return gate.Check(op, &s) == nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
