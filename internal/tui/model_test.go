package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/meeting-notes/internal/backend"
	"github.com/nguyentantai21042004/meeting-notes/internal/export"
	"github.com/nguyentantai21042004/meeting-notes/internal/logger"
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

type stubBackend struct {
	summary backend.SummaryResult
	err     error
}

func (b *stubBackend) Upload(context.Context, backend.UploadRequest) (backend.SummaryResult, error) {
	return b.summary, b.err
}

func (b *stubBackend) Summarize(context.Context, backend.SummarizeRequest) (backend.SummaryResult, error) {
	return b.summary, b.err
}

func (b *stubBackend) Email(context.Context, backend.EmailRequest) error {
	return b.err
}

func newTestModel(t *testing.T, b backend.Backend) (Model, workflow.Controller) {
	t.Helper()
	log := logger.NewWithOptions(logger.Options{Quiet: true})
	notifier := NewNotifier()
	ctrl := workflow.New(b, notifier, log)
	exp := export.New(t.TempDir(), log)
	return NewModel(context.Background(), ctrl, exp, notifier), ctrl
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// drain runs cmd and feeds its message back into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func TestTypingUpdatesSession(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})

	m = typeText(t, m, "Meeting notes...")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Summarize in bullets")

	s := ctrl.Snapshot()
	assert.Equal(t, "Meeting notes...", s.Transcript)
	assert.Equal(t, "Summarize in bullets", s.CustomInstruction)
	assert.Equal(t, fieldInstruction, m.focus)
}

func TestToggleModeClearsTranscript(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})
	m = typeText(t, m, "typed")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	s := ctrl.Snapshot()
	assert.Equal(t, session.ModeFile, s.InputMode)
	assert.Equal(t, "", s.Transcript)
	assert.Equal(t, "", m.transcript.Value())
	assert.Contains(t, m.View(), "Upload & Process File")
}

func TestPrimaryDisabledUntilPreconditionsHold(t *testing.T) {
	m, _ := newTestModel(t, &stubBackend{})

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, cmd)
}

func TestGenerateSummaryFlow(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{summary: backend.SummaryResult{Summary: "- point 1", SummaryID: "abc123"}})
	m = typeText(t, m, "Meeting notes...")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "Summarize in bullets")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Contains(t, m.View(), "Generating Summary...")

	// a second press while pending is ignored
	_, again := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, again)

	m = drain(t, m, cmd)

	s := ctrl.Snapshot()
	assert.Equal(t, "- point 1", s.SummaryText)
	assert.Equal(t, "- point 1", m.summary.Value())
	assert.Empty(t, m.pending)
	assert.Contains(t, m.View(), "3. Generated Summary (Editable)")
	assert.Contains(t, m.View(), "summary abc123")
}

func TestSendEmailFlow(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{summary: backend.SummaryResult{Summary: "- point 1", SummaryID: "abc123"}})
	ctrl.SetTranscript("t")
	ctrl.SetInstruction("p")
	require.NoError(t, ctrl.GenerateSummary(context.Background()))
	m.syncFromSession()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldRecipients, m.focus)
	m = typeText(t, m, "a@x.com")
	assert.Equal(t, "a@x.com", ctrl.Snapshot().RecipientsRaw)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	assert.Equal(t, "", ctrl.Snapshot().RecipientsRaw)
	assert.Equal(t, "", m.recipients.Value())

	// the success notice arrives through the notifier
	m = drain(t, m, m.notifier.wait())
	require.Len(t, m.notices, 1)
	assert.Equal(t, "Email sent successfully!", m.notices[0].Text)
}

func TestNoticeBlocksInputUntilDismissed(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})

	next, _ := m.Update(noticeMsg{Level: workflow.LevelError, Text: "Please provide both transcript and custom instruction"})
	m = next.(Model)
	assert.Contains(t, m.View(), "Please provide both transcript and custom instruction")

	m = typeText(t, m, "ignored")
	assert.Equal(t, "", ctrl.Snapshot().Transcript)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.notices)

	m = typeText(t, m, "accepted")
	assert.Equal(t, "accepted", ctrl.Snapshot().Transcript)
}

func TestSelectFileByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standup.txt")
	require.NoError(t, os.WriteFile(path, []byte("notes"), 0644))

	m, ctrl := newTestModel(t, &stubBackend{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m = typeText(t, m, path)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	s := ctrl.Snapshot()
	assert.Equal(t, "standup.txt", s.SelectedFileName())
	assert.Contains(t, m.View(), "Selected file: standup.txt")
}

func TestSelectMissingFileShowsNotice(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	m = typeText(t, m, filepath.Join(t.TempDir(), "nope.txt"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, ctrl.Snapshot().SelectedFile)
	require.Len(t, m.notices, 1)
	assert.Equal(t, workflow.LevelError, m.notices[0].Level)
}

func TestClearAll(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "Clear All")

	m = typeText(t, m, "typed")
	assert.Contains(t, m.View(), "Clear All")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, *session.New(), ctrl.Snapshot())
	assert.Equal(t, "", m.transcript.Value())
}

func TestExportSummary(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{summary: backend.SummaryResult{Summary: "# Notes\n- a", SummaryID: "abc123"}})
	ctrl.SetTranscript("t")
	ctrl.SetInstruction("p")
	require.NoError(t, ctrl.GenerateSummary(context.Background()))
	m.syncFromSession()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m = drain(t, m, cmd)

	require.Len(t, m.notices, 1)
	assert.Equal(t, workflow.LevelInfo, m.notices[0].Level)
	assert.Contains(t, m.notices[0].Text, "summary-abc123.docx")
}

func TestFileSelectedMsg(t *testing.T) {
	m, ctrl := newTestModel(t, &stubBackend{})
	ctrl.SetMode(session.ModeFile)
	ctrl.SelectFile(session.File{Name: "dropped.pdf"})

	next, _ := m.Update(FileSelectedMsg{Name: "dropped.pdf"})
	m = next.(Model)

	assert.Contains(t, m.View(), "Selected file: dropped.pdf")
	assert.Contains(t, m.View(), "File Upload")
}
