package tui

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-notes/internal/session"
	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

func (m Model) View() string {
	s := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI Meeting Notes Summarizer"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("1. Input Method"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs(s))
	b.WriteString("\n\n")

	if s.InputMode == session.ModeText {
		b.WriteString(dimStyle.Render("Paste Meeting Transcript"))
		b.WriteString("\n")
		b.WriteString(m.transcript.View())
	} else {
		b.WriteString(dimStyle.Render("Upload Meeting File"))
		b.WriteString("\n")
		b.WriteString(m.filePath.View())
		if name := s.SelectedFileName(); name != "" {
			b.WriteString("\n")
			b.WriteString(fileInfoStyle.Render("Selected file: " + name))
		}
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("2. Custom Instruction"))
	b.WriteString("\n")
	b.WriteString(m.instruction.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderPrimaryButton(s))
	if s.CanClear() {
		b.WriteString("  ")
		b.WriteString(clearButtonStyle.Render("Clear All (ctrl+x)"))
	}
	b.WriteString("\n")

	if s.SummaryText != "" {
		b.WriteString(sectionStyle.Render("3. Generated Summary (Editable)"))
		b.WriteString("\n")
		b.WriteString(m.summary.View())
		b.WriteString("\n")

		b.WriteString(sectionStyle.Render("4. Share via Email"))
		b.WriteString("\n")
		b.WriteString(m.recipients.View())
		b.WriteString("  ")
		if m.busy(s, workflow.LaneEmail) {
			b.WriteString(disabledButtonStyle.Render("Sending Email..."))
		} else {
			b.WriteString(buttonStyle.Render("Send Email (ctrl+s)"))
		}
		b.WriteString("\n")
	}

	if len(m.notices) > 0 {
		b.WriteString("\n")
		b.WriteString(renderNotice(m.notices[0]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar(s))
	return b.String()
}

func (m Model) renderTabs(s session.Session) string {
	text, file := tabStyle, tabStyle
	if s.InputMode == session.ModeText {
		text = activeTabStyle
	} else {
		file = activeTabStyle
	}
	return text.Render("Text Input") + " " + file.Render("File Upload") + dimStyle.Render("  ctrl+t to switch")
}

func (m Model) renderPrimaryButton(s session.Session) string {
	lane := primaryLane(s)
	label, busyLabel := "Generate Summary", "Generating Summary..."
	if lane == workflow.LaneFile {
		label, busyLabel = "Upload & Process File", "Processing File..."
	}

	switch {
	case m.busy(s, lane):
		return disabledButtonStyle.Render(busyLabel)
	case !m.primaryEnabled(s):
		return disabledButtonStyle.Render(label)
	default:
		return buttonStyle.Render(label + " (ctrl+g)")
	}
}

func renderNotice(n workflow.Notice) string {
	style := noticeStyle
	if n.Level == workflow.LevelError {
		style = errorNoticeStyle
	}
	return style.Render(n.Text + "\n\n" + dimStyle.Render("enter to dismiss"))
}

func (m Model) renderStatusBar(s session.Session) string {
	parts := []string{"tab: next field"}
	if s.SummaryText != "" && m.exporter != nil {
		parts = append(parts, "ctrl+e: export .docx")
	}
	parts = append(parts, "ctrl+c: quit")
	if s.SummaryID != "" {
		parts = append(parts, fmt.Sprintf("summary %s", s.SummaryID))
	}
	return statusBarStyle.Render(strings.Join(parts, " │ "))
}
