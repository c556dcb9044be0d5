package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/meeting-notes/internal/workflow"
)

// Notifier hands workflow notices to the running program, which shows them
// as a modal that must be dismissed before any other input is accepted.
type Notifier struct {
	ch chan workflow.Notice
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan workflow.Notice, 16)}
}

func (n *Notifier) Notify(ctx context.Context, notice workflow.Notice) {
	select {
	case n.ch <- notice:
	case <-ctx.Done():
	}
}

type noticeMsg workflow.Notice

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		return noticeMsg(<-n.ch)
	}
}
