package workflow

import (
	"github.com/nguyentantai21042004/meeting-notes/internal/session"
)

func (c *implController) Snapshot() session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

func (c *implController) update(fn func(s *session.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.state)
}

func (c *implController) SetTranscript(text string) {
	c.update(func(s *session.Session) { s.Transcript = text })
}

func (c *implController) SetInstruction(text string) {
	c.update(func(s *session.Session) { s.CustomInstruction = text })
}

func (c *implController) EditSummary(text string) {
	c.update(func(s *session.Session) { s.EditedSummaryText = text })
}

func (c *implController) SetRecipients(text string) {
	c.update(func(s *session.Session) { s.RecipientsRaw = text })
}

func (c *implController) SetMode(mode session.InputMode) {
	c.update(func(s *session.Session) { s.SetMode(mode) })
}

func (c *implController) SelectFile(file session.File) {
	c.update(func(s *session.Session) { s.SelectFile(file) })
}

func (c *implController) ClearAll() {
	c.update(func(s *session.Session) { s.ClearAll() })
}

func (c *implController) CanClear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CanClear()
}
