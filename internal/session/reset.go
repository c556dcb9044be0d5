package session

// ClearAll empties every user-visible field and returns to text mode.
// Busy flags belong to in-flight operations and are left alone.
func (s *Session) ClearAll() {
	s.Transcript = ""
	s.CustomInstruction = ""
	s.SummaryText = ""
	s.EditedSummaryText = ""
	s.SummaryID = ""
	s.RecipientsRaw = ""
	s.SelectedFile = nil
	s.InputMode = ModeText
}

// CanClear reports whether there is anything visible for ClearAll to remove.
func (s *Session) CanClear() bool {
	return s.Transcript != "" || s.SelectedFile != nil || s.SummaryText != ""
}
