package session

// SetMode switches the active transcript source and clears the other one.
func (s *Session) SetMode(mode InputMode) {
	s.InputMode = mode
	if mode == ModeText {
		s.SelectedFile = nil
	} else {
		s.Transcript = ""
	}
}

// SelectFile records f as the upload candidate. The typed transcript is
// cleared whatever the current mode is.
func (s *Session) SelectFile(f File) {
	s.SelectedFile = &f
	s.Transcript = ""
}
