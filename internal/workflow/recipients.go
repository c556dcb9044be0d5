package workflow

import "strings"

// ParseRecipients splits raw on commas and trims every token. Empty tokens
// are kept and no address syntax is checked; the backend decides what to do
// with them.
func ParseRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
