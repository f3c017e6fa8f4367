package service

import "unicode/utf8"

const (
	// SummaryLimit is the number of characters kept from the extracted text
	SummaryLimit = 1000
	// TruncationMarker is appended after the kept prefix when text was cut.
	// It does not count toward SummaryLimit, so a truncated summary is 1003 characters.
	TruncationMarker = "..."
)

// Summarize returns the preview stored for a session: the text unchanged when it
// has at most SummaryLimit characters, otherwise the first SummaryLimit characters
// followed by TruncationMarker. Characters are runes, never bytes.
func Summarize(text string) string {
	if utf8.RuneCountInString(text) <= SummaryLimit {
		return text
	}

	n := 0
	for i := range text {
		if n == SummaryLimit {
			return text[:i] + TruncationMarker
		}
		n++
	}
	return text
}
