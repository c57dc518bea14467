package datemath

import "time"

// Result is a resolved date/time phrase found inside free text.
type Result struct {
	// Spans holds the exact substrings that were matched, for the caller to
	// strip from the surrounding text.
	Spans []string
	// At is the resolved instant. Without an explicit clock time it points at
	// the start of the resolved day.
	At time.Time
	// HasClockTime reports whether an explicit hour was part of the match.
	HasClockTime bool
}
