package mdtablefix

import "strings"

// TableTracker follows the "currently inside a table" state across a
// document's lines. A table line (trimmed form starts with "|") sets the
// flag; a blank plain line clears it; a non-blank plain line leaves it
// unchanged, even inside what looks like a table region.
//
// The flag never gates normalization: every table line is rewritten
// regardless of its value. The transitions are kept for parity with the
// reference behavior, which tracked the same dead state.
type TableTracker struct {
	inTable bool
}

// Observe classifies line and advances the tracker state. It reports whether
// line is a table line; the report does not depend on the tracked flag.
func (t *TableTracker) Observe(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") {
		t.inTable = true
		return true
	}
	if t.inTable && trimmed == "" {
		t.inTable = false
	}
	return false
}

// InTable reports the tracked state after the lines observed so far.
func (t *TableTracker) InTable() bool {
	return t.inTable
}
