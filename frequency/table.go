// Package frequency loads and exposes token -> occurrence-count tables,
// the statistical backbone the scored splitter uses to judge whether a
// candidate token is "real". Tables are immutable once built (spec §3).
package frequency

import (
	"errors"
	"strings"
)

// ErrMissingArtifact is returned when no frequency table was supplied and
// no default artifact could be found (spec §7, MissingFrequencyArtifact).
var ErrMissingArtifact = errors.New("frequency: no table supplied and no default artifact found")

// ErrCorruptArtifact is returned when a frequency artifact fails to parse
// (spec §7, CorruptArtifact).
var ErrCorruptArtifact = errors.New("frequency: artifact is corrupt or malformed")

// Table is an immutable mapping from token to a positive occurrence count,
// plus its derived total and maximum (spec §3: FrequencyTable, HighestFreq).
type Table struct {
	counts map[string]int
	total  int
	max    int
}

// NewTable builds a Table from a plain map of token -> count. Entries with
// a non-positive count are dropped, matching the invariant that
// FrequencyTable values are >= 1 (spec §3).
func NewTable(counts map[string]int) *Table {
	t := &Table{counts: make(map[string]int, len(counts))}
	for token, count := range counts {
		if token == "" || count < 1 {
			continue
		}
		t.counts[token] = count
		t.total += count
		if count > t.max {
			t.max = count
		}
	}
	return t
}

// Frequency returns the occurrence count for token, or 0 if it is absent.
func (t *Table) Frequency(token string) int {
	if t == nil {
		return 0
	}
	return t.counts[token]
}

// TotalOccurrences returns the sum of all counts in the table.
func (t *Table) TotalOccurrences() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Max returns the highest count held by the table (spec §3: HighestFreq).
// It returns 1 for an empty table so callers that divide by it never
// divide by zero.
func (t *Table) Max() int {
	if t == nil || t.max == 0 {
		return 1
	}
	return t.max
}

// Len returns the number of distinct tokens held by the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}

// Lowercased returns a new Table with every key folded to lowercase,
// keeping the maximum count across case variants that collapse to the same
// key. This implements the exact_case=false case policy of spec §4.2.
func (t *Table) Lowercased() *Table {
	if t == nil {
		return NewTable(nil)
	}
	folded := make(map[string]int, len(t.counts))
	for token, count := range t.counts {
		key := strings.ToLower(token)
		if count > folded[key] {
			folded[key] = count
		}
	}
	return NewTable(folded)
}

// Merge combines any number of tables into a new Table, summing counts for
// shared keys. Nil tables are skipped; with no non-nil table the result is
// an empty Table. Used to combine a local, project-specific table with
// the shipped global table (spec §2, item 1).
func Merge(tables ...*Table) *Table {
	combined := make(map[string]int)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for token, count := range t.counts {
			combined[token] += count
		}
	}
	return NewTable(combined)
}
