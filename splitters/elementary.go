package splitters

import (
	"sort"
	"strings"

	"github.com/casics/spiral/constants"
)

// hardDelimiters is the set of characters translated to whitespace before
// any other processing, per spec §4.1 step 2.
const hardDelimiters = "_.:$~/@"

// Elementary splits id into word-like tokens using only delimiters, digit
// runs, and camel-case transitions — no frequency table or dictionary is
// consulted. It is a pure function: same input always yields the same
// output, and it performs no I/O (spec §4.1).
//
// This is the Go rendering of the "heuristic_split" function in the
// original casics/spiral project (_examples/original_source/spiral/
// simple_splitters.py), generalized per spec §4.1's five-step contract.
func Elementary(id string, keepNumbers bool) []string {
	if id == "" {
		return nil
	}

	working := id
	if !keepNumbers {
		working = stripLeadingDigits(working)
	}

	working = translateDelimiters(working)
	working = protectExceptions(working)
	working = insertCamelBoundaries(working)

	var tokens []string
	for _, piece := range strings.Fields(working) {
		tokens = append(tokens, splitPiece(piece, keepNumbers)...)
	}
	return tokens
}

func stripLeadingDigits(s string) string {
	i := 0
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	return s[i:]
}

func translateDelimiters(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 128 && strings.IndexByte(hardDelimiters, byte(r)) >= 0 {
			return ' '
		}
		return r
	}, s)
}

// exceptionsByDescendingLength returns the common-terms-with-numbers
// exceptions sorted so longer terms are protected before shorter ones,
// preventing e.g. a short exception from partially shadowing a longer one
// that contains it.
func exceptionsByDescendingLength() []string {
	set := constants.CommonTermsWithNumbers()
	items := make([]string, 0, set.Cardinality())
	it := set.Iterator()
	for v := range it.C {
		items = append(items, v.(string))
	}
	sort.Slice(items, func(i, j int) bool {
		if len(items[i]) != len(items[j]) {
			return len(items[i]) > len(items[j])
		}
		return items[i] < items[j]
	})
	return items
}

// protectExceptions surrounds every case-insensitive match of a
// common-terms-with-numbers exception with whitespace, so later
// digit/camel splitting leaves it intact (spec §4.1 step 3).
func protectExceptions(s string) string {
	for _, exception := range exceptionsByDescendingLength() {
		s = surroundCaseInsensitive(s, exception)
	}
	return s
}

func surroundCaseInsensitive(s, needle string) string {
	if needle == "" {
		return s
	}
	lowerS := strings.ToLower(s)
	lowerNeedle := strings.ToLower(needle)

	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(lowerS[i:], lowerNeedle)
		if idx < 0 {
			b.WriteString(s[i:])
			break
		}
		start := i + idx
		end := start + len(needle)
		b.WriteString(s[i:start])
		b.WriteByte(' ')
		b.WriteString(s[start:end])
		b.WriteByte(' ')
		i = end
	}
	return b.String()
}

// insertCamelBoundaries inserts a space before every uppercase letter that
// is immediately preceded by a lowercase letter (spec §4.1 step 4).
func insertCamelBoundaries(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i > 0 && isLowerByte(s[i-1]) && isUpperByte(c) {
			b.WriteByte(' ')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// splitPiece applies spec §4.1 step 5 to a single whitespace-delimited
// piece produced by the earlier steps.
func splitPiece(p string, keepNumbers bool) []string {
	lower := strings.ToLower(p)
	if constants.IsCommonTermWithNumbers(lower) {
		return []string{p}
	}
	if constants.HasCommonSuffixNumber(p) {
		return []string{p}
	}

	runs := splitOnDigitRuns(p)
	if keepNumbers {
		var out []string
		for _, run := range runs {
			if run != "" {
				out = append(out, run)
			}
		}
		return out
	}

	var out []string
	for _, run := range runs {
		if isAllDigits(run) {
			continue
		}
		trimmed := strings.TrimFunc(run, func(r rune) bool {
			return r < 128 && isDigitByte(byte(r))
		})
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// splitOnDigitRuns splits p into alternating digit-run and non-digit-run
// substrings, preserving order and preserving case.
func splitOnDigitRuns(p string) []string {
	if p == "" {
		return nil
	}
	var runs []string
	start := 0
	curDigit := isDigitByte(p[0])
	for i := 1; i < len(p); i++ {
		d := isDigitByte(p[i])
		if d != curDigit {
			runs = append(runs, p[start:i])
			start = i
			curDigit = d
		}
	}
	runs = append(runs, p[start:])
	return runs
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigitByte(s[i]) {
			return false
		}
	}
	return true
}

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
func isUpperByte(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLowerByte(c byte) bool { return c >= 'a' && c <= 'z' }
