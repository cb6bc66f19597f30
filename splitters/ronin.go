// Package splitters provides identifier-splitting algorithms: a pure,
// stateless Elementary splitter and the frequency/dictionary-driven Ronin
// scored splitter, plus the original Samurai algorithm it evolved from.
package splitters

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/casics/spiral/constants"
	"github.com/casics/spiral/dictionary"
	"github.com/casics/spiral/frequency"
)

// ErrInvalidParameter is returned by NewRonin when a Params field falls
// outside its documented range.
var ErrInvalidParameter = errors.New("splitters: parameter out of range")

// Params holds the tunable knobs of the scored splitter.
type Params struct {
	LowFreqCutoff    int
	LengthCutoff     int
	ShortMinFreq     int
	NormalExponent   float64
	DictWordExponent float64
	CamelBias        float64
	RecognitionBias  float64
	AltExponent      float64
	ExactCase        bool
}

// DefaultParams returns the parameter set the reference implementation
// was tuned against.
func DefaultParams() Params {
	return Params{
		LowFreqCutoff:    340,
		LengthCutoff:     2,
		ShortMinFreq:     286540,
		NormalExponent:   0.15,
		DictWordExponent: 0.12,
		CamelBias:        8.6,
		RecognitionBias:  3.6e-7,
		AltExponent:      1.2,
		ExactCase:        false,
	}
}

func (p Params) validate() error {
	if p.LowFreqCutoff < 0 {
		return fmt.Errorf("%w: low_freq_cutoff must be >= 0", ErrInvalidParameter)
	}
	if p.LengthCutoff < 0 {
		return fmt.Errorf("%w: length_cutoff must be >= 0", ErrInvalidParameter)
	}
	if p.ShortMinFreq < 0 {
		return fmt.Errorf("%w: short_min_freq must be >= 0", ErrInvalidParameter)
	}
	if p.NormalExponent <= 0 || p.NormalExponent >= 1 {
		return fmt.Errorf("%w: normal_exponent must be in (0,1)", ErrInvalidParameter)
	}
	if p.DictWordExponent <= 0 || p.DictWordExponent >= 1 {
		return fmt.Errorf("%w: dict_word_exponent must be in (0,1)", ErrInvalidParameter)
	}
	if p.CamelBias <= 0 {
		return fmt.Errorf("%w: camel_bias must be > 0", ErrInvalidParameter)
	}
	if p.RecognitionBias <= 0 {
		return fmt.Errorf("%w: recognition_bias must be > 0", ErrInvalidParameter)
	}
	if p.AltExponent < 1 {
		return fmt.Errorf("%w: alt_exponent must be >= 1", ErrInvalidParameter)
	}
	return nil
}

// minFloor is the tiny positive score floor used when computing the
// sameCaseSplit threshold, so a zero-scoring whole string can still be
// beaten by a strong sub-piece.
const minFloor = 5e-7

// Ronin is the scored splitter: identifier splitting guided by a
// frequency table, a dictionary, and a fixed prefix/suffix blacklist.
// Ground truth: _examples/original_source/spiral/ronin.py (the Python
// "ronin" module, a modified Samurai), generalized to the richer
// parameter set this package documents in SPEC_FULL.md §4.2.
type Ronin struct {
	table       *frequency.Table // used for score lookups under the case policy
	rawTable    *frequency.Table // original, case-preserving table (exact_case probing)
	dict        *dictionary.Dictionary
	params      Params
	highestFreq int
}

// NewRonin builds a Ronin splitter from a frequency table, a dictionary,
// and a parameter set. A nil table or dictionary is treated as empty,
// matching a from-scratch splitter with no learned vocabulary.
func NewRonin(table *frequency.Table, dict *dictionary.Dictionary, params Params) (*Ronin, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = frequency.NewTable(nil)
	}
	if dict == nil {
		dict = dictionary.NewFromWordLists(nil, nil)
	}

	effective := table
	if !params.ExactCase {
		effective = table.Lowercased()
	}

	return &Ronin{
		table:       effective,
		rawTable:    table,
		dict:        dict,
		params:      params,
		highestFreq: table.Max(),
	}, nil
}

// Split runs the full scored-splitter algorithm on identifier (spec
// §4.2, "Algorithm (split)").
func (r *Ronin) Split(identifier string, keepNumbers bool) []string {
	if identifier == "" {
		return nil
	}

	var camelPieces []string
	for _, piece := range Elementary(identifier, keepNumbers) {
		if r.recognized(piece) {
			camelPieces = append(camelPieces, piece)
			continue
		}
		camelPieces = append(camelPieces, r.splitCaseTransition(piece)...)
	}

	var result []string
	for _, token := range camelPieces {
		result = append(result, r.sameCaseSplit(token, len(token))...)
	}
	return result
}

// SplitDefault calls Split with keep_numbers defaulted to true, matching
// the library API's documented default (spec §6).
func (r *Ronin) SplitDefault(identifier string) []string {
	return r.Split(identifier, true)
}

// splitCaseTransition locates the first upper-to-lower case transition in
// s and decides, by comparing the camel-preserving score against the
// rescaled alternate, whether to keep a leading uppercase run attached to
// the following word or fold it into the preceding piece.
func (r *Ronin) splitCaseTransition(s string) []string {
	i, found := findCaseTransition(s)
	if !found {
		return []string{s}
	}

	var camelScore float64
	if i > 0 {
		camelScore = r.raw(s[i:])
	} else {
		camelScore = r.raw(s)
	}
	altScore := r.adj(s[i+1:]) * r.params.CamelBias

	if camelScore >= altScore {
		trace("%q: keeping uppercase letter with following word (%v >= %v)", s, camelScore, altScore)
		if i > 0 {
			return []string{s[:i], s[i:]}
		}
		return []string{s}
	}
	trace("%q: folding uppercase letter into preceding piece (%v < %v)", s, camelScore, altScore)
	return []string{s[:i+1], s[i+1:]}
}

// findCaseTransition returns the index of the first uppercase letter
// immediately followed by a lowercase letter, i.e. the boundary where an
// uppercase run gives way to a properly-cased word (e.g. "ABCFoo" -> 3:
// the "C" before "Foo" is not it, the match lands on "F" at index 3).
func findCaseTransition(s string) (int, bool) {
	for i := 0; i+1 < len(s); i++ {
		if isUpperByte(s[i]) && isLowerByte(s[i+1]) {
			return i, true
		}
	}
	return 0, false
}

type candidate struct {
	split []string
	score float64
}

// sameCaseSplit recursively segments a piece that no longer has any case
// transitions left to exploit, using frequency scores together with
// dictionary recognition (spec §4.2,
// "sameCaseSplit(s) — recursive segmentation"). depth bounds the
// recursion so pathological inputs cannot overflow the stack.
func (r *Ronin) sameCaseSplit(s string, depth int) []string {
	if depth <= 0 || len(s) < 2 {
		return []string{s}
	}
	if r.recognized(s) {
		return []string{s}
	}

	threshold := math.Max(r.adj(s), minFloor)

	var primary []string
	best := -1.0
	var alternates []candidate

	for i := 1; i < len(s); i++ {
		left, right := s[:i], s[i:]
		if constants.IsPrefix(left) || (len(s) > 5 && constants.IsSuffix(right)) {
			continue
		}

		sl, sr := r.adj(left), r.adj(right)
		breakL, breakR := sl > threshold, sr > threshold

		switch {
		case breakL && breakR:
			alternates = append(alternates, candidate{[]string{left, right}, sl + sr})
			if sl+sr > best {
				best = sl + sr
				primary = []string{left, right}
			}

		case breakL:
			if math.Max(sl, sr) > r.params.RecognitionBias*float64(r.highestFreq) && r.recognized(right) {
				alternates = append(alternates, candidate{[]string{left, right}, sl + sr})
				continue
			}
			sub := r.sameCaseSplit(right, depth-1)
			if len(sub) > 1 {
				primary = append([]string{left}, sub...)
			} else if r.isSpecialCase(right) {
				alternates = append(alternates, candidate{[]string{left, right}, sl + sr})
			}

		case breakR:
			cond1 := r.recognized(left) || len(left) <= r.params.LengthCutoff || r.isSpecialCase(right)
			cond2 := math.Max(sl, sr) > r.params.RecognitionBias*float64(r.highestFreq) || r.recognized(right)
			if cond1 && cond2 {
				alternates = append(alternates, candidate{[]string{left, right}, sl + sr})
			}
		}
	}

	if primary != nil {
		trace("%q: primary split %v", s, primary)
		return primary
	}

	if best := bestAlternate(alternates); best != nil {
		rank := best.score / math.Pow(float64(len(best.split)), r.params.AltExponent)
		if rank > threshold {
			trace("%q: promoted alternate %v (rank %v > threshold %v)", s, best.split, rank, threshold)
			return best.split
		}
	}
	trace("%q: no split cleared threshold %v", s, threshold)
	return []string{s}
}

func bestAlternate(alternates []candidate) *candidate {
	if len(alternates) == 0 {
		return nil
	}
	best := alternates[0]
	for _, c := range alternates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return &best
}

// isSpecialCase marks the tokens exempt from the short-token score floor
// and eligible as Case B/C alternates even when they do not independently
// clear the recognition bar: single characters and pinned compound terms
// like "utf8".
func (r *Ronin) isSpecialCase(token string) bool {
	return len(token) <= 1 || constants.IsCommonTermWithNumbers(strings.ToLower(token))
}

// raw implements spec §4.2 "Raw score".
func (r *Ronin) raw(token string) float64 {
	if token == "" {
		return 0
	}
	if constants.IsCommonTermWithNumbers(strings.ToLower(token)) {
		return float64(r.highestFreq)
	}
	if r.params.ExactCase {
		if f := r.rawTable.Frequency(token); f > 0 {
			return float64(f)
		}
		if f := r.rawTable.Frequency(capitalize(token)); f > 0 {
			return float64(f)
		}
		return float64(r.rawTable.Frequency(strings.ToLower(token)))
	}
	return float64(r.table.Frequency(strings.ToLower(token)))
}

// adj implements spec §4.2 "Adjusted score".
func (r *Ronin) adj(token string) float64 {
	if token == "" {
		return 0
	}
	raw := r.raw(token)
	if len(token) <= r.params.LengthCutoff && !r.isSpecialCase(token) && raw <= float64(r.params.ShortMinFreq) {
		return 0
	}
	if raw <= float64(r.params.LowFreqCutoff) {
		return 0
	}
	return r.rescale(token, raw)
}

func (r *Ronin) rescale(token string, raw float64) float64 {
	if r.recognized(token) {
		return math.Pow(raw, r.params.DictWordExponent)
	}
	return math.Pow(raw, r.params.NormalExponent)
}

// recognized implements spec §4.2 "Recognition".
func (r *Ronin) recognized(token string) bool {
	if token == "" {
		return false
	}
	lower := strings.ToLower(token)
	if constants.IsCommonTermWithNumbers(lower) {
		return true
	}
	if r.dict.ContainsSpecialTerm(lower) {
		return true
	}
	if r.dict.ContainsSpecialTerm(dictionary.Stem(lower)) {
		return true
	}
	if len(token) > 1 && (r.dict.Contains(lower) || r.dict.Contains(dictionary.Stem(lower))) {
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

var (
	defaultRonin     *Ronin
	defaultRoninOnce sync.Once
	defaultRoninErr  error
)

// Default returns the package-level Ronin splitter built from the
// embedded default word lists and an empty frequency table, lazily
// constructed once per process (spec §4.2, "State machine"). Without a
// real frequency artifact, scoring relies on recognition and the
// camel/prefix/suffix heuristics rather than learned frequencies; load a
// real table with NewRonin for production-quality splits.
func Default() (*Ronin, error) {
	defaultRoninOnce.Do(func() {
		dict := dictionary.NewFromWordLists(dictionary.DefaultWords, dictionary.SpecialComputingTerms)
		defaultRonin, defaultRoninErr = NewRonin(frequency.NewTable(nil), dict, DefaultParams())
	})
	return defaultRonin, defaultRoninErr
}
