package splitters

import (
	"math"

	"github.com/casics/spiral/constants"
	"github.com/casics/spiral/frequency"
)

// Samurai implements the identifier-splitting algorithm published by
// Enslen, Hill, Pollock & Vijay-Shanker (2009), the dictionary-free
// predecessor Ronin (splitters.Ronin) refines. It relies only on a local
// and a global frequency table, never on a dictionary or stemmer.
//
// Ground truth: _examples/eroatta-dispersal/splitters/samurai.go, adapted
// to use frequency.Table (the teacher's FrequencyTable type did not exist
// anywhere in the pack) and to preprocess with the Elementary splitter
// rather than the teacher's undefined marker helpers.
type Samurai struct {
	local  *frequency.Table
	global *frequency.Table
}

// NewSamurai builds a Samurai splitter from a local (project-specific)
// and a global frequency table. Either may be nil, treated as empty.
func NewSamurai(local, global *frequency.Table) *Samurai {
	if local == nil {
		local = frequency.NewTable(nil)
	}
	if global == nil {
		global = frequency.NewTable(nil)
	}
	return &Samurai{local: local, global: global}
}

// Split applies the Samurai algorithm to token, returning its hard/soft
// word constituents.
func (s *Samurai) Split(token string) ([]string, error) {
	if token == "" {
		return nil, nil
	}

	var camelPieces []string
	for _, piece := range Elementary(token, true) {
		camelPieces = append(camelPieces, s.splitCaseTransition(piece)...)
	}

	var result []string
	for _, piece := range camelPieces {
		result = append(result, s.sameCaseSplit(piece, s.score(piece))...)
	}
	return result, nil
}

// splitCaseTransition mirrors ronin's camel-transition handling but scores
// candidates with plain sqrt comparisons instead of the adj/rescale
// machinery, matching the original Samurai paper's simpler formulation.
func (s *Samurai) splitCaseTransition(word string) []string {
	i, found := findCaseTransition(word)
	if !found || len(word) < 2 {
		return []string{word}
	}

	var camelScore float64
	if i > 0 {
		camelScore = s.score(word[i:])
	} else {
		camelScore = s.score(word)
	}
	altScore := s.score(word[i+1:])

	if camelScore > math.Sqrt(altScore) {
		if i > 0 {
			return []string{word[:i], word[i:]}
		}
		return []string{word}
	}
	return []string{word[:i+1], word[i+1:]}
}

func (s *Samurai) sameCaseSplit(token string, baseScore float64) []string {
	if len(token) < 2 {
		return []string{token}
	}

	best := -1.0
	result := []string{token}
	whole := s.score(token)

	for i := 1; i < len(token); i++ {
		left, right := token[:i], token[i:]
		if constants.IsPrefix(left) || constants.IsSuffix(right) {
			continue
		}

		scoreLeft, scoreRight := s.score(left), s.score(right)
		threshold := math.Max(whole, baseScore)
		splitLeft := math.Sqrt(scoreLeft) > threshold
		splitRight := math.Sqrt(scoreRight) > threshold

		switch {
		case splitLeft && splitRight:
			if scoreLeft+scoreRight > best {
				best = scoreLeft + scoreRight
				result = []string{left, right}
			}
		case splitLeft:
			sub := s.sameCaseSplit(right, baseScore)
			if len(sub) > 1 {
				result = append([]string{left}, sub...)
			}
		}
	}

	return result
}

// score combines local and global frequency evidence: the in-project
// count plus the global count discounted by the log of the project's
// total word occurrences (Enslen et al. 2009, §3.2).
func (s *Samurai) score(word string) float64 {
	if word == "" {
		return 0
	}
	localFreq := float64(s.local.Frequency(word))
	globalFreq := float64(s.global.Frequency(word))
	total := float64(s.local.TotalOccurrences())
	if total <= 1 {
		return localFreq
	}
	return localFreq + globalFreq/math.Log10(total)
}
