// Package dictionary provides an immutable English word set augmented with
// a set of domain-specific "special computing terms", plus a stemmer, as
// described in spec §2 item 2. The scored splitter (splitters.Ronin) uses
// it to recognize whole tokens without needing frequency support.
package dictionary

import (
	"bufio"
	"io"
	"strings"

	"github.com/a2800276/porter"
	mapset "github.com/deckarep/golang-set"
)

// Dictionary is an immutable set of lowercase words, paired with a
// domain-specific set of "special computing terms" such as "lexer" or
// "iterator" that a general English dictionary would not reliably contain.
type Dictionary struct {
	words   mapset.Set
	special mapset.Set
}

// New builds a Dictionary from a set of general words and a set of special
// computing terms. Both sets are treated as already-lowercased; nil sets
// are treated as empty.
func New(words, special mapset.Set) *Dictionary {
	if words == nil {
		words = mapset.NewThreadUnsafeSet()
	}
	if special == nil {
		special = mapset.NewThreadUnsafeSet()
	}
	return &Dictionary{words: words, special: special}
}

// NewFromWordLists builds a Dictionary from plain Go slices, lowercasing
// each entry. Convenient for tests and small embedded word lists.
func NewFromWordLists(words, special []string) *Dictionary {
	return New(toSet(words), toSet(special))
}

func toSet(items []string) mapset.Set {
	s := mapset.NewThreadUnsafeSet()
	for _, item := range items {
		s.Add(strings.ToLower(item))
	}
	return s
}

// LoadWords reads one lowercase word per line from r and adds it to the
// Dictionary's general word set, returning a new Dictionary (the receiver
// is left untouched, preserving the package's immutability invariant).
func (d *Dictionary) LoadWords(r io.Reader) (*Dictionary, error) {
	words := cloneSet(d.generalWords())
	special := cloneSet(d.specialTerms())

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words.Add(strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Dictionary{words: words, special: special}, nil
}

func (d *Dictionary) generalWords() mapset.Set {
	if d == nil || d.words == nil {
		return mapset.NewThreadUnsafeSet()
	}
	return d.words
}

func (d *Dictionary) specialTerms() mapset.Set {
	if d == nil || d.special == nil {
		return mapset.NewThreadUnsafeSet()
	}
	return d.special
}

func cloneSet(s mapset.Set) mapset.Set {
	clone := mapset.NewThreadUnsafeSet()
	it := s.Iterator()
	for item := range it.C {
		clone.Add(item)
	}
	return clone
}

// Contains reports whether word (case-insensitively) is in the English
// word set or the special computing terms set.
func (d *Dictionary) Contains(word string) bool {
	lower := strings.ToLower(word)
	return d.generalWords().Contains(lower) || d.specialTerms().Contains(lower)
}

// ContainsSpecialTerm reports whether word is one of the domain-specific
// special computing terms, independent of the general English word set.
func (d *Dictionary) ContainsSpecialTerm(word string) bool {
	return d.specialTerms().Contains(strings.ToLower(word))
}

// Stem returns the stem of word using the Porter stemming algorithm, with
// one documented exception: words longer than one character that end in
// "s" have the trailing "s" stripped directly rather than run through the
// English stemmer, because the stemmer mis-stems some technical plurals
// (spec §4.2 "Recognition", §9 "Stemmer caveat"). Stemming is always
// performed on the lowercased word.
func Stem(word string) string {
	lower := strings.ToLower(word)
	if len(lower) > 1 && strings.HasSuffix(lower, "s") {
		return lower[:len(lower)-1]
	}
	stemmed, err := porter.Stem(lower)
	if err != nil {
		return lower
	}
	return stemmed
}

// ContainsStem reports whether the stem of word is in the dictionary
// (general words or special terms), which is one of the conditions that
// make a token "recognized" per spec §4.2.
func (d *Dictionary) ContainsStem(word string) bool {
	return d.Contains(Stem(word))
}
