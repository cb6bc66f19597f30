package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	d := NewFromWordLists([]string{"some", "variable"}, []string{"lexer"})
	assert.True(t, d.Contains("some"))
	assert.True(t, d.Contains("Variable"))
	assert.True(t, d.Contains("LEXER"))
	assert.False(t, d.Contains("nonsense"))
}

func TestContainsSpecialTerm(t *testing.T) {
	d := NewFromWordLists([]string{"variable"}, []string{"lexer", "iterator"})
	assert.True(t, d.ContainsSpecialTerm("lexer"))
	assert.False(t, d.ContainsSpecialTerm("variable"), "general words are not special terms")
}

func TestStem_StripsTrailingSWithoutPorter(t *testing.T) {
	// Words ending in 's' bypass the Porter stemmer (the
	// github.com/a2800276/porter dependency): the 's'-suffix caveat strips
	// only the trailing 's'.
	assert.Equal(t, "byte", Stem("bytes"))
	assert.Equal(t, "cache", Stem("caches"))
}

func TestStem_FallsBackToPorterForNonSWords(t *testing.T) {
	assert.Equal(t, strings.ToLower("connect"), Stem("connection"))
}

func TestStem_SingleCharacterSIsNotStripped(t *testing.T) {
	assert.Equal(t, "s", Stem("s"))
}

func TestContainsStem(t *testing.T) {
	d := NewFromWordLists([]string{"cache"}, nil)
	assert.True(t, d.ContainsStem("caches"))
	assert.False(t, d.ContainsStem("xyzzy"))
}

func TestLoadWords_IsImmutable(t *testing.T) {
	original := NewFromWordLists([]string{"foo"}, nil)

	extended, err := original.LoadWords(strings.NewReader("bar\nbaz\n# comment\n\n"))
	require.NoError(t, err)

	assert.True(t, extended.Contains("foo"))
	assert.True(t, extended.Contains("bar"))
	assert.True(t, extended.Contains("baz"))

	assert.True(t, original.Contains("foo"))
	assert.False(t, original.Contains("bar"), "receiver must not be mutated by LoadWords")
}

func TestNilDictionaryIsSafe(t *testing.T) {
	var d *Dictionary
	assert.False(t, d.Contains("anything"))
	assert.False(t, d.ContainsSpecialTerm("anything"))
}
