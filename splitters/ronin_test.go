package splitters

import (
	"testing"

	"github.com/casics/spiral/dictionary"
	"github.com/casics/spiral/frequency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRonin(t *testing.T, freqs map[string]int, words []string) *Ronin {
	t.Helper()
	r, err := NewRonin(frequency.NewTable(freqs), dictionary.NewFromWordLists(words, nil), DefaultParams())
	require.NoError(t, err)
	return r
}

func TestNewRonin_RejectsInvalidParams(t *testing.T) {
	bad := DefaultParams()
	bad.NormalExponent = 1.5
	_, err := NewRonin(nil, nil, bad)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestNewRonin_NilTableAndDictAreSafe(t *testing.T) {
	r, err := NewRonin(nil, nil, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, []string{"anything"}, r.Split("anything", true))
}

// Seed scenario 1.
func TestRonin_SplitsTwoDictionaryWords(t *testing.T) {
	r := newTestRonin(t, map[string]int{"some": 10000, "var": 5000}, []string{"some", "var"})
	assert.Equal(t, []string{"some", "var"}, r.Split("somevar", true))
}

// Seed scenario 2.
func TestRonin_SplitsAcrossDelimiterAndDictionaryWords(t *testing.T) {
	r := newTestRonin(t,
		map[string]int{"get": 8000, "data": 6000},
		[]string{"usage", "get", "data"})
	assert.Equal(t, []string{"usage", "get", "data"}, r.Split("usage_getdata", true))
}

// Seed scenario 3.
func TestRonin_KeepsUppercaseAcronymBeforeDictionaryWord(t *testing.T) {
	r := newTestRonin(t, map[string]int{"module": 5000}, []string{"module"})
	assert.Equal(t, []string{"GPS", "module"}, r.Split("GPSmodule", true))
}

// Seed scenario 4.
func TestRonin_SplitsUppercaseRunBeforeCapitalizedWord(t *testing.T) {
	r := newTestRonin(t, nil, nil)
	assert.Equal(t, []string{"ABC", "Foo", "Bar"}, r.Split("ABCFooBar", true))
}

// Seed scenario 5.
func TestRonin_SplitsLowerToUpperCamelBoundary(t *testing.T) {
	r := newTestRonin(t, map[string]int{"get": 8000}, []string{"get"})
	assert.Equal(t, []string{"get", "MAX"}, r.Split("getMAX", true))
}

// Seed scenario 6.
func TestRonin_KeepsAcronymBeforeUnrecognizedCapitalizedWord(t *testing.T) {
	r := newTestRonin(t, nil, nil)
	assert.Equal(t, []string{"AST", "Visitor"}, r.Split("ASTVisitor", true))
}

// Seed scenario 7.
func TestRonin_UnsplittableCompoundReturnsWhole(t *testing.T) {
	r := newTestRonin(t, nil, nil)
	assert.Equal(t, []string{"mpegts"}, r.Split("mpegts", true))
}

// Seed scenario 8.
func TestRonin_PreservesExceptionAndSplitsSurroundingWords(t *testing.T) {
	r := newTestRonin(t, map[string]int{"var": 5000}, []string{"var"})
	assert.Equal(t, []string{"a", "UTF8", "var"}, r.Split("aUTF8var", true))
}

// Seed scenario 9.
func TestRonin_RecursesThroughThreeWordCompound(t *testing.T) {
	r := newTestRonin(t,
		map[string]int{"is": 1000000, "better": 5000, "file": 4000},
		[]string{"is", "better", "file"})
	assert.Equal(t, []string{"is", "better", "file"}, r.Split("isbetterfile", true))
}

// Seed scenario 10.
func TestRonin_KeepsDomainCompoundAndSplitsRemainder(t *testing.T) {
	r := newTestRonin(t,
		map[string]int{"nonnegative": 4000, "decimal": 3000, "type": 2500},
		[]string{"nonnegative", "decimal", "type"})
	assert.Equal(t, []string{"nonnegative", "decimal", "type"}, r.Split("nonnegativedecimaltype", true))
}

func TestRonin_Totality(t *testing.T) {
	r := newTestRonin(t,
		map[string]int{"some": 10000, "var": 5000, "get": 8000, "data": 6000},
		[]string{"some", "var", "get", "data"})

	ids := []string{"somevar", "usage_getdata", "GPSmodule", "ABCFooBar", "x", "", "123", "a_b_c"}
	for _, id := range ids {
		for _, token := range r.Split(id, true) {
			assert.NotEmpty(t, token, "id=%q produced an empty token", id)
		}
	}
}

func TestRonin_RecognitionShortCircuit(t *testing.T) {
	r := newTestRonin(t, map[string]int{"cache": 9000}, []string{"cache"})
	assert.Equal(t, []string{"cache"}, r.Split("cache", true))
}

func TestRonin_ExceptionPreservation(t *testing.T) {
	r := newTestRonin(t, nil, nil)
	assert.Equal(t, []string{"read", "md5", "sum"}, r.Split("read_md5_sum", true))
	assert.Equal(t, []string{"send", "ipv4", "packet"}, r.Split("send_ipv4_packet", true))
}

func TestRonin_PrefixBlacklistPreventsSplit(t *testing.T) {
	// "re" is a known prefix; even though "turn" might otherwise look like a
	// plausible split target, sameCaseSplit must not cut "return" as
	// "re"+"turn".
	r := newTestRonin(t, map[string]int{"turn": 50000}, []string{"turn"})
	got := r.Split("return", true)
	assert.NotEqual(t, []string{"re", "turn"}, got)
}

func TestRonin_Default(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	require.NotNil(t, r)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, r, again, "Default must memoize the splitter")
}

func TestRonin_SplitDefault_UsesKeepNumbersTrue(t *testing.T) {
	r := newTestRonin(t, nil, nil)
	assert.Equal(t, r.Split("foo123", true), r.SplitDefault("foo123"))
}
