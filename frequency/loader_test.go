package frequency

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSV(t *testing.T) {
	csv := "get,500\nstring,420\nfoo,  12\n\n"
	table, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, 500, table.Frequency("get"))
	assert.Equal(t, 420, table.Frequency("string"))
	assert.Equal(t, 12, table.Frequency("foo"))
	assert.Equal(t, 0, table.Frequency("missing"))
	assert.Equal(t, 932, table.TotalOccurrences())
	assert.Equal(t, 500, table.Max())
}

func TestLoadCSV_RejectsNonPositiveFrequency(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("word,0\n"))
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestLoadCSV_RejectsMalformedFrequency(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("word,notanumber\n"))
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestSaveAndLoadBinary_RoundTrip(t *testing.T) {
	original := NewTable(map[string]int{"get": 500, "string": 420})

	var buf bytes.Buffer
	require.NoError(t, SaveBinary(&buf, original, true))

	loaded, err := LoadBinary(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, 500, loaded.Frequency("get"))
	assert.Equal(t, 420, loaded.Frequency("string"))
}

func TestLoadBinary_CorruptStream(t *testing.T) {
	_, err := LoadBinary(strings.NewReader("not a valid container"), false)
	assert.ErrorIs(t, err, ErrCorruptArtifact)
}

func TestTable_Lowercased_KeepsMaxAcrossCaseVariants(t *testing.T) {
	table := NewTable(map[string]int{"Get": 10, "get": 25, "GET": 5})
	folded := table.Lowercased()

	assert.Equal(t, 25, folded.Frequency("get"))
	assert.Equal(t, 1, folded.Len())
}

func TestMerge(t *testing.T) {
	local := NewTable(map[string]int{"foo": 3})
	global := NewTable(map[string]int{"foo": 100, "bar": 50})

	merged := Merge(local, global)
	assert.Equal(t, 103, merged.Frequency("foo"))
	assert.Equal(t, 50, merged.Frequency("bar"))
}

func TestTable_NilIsSafe(t *testing.T) {
	var table *Table
	assert.Equal(t, 0, table.Frequency("x"))
	assert.Equal(t, 0, table.TotalOccurrences())
	assert.Equal(t, 1, table.Max())
	assert.Equal(t, 0, table.Len())
}
