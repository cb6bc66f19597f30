package oracle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	data := "somevar\tsome,var\n# a comment\n\ngetMAX\tget,MAX\n"
	entries, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "somevar", entries[0].Identifier)
	assert.Equal(t, []string{"some", "var"}, entries[0].Expected)
	assert.Equal(t, "getMAX", entries[1].Identifier)
	assert.Equal(t, []string{"get", "MAX"}, entries[1].Expected)
}

func TestLoad_RejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("nodelimiterhere\n"))
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyExpected(t *testing.T) {
	_, err := Load(strings.NewReader("identifier\t\n"))
	assert.Error(t, err)
}

func TestEvaluate_AllCorrect(t *testing.T) {
	entries := []Entry{
		{Identifier: "somevar", Expected: []string{"some", "var"}},
		{Identifier: "getdata", Expected: []string{"get", "data"}},
	}
	report := Evaluate(entries, func(id string) []string {
		switch id {
		case "somevar":
			return []string{"some", "var"}
		case "getdata":
			return []string{"get", "data"}
		}
		return nil
	})

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Correct)
	assert.Empty(t, report.Mismatches)
	assert.Equal(t, 100.0, report.Accuracy())
}

func TestEvaluate_RecordsMismatches(t *testing.T) {
	entries := []Entry{
		{Identifier: "somevar", Expected: []string{"some", "var"}},
	}
	report := Evaluate(entries, func(string) []string {
		return []string{"somevar"}
	})

	assert.Equal(t, 0, report.Correct)
	require.Len(t, report.Mismatches, 1)
	assert.Equal(t, "somevar", report.Mismatches[0].Identifier)
	assert.Equal(t, []string{"some", "var"}, report.Mismatches[0].Expected)
	assert.Equal(t, []string{"somevar"}, report.Mismatches[0].Got)
	assert.Equal(t, 0.0, report.Accuracy())
}

func TestReport_Accuracy_EmptyIsVacuouslyComplete(t *testing.T) {
	var report Report
	assert.Equal(t, 100.0, report.Accuracy())
}
