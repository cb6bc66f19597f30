package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrefix(t *testing.T) {
	cases := []struct {
		token    string
		expected bool
	}{
		{"re", true},
		{"RE", true},
		{"micro", true},
		{"zzzznotaprefix", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, IsPrefix(c.token), "token %q", c.token)
	}
}

func TestIsSuffix(t *testing.T) {
	assert.True(t, IsSuffix("ing"))
	assert.True(t, IsSuffix("TION"))
	assert.False(t, IsSuffix("notasuffixatall"))
}

func TestIsCommonTermWithNumbers(t *testing.T) {
	assert.True(t, IsCommonTermWithNumbers("utf8"))
	assert.True(t, IsCommonTermWithNumbers("UTF8"))
	assert.True(t, IsCommonTermWithNumbers("ipv4"))
	assert.False(t, IsCommonTermWithNumbers("foobar"))
}

func TestHasCommonSuffixNumber(t *testing.T) {
	assert.True(t, HasCommonSuffixNumber("sha256"))
	assert.True(t, HasCommonSuffixNumber("aes128"))
	assert.False(t, HasCommonSuffixNumber("256"), "must not start with a digit")
	assert.False(t, HasCommonSuffixNumber("foo7"))
}
