package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestamped(t *testing.T) {
	name := Timestamped("guide.pdf")
	assert.True(t, strings.HasSuffix(name, "__guide.pdf"))
	assert.Len(t, name, len("20060102_150405__guide.pdf"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", TruncateRunes("abc", 0))
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "привет", TruncateRunes("привет мир", 6))
}
