package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Night Shift", "Night Shift"},
		{"control chars", "Night\x1b[31m Shift\x07", "Night[31m Shift"},
		{"newline", "a\nb", "ab"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		plain string
		fancy string
	}{
		{"hello", 10, "hello", "hello"},
		{"hello", 5, "hello", "hello"},
		{"hello world", 8, "hello...", "hello w…"},
		{"hello", 3, "...", "he…"},
		{"", 10, "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.plain, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
		assert.Equal(t, tt.fancy, TruncateEllipsis(tt.in, tt.width), "TruncateEllipsis(%q, %d)", tt.in, tt.width)
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "hello     ", Pad("hello", 10))
	assert.Equal(t, "hello", Pad("hello", 5))
	assert.Equal(t, "hello world", Pad("hello world", 5))
	assert.Equal(t, "     ", Pad("", 5))
}

func TestFitStyled(t *testing.T) {
	styled := "\x1b[1mbold\x1b[0m"
	got := FitStyled(styled, 6)
	assert.True(t, strings.HasPrefix(got, styled))
	assert.True(t, strings.HasSuffix(got, "  "))

	assert.Equal(t, "hel", FitStyled("hello", 3))
	assert.Empty(t, FitStyled("hello", 0))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", Center("ab", 6))
	assert.Equal(t, " ab  ", Center("ab", 5))
	assert.Equal(t, "abcdef", Center("abcdef", 3))
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	assert.Len(t, got, 20)
	assert.True(t, strings.HasPrefix(got, "left"))
	assert.True(t, strings.HasSuffix(got, "right"))

	assert.Equal(t, "left right", Row("left", "right", 5), "minimum gap of one")
}

func TestWrap(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	lines := Wrap(text, 10, 0)
	assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, lines)

	clipped := Wrap(text, 10, 2)
	assert.Equal(t, []string{"the quick", "brown fox…"}, clipped)

	assert.Nil(t, Wrap("", 10, 0))
	assert.Nil(t, Wrap(text, 0, 0))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "──────────", Separator(10))
	assert.Empty(t, Separator(-1))
}
