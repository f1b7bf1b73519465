package helper

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "GABC...VABC", ShortAddress("GABCDEFGHIJKLMNOPQRSTUVWXYZ234567ABCDEFGHIJKLMNOPQRSTUVABC"))
	assert.Equal(t, "GABC", ShortAddress("GABC"))
	assert.Equal(t, "", ShortAddress(""))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "123.45", FormatBalance("123.4500000"))
	assert.Equal(t, "0.00", FormatBalance("0"))
	assert.Equal(t, "10000.00", FormatBalance("10000"))
	assert.Equal(t, "0.00", FormatBalance("not-a-number"))
}

func TestTruncateBytes(t *testing.T) {
	assert.Equal(t, "abc", TruncateBytes("abc", 5))
	assert.Equal(t, "abcde", TruncateBytes("abcdefgh", 5))
	assert.Equal(t, "", TruncateBytes("", 5))

	// Never split a multi-byte rune: back off to the previous boundary.
	got := TruncateBytes("ab日本語", 4) // "日" starts at byte 2 and is 3 bytes wide
	assert.Equal(t, "ab", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ab日", TruncateBytes("ab日本語", 5))
	assert.Equal(t, "", TruncateBytes("日本語", 2))
}
