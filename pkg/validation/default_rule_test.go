package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategory(t *testing.T) {
	assert.NoError(t, ValidateCategory("Live shows"))
	assert.NoError(t, ValidateCategory("Tourism"))
	assert.NoError(t, ValidateCategory("Fever Origin"))
	assert.Error(t, ValidateCategory("Sports"))
	assert.Error(t, ValidateCategory(""))
}

func TestValidatePrice(t *testing.T) {
	for in, want := range map[string]string{
		"Free":  "Free",
		"free":  "Free",
		"":      "Free",
		"25.50": "25.5",
		"0":     "0",
		" 10 ":  "10",
	} {
		got, err := ValidatePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"-1", "ten", "25.5 XLM"} {
		_, err := ValidatePrice(in)
		assert.Error(t, err, in)
	}
}
