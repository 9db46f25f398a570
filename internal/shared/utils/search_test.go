package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldSearchStripsAccents(t *testing.T) {
	assert.Equal(t, "jose", FoldSearch("José"))
	assert.Equal(t, "maria gomez", FoldSearch("María Gómez"))
	assert.Equal(t, "camion", FoldSearch("CAMIÓN"))
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("jose", "José Martínez", "001-1391820-5"))
	assert.True(t, MatchesSearch("José", "jose martinez"))
	assert.True(t, MatchesSearch("1391820", "José Martínez", "001-1391820-5"))
	assert.True(t, MatchesSearch("", "anything"))

	assert.False(t, MatchesSearch("pedro", "José Martínez", "001-1391820-5"))
	assert.False(t, MatchesSearch("jose", ""))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "50.00", FormatCents(5000))
	assert.Equal(t, "1234.56", FormatCents(123456))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "-12.34", FormatCents(-1234))
}
