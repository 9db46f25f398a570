package validation

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeValidCedula builds a valid 11-digit cedula from a 10-digit prefix by
// solving for the check digit (weight 1 at the last position).
func makeValidCedula(prefix [10]int) string {
	multipliers := [10]int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2}
	total := 0
	for i, d := range prefix {
		p := d * multipliers[i]
		if p < 10 {
			total += p
		} else {
			total += p/10 + p%10
		}
	}
	check := (10 - total%10) % 10

	var b strings.Builder
	for _, d := range prefix {
		fmt.Fprintf(&b, "%d", d)
	}
	fmt.Fprintf(&b, "%d", check)
	return b.String()
}

func TestValidateCedula(t *testing.T) {
	tests := []struct {
		name   string
		cedula string
		want   bool
	}{
		{"empty", "", false},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"non numeric", "0011234567a", false},
		{"known valid", "00113918205", true},
		{"known valid with dashes", "001-1391820-5", true},
		{"known valid with spaces", "001 1391820 5", true},
		{"checksum off by one", "00113918206", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCedula(tt.cedula))
		})
	}
}

func TestValidateCedulaRandomValidAndMutated(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var prefix [10]int
		for j := range prefix {
			prefix[j] = rng.Intn(10)
		}
		cedula := makeValidCedula(prefix)
		require.True(t, ValidateCedula(cedula), "generated cedula %s should be valid", cedula)

		// Any single-digit mutation must break the checksum: both weight-1
		// and weight-2 positions map distinct digits to distinct residues
		// mod 10.
		pos := rng.Intn(11)
		old := cedula[pos] - '0'
		replacement := byte((int(old) + 1 + rng.Intn(9)) % 10)
		mutated := cedula[:pos] + string('0'+replacement) + cedula[pos+1:]
		assert.False(t, ValidateCedula(mutated),
			"mutation of %s at position %d to %c should be invalid", cedula, pos, '0'+replacement)
	}
}

func TestFormatCedula(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"partial short", "12", "12"},
		{"partial mid", "12345", "123-45"},
		{"full digits", "00113918205", "001-1391820-5"},
		{"already formatted", "001-1391820-5", "001-1391820-5"},
		{"extraneous characters", "a001b1391820c5d", "001-1391820-5"},
		{"overflow truncated", "001139182059999", "001-1391820-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCedula(tt.raw))
		})
	}
}

func TestFormatCedulaIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		var b strings.Builder
		for j := 0; j < rng.Intn(20); j++ {
			fmt.Fprintf(&b, "%d", rng.Intn(10))
		}
		once := FormatCedula(b.String())
		assert.Equal(t, once, FormatCedula(once))

		digits := strings.Count(once, "0") + strings.Count(once, "1") + strings.Count(once, "2") +
			strings.Count(once, "3") + strings.Count(once, "4") + strings.Count(once, "5") +
			strings.Count(once, "6") + strings.Count(once, "7") + strings.Count(once, "8") +
			strings.Count(once, "9")
		assert.LessOrEqual(t, digits, 11)
	}
}
