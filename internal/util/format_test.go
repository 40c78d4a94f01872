package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDamage(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "zero",
			input:    0,
			expected: "0",
		},
		{
			name:     "fraction floors",
			input:    12.9,
			expected: "12",
		},
		{
			name:     "hundreds",
			input:    999,
			expected: "999",
		},
		{
			name:     "just under a thousand",
			input:    999.99,
			expected: "999",
		},
		{
			name:     "exactly 1000",
			input:    1000,
			expected: "1K",
		},
		{
			name:     "thousands truncate",
			input:    1500,
			expected: "1K",
		},
		{
			name:     "hundreds of thousands",
			input:    999_999,
			expected: "999K",
		},
		{
			name:     "exactly 1 million",
			input:    1_000_000,
			expected: "1.0M",
		},
		{
			name:     "millions",
			input:    1_500_000,
			expected: "1.5M",
		},
		{
			name:     "hundreds of millions",
			input:    999_900_000,
			expected: "999.9M",
		},
		{
			name:     "exactly 1 billion uses whole millions",
			input:    1_000_000_000,
			expected: "1000M",
		},
		{
			name:     "billions",
			input:    2_000_000_000,
			expected: "2000M",
		},
		{
			name:     "just under 100G",
			input:    99_999_000_000,
			expected: "99999M",
		},
		{
			name:     "exactly 100G",
			input:    100_000_000_000,
			expected: "100.0G",
		},
		{
			name:     "hundreds of billions",
			input:    150_000_000_000,
			expected: "150.0G",
		},
		{
			name:     "negative mirrors positive",
			input:    -1500,
			expected: "-1K",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDamage(tt.input))
		})
	}
}

func TestFormatDamageNonFinite(t *testing.T) {
	assert.Equal(t, "NaN", FormatDamage(math.NaN()))
	assert.Equal(t, "+Inf", FormatDamage(math.Inf(1)))
}

func TestFormatFixed2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"small", 12.5, "12.50"},
		{"grouped", 1234567.891, "1,234,567.89"},
		{"zero", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFixed2(tt.input))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "42.5%", FormatPercentage(42.46))
	assert.Equal(t, "0.0%", FormatPercentage(0))
}
