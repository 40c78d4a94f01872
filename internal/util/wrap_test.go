package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		expected string
	}{
		{
			name:     "two words split",
			text:     "Silver Wolf",
			maxWidth: 6,
			expected: "Silver\nWolf",
		},
		{
			name:     "shorter than budget is verbatim",
			text:     "Seele",
			maxWidth: 8,
			expected: "Seele",
		},
		{
			name:     "exactly the budget is verbatim",
			text:     "Dan Heng",
			maxWidth: 8,
			expected: "Dan Heng",
		},
		{
			name:     "overlong single word is not split",
			text:     "Trailblazer",
			maxWidth: 8,
			expected: "Trailblazer",
		},
		{
			name:     "overlong word sits alone between short ones",
			text:     "The Incandescent Knight",
			maxWidth: 8,
			expected: "The\nIncandescent\nKnight",
		},
		{
			name:     "greedy packing",
			text:     "Dan Heng Imbibitor Lunae",
			maxWidth: 10,
			expected: "Dan Heng\nImbibitor\nLunae",
		},
		{
			name:     "empty input",
			text:     "",
			maxWidth: 0,
			expected: "",
		},
		{
			name:     "whitespace only input is returned unchanged",
			text:     "            ",
			maxWidth: 4,
			expected: "            ",
		},
		{
			name:     "collapses runs of whitespace",
			text:     "March   7th  Preservation",
			maxWidth: 12,
			expected: "March 7th\nPreservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapLabel(tt.text, tt.maxWidth))
		})
	}
}

func TestWrapLabelLinesRespectBudget(t *testing.T) {
	text := "a bb ccc dddd eeeee ffffff"
	for width := 3; width <= 12; width++ {
		for _, line := range strings.Split(WrapLabel(text, width), "\n") {
			if !strings.Contains(line, " ") {
				// a lone word may overflow
				continue
			}
			assert.LessOrEqual(t, GetDisplayWidth(line), width, "width %d line %q", width, line)
		}
	}
}

func TestWrapLabelWideRunes(t *testing.T) {
	// each CJK rune occupies two columns
	assert.Equal(t, "银狼 希儿", WrapLabel("银狼 希儿", 9))
	assert.Equal(t, "银狼\n希儿", WrapLabel("银狼 希儿", 6))
}

func TestLabelWidthBudget(t *testing.T) {
	tests := []struct {
		name      string
		available float64
		count     int
		expected  int
	}{
		{"narrow clamps to minimum", 200, 4, 8},
		{"wide clamps to maximum", 2000, 2, 15},
		{"in range", 400, 4, 12},
		{"zero count treated as one", 96, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LabelWidthBudget(tt.available, tt.count))
		})
	}
}
