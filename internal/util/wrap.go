package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	minLabelWidth = 8
	maxLabelWidth = 15
	// approximate pixel width of one label character
	labelCharPixels = 8.0
)

// WrapLabel greedily word-wraps text so no line exceeds maxWidth display
// columns. Text that already fits, or that has no words, comes back as is.
// A word wider than maxWidth is kept whole on its own line.
func WrapLabel(text string, maxWidth int) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	lines := make([]string, 0, len(words))
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+wordWidth > maxWidth {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	if currentWidth > 0 {
		lines = append(lines, current.String())
	}

	return strings.Join(lines, "\n")
}

// LabelWidthBudget converts the horizontal space available to a bar chart
// into a per-label character budget, clamped to [8, 15].
func LabelWidthBudget(availablePixels float64, count int) int {
	if count < 1 {
		count = 1
	}
	perBar := availablePixels / float64(count) / labelCharPixels
	if perBar < minLabelWidth {
		perBar = minLabelWidth
	}
	if perBar > maxLabelWidth {
		perBar = maxLabelWidth
	}
	return int(perBar)
}
