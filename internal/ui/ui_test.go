package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.True(t, strings.HasSuffix(ProgressBar(0, 0, 10), "0%"))
	assert.True(t, strings.HasSuffix(ProgressBar(3, 3, 10), "100%"))
}

func TestPanelStringFramesAllLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	got := PanelString([]string{"short", "a longer line"})
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+"))
	assert.Equal(t, "| short         |", lines[1])
	assert.Equal(t, "| a longer line |", lines[2])
	// every row has the same visible width
	for _, ln := range lines[1:] {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(ln)))
	}
}

func TestCDisabled(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	assert.Equal(t, "plain", C(fgRed, "plain"))
}

func TestCForced(t *testing.T) {
	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
}
