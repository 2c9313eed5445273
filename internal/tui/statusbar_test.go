package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_MessageOverridesText(t *testing.T) {
	sb := NewStatusBar(40).
		WithLeftText("12 lines").
		WithRightText("q quit").
		WithMessage("Log copied to clipboard", StatusBarSuccess)

	out := sb.Render()

	assert.Contains(t, out, "Log copied to clipboard")
	assert.NotContains(t, out, "12 lines")
}

func TestStatusBar_LeftRightLayout(t *testing.T) {
	sb := NewStatusBar(40).
		WithLeftText("left").
		WithRightText("right")

	out := sb.Render()

	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
	assert.Equal(t, 40, lipgloss.Width(out))
}

func TestStatusBar_ClearMessage(t *testing.T) {
	sb := NewStatusBar(40).
		WithLeftText("left").
		WithMessage("oops", StatusBarError)

	sb.ClearMessage()
	out := sb.Render()

	assert.NotContains(t, out, "oops")
	assert.Contains(t, out, "left")
}

func TestStatusBar_NarrowWidthFallsBackToLeftText(t *testing.T) {
	sb := NewStatusBar(12).
		WithLeftText("a very long left text").
		WithRightText("right side")

	out := sb.Render()

	// Not enough room for both sides, the right text is dropped.
	assert.NotContains(t, out, "right side")
}
