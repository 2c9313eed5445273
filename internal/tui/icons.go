package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconBell   = "🔔" // U+1F514
	IconScroll = "📜" // U+1F4DC
	IconGear   = "⚙" // U+2699 without VS16
)

// SafeIcon wraps an icon with proper spacing to prevent rendering issues.
// Wide glyphs get an extra trailing space so they never swallow the next
// character in terminals that render them double width.
func SafeIcon(icon string) string {
	w := runewidth.StringWidth(icon)
	spaces := 1
	if w >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly.
func IconText(icon string, text string) string {
	return fmt.Sprintf("%s%s", SafeIcon(icon), text)
}
