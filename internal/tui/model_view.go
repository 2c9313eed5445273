package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// composerChromeWidth accounts for the composer border, padding and prompt
// when sizing the text input against the terminal width.
const composerChromeWidth = 8

// render draws the whole board for the current model state.
func render(m *Model) string {
	switch m.CurrentAppMode {
	case ModeQuitting:
		return statusStyle.Render(m.QuittingMessage)
	case ModeHelpOverlay:
		return renderHelpOverlay(m)
	}

	if m.Width == 0 || m.Height == 0 {
		return statusStyle.Render("Initializing... (waiting for window size)")
	}

	contentWidth := m.Width - appStyle.GetHorizontalFrameSize()
	totalAvailableHeight := m.Height - appStyle.GetVerticalFrameSize()

	headerView := renderHeader(m, contentWidth)
	bannerView := renderNotificationBanner(m, contentWidth)
	composerView := renderComposer(m, contentWidth)
	statusBarView := renderStatusBar(m, m.Width)

	fixedHeight := lipgloss.Height(headerView) + lipgloss.Height(composerView) + lipgloss.Height(statusBarView)
	if bannerView != "" {
		fixedHeight += lipgloss.Height(bannerView)
	}

	remaining := totalAvailableHeight - fixedHeight
	if remaining < 0 {
		remaining = 0
	}

	// The activity panel only appears on terminals tall enough to leave the
	// log panel usable.
	logSectionHeight := remaining
	activitySectionHeight := 0
	if m.Height >= minHeightForActivityPanel && remaining > 10 {
		activitySectionHeight = remaining / 3
		if activitySectionHeight > 12 {
			activitySectionHeight = 12
		}
		logSectionHeight = remaining - activitySectionHeight
	}

	logPanelView := renderLogPanel(m, contentWidth, logSectionHeight)

	bodyParts := []string{headerView}
	if bannerView != "" {
		bodyParts = append(bodyParts, bannerView)
	}
	bodyParts = append(bodyParts, logPanelView, composerView)
	if activitySectionHeight > 0 {
		bodyParts = append(bodyParts, renderActivityPanel(m, contentWidth, activitySectionHeight))
	}
	bodyParts = append(bodyParts, statusBarView)

	mainView := lipgloss.JoinVertical(lipgloss.Left, bodyParts...)
	return appStyle.Width(m.Width).Render(mainView)
}

// renderHeader shows the application title and a metrics summary.
func renderHeader(m *Model, width int) string {
	title := titleStyle.Render("Logboard")
	metrics := m.ViewModel.GetMetrics()
	summary := textSecondaryStyle.Render(fmt.Sprintf(
		"%d appends  •  %d notifications  •  %d subscribers",
		metrics.LogAppends, metrics.NotificationsShown, metrics.ActiveSubscriptions,
	))
	return headerStyle.Width(width).Render(title + "  " + summary)
}

// renderNotificationBanner draws the transient notification while the view
// model reports it visible.
func renderNotificationBanner(m *Model, width int) string {
	if !m.NotificationVisible {
		return ""
	}
	return notificationStyle.Width(width).Render(IconText(IconBell, m.NotificationMessage))
}

// renderLogPanel renders the main log details viewport.
func renderLogPanel(m *Model, width, sectionHeight int) string {
	title := "Log Details"
	if m.FocusedPanelKey == LogPaneFocusKey {
		title += "  (↑/↓ scroll  •  y copy  •  esc back)"
	}
	titleView := logPanelTitleStyle.Render(SafeIcon(IconScroll) + title)

	style := panelStyle
	if m.FocusedPanelKey == LogPaneFocusKey {
		style = panelFocusedStyle
	}

	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < 0 {
		innerWidth = 0
	}
	m.LogViewport.Width = innerWidth
	m.LogViewport.Height = sectionHeight - style.GetVerticalFrameSize() - lipgloss.Height(titleView)
	if m.LogViewport.Height < 0 {
		m.LogViewport.Height = 0
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	return style.Copy().Width(innerWidth).Render(content)
}

// renderActivityPanel renders the activity log fed by the logging channel.
func renderActivityPanel(m *Model, width, sectionHeight int) string {
	titleView := logPanelTitleStyle.Render(SafeIcon(IconGear) + "Activity")

	innerWidth := width - panelStyle.GetHorizontalFrameSize()
	if innerWidth < 0 {
		innerWidth = 0
	}
	m.ActivityViewport.Width = innerWidth
	m.ActivityViewport.Height = sectionHeight - panelStyle.GetVerticalFrameSize() - lipgloss.Height(titleView)
	if m.ActivityViewport.Height < 0 {
		m.ActivityViewport.Height = 0
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.ActivityViewport.View())
	return panelStyle.Copy().Width(innerWidth).Render(content)
}

// renderComposer renders the input line for new log entries.
func renderComposer(m *Model, width int) string {
	style := inputStyle
	if m.FocusedPanelKey == ComposerFocusKey {
		style = inputFocusedStyle
	}
	innerWidth := width - style.GetHorizontalFrameSize()
	if innerWidth < 0 {
		innerWidth = 0
	}
	return style.Copy().Width(innerWidth).Render(m.Composer.View())
}

// renderStatusBar builds the bottom status bar with focus-dependent key hints.
func renderStatusBar(m *Model, width int) string {
	var hints string
	if m.FocusedPanelKey == ComposerFocusKey {
		hints = "enter append  •  ctrl+n notify  •  tab log  •  esc quit"
	} else {
		hints = "↑/↓ scroll  •  y copy  •  h help  •  q quit"
	}

	sb := NewStatusBar(width).
		WithLeftText(fmt.Sprintf("%d lines", len(m.LogLines))).
		WithRightText(hints)
	if m.StatusBarMessage != "" {
		sb.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return sb.Render()
}

// renderHelpOverlay draws the keyboard shortcut overlay centered on screen.
func renderHelpOverlay(m *Model) string {
	titleView := helpTitleStyle.Render("KEYBOARD SHORTCUTS")

	helper := m.Help
	helper.ShowAll = true
	body := helper.View(m.Keys)

	hint := dimStyle.Render("press h or esc to close")
	content := lipgloss.JoinVertical(lipgloss.Center, titleView, body, "", hint)
	box := centeredOverlayContainerStyle.Render(content)

	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
