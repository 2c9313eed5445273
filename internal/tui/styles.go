package tui

import "github.com/charmbracelet/lipgloss"

// Spacing scale
const (
	spaceXS = 1
	spaceSM = 2
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	colorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// State Colors
	colorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	colorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	colorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	colorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	colorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	colorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	colorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	colorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	colorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	// Text Colors
	colorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	colorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	colorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	colorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
)

// Component Styles
var (
	appStyle = lipgloss.NewStyle().Padding(0, spaceXS)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorTextSecondary).
			Padding(1, spaceSM)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Background(colorSurface).
			Foreground(colorText).
			Padding(0, spaceSM)

	textSecondaryStyle = lipgloss.NewStyle().
				Foreground(colorTextSecondary)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	// Panel Styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	panelFocusedStyle = panelStyle.Copy().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorBorderFocus)

	logPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Foreground(colorText)

	// Input Styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, spaceXS)

	inputFocusedStyle = inputStyle.Copy().
				BorderForeground(colorBorderFocus)

	// Notification banner
	notificationStyle = lipgloss.NewStyle().
				Bold(true).
				Background(colorWarning).
				Foreground(colorBackground).
				Padding(0, spaceSM)

	// Status Bar Styles
	statusBarStyle = lipgloss.NewStyle().
			Background(colorSurfaceAlt).
			Foreground(colorText).
			Padding(0, spaceSM).
			Height(1)

	statusBarSuccessStyle = statusBarStyle.Copy().
				Background(colorSuccess).
				Foreground(colorBackground)

	statusBarErrorStyle = statusBarStyle.Copy().
				Background(colorError).
				Foreground(colorBackground)

	statusBarWarningStyle = statusBarStyle.Copy().
				Background(colorWarning).
				Foreground(colorBackground)

	statusBarInfoStyle = statusBarStyle.Copy().
				Background(colorInfo).
				Foreground(colorBackground)

	// Help overlay styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(colorText)

	centeredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(colorBorder).
					Background(colorBackgroundOverlay).
					Foreground(colorText).
					Padding(1, 2)
)

// Log level styles
var (
	logInfoStyle  = lipgloss.NewStyle().Foreground(colorText)
	logWarnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	logErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	logDebugStyle = lipgloss.NewStyle().Foreground(colorTextMuted).Italic(true)
)
