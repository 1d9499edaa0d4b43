package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true)

	warnBannerStyle = lipgloss.NewStyle().
			Background(colorYellow).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
			Bold(true).
			Padding(0, 1)
)

// Field styles.
var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true)

	fieldDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	requiredMarkStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(colorCyan).
				Bold(true)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	suggestionCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	authorChipStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)

// Attachment list styles.
var (
	attachmentStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	stagedMarkStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)
)

// Schema list styles.
var (
	schemaCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	schemaTypeStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)
)

// Key hint styles for the status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
