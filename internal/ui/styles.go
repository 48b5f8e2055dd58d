package ui

import "github.com/charmbracelet/lipgloss"

// High-contrast palette for dark terminal backgrounds
const (
	ColorWhite = "#FFFFFF"

	ColorGray400 = "#9CA3AF"
	ColorGray500 = "#6B7280"
	ColorGray600 = "#4B5563"
	ColorGray800 = "#1F2937"

	ColorBlue300 = "#93C5FD"
	ColorBlue400 = "#60A5FA"
	ColorBlue500 = "#3B82F6"
	ColorBlue600 = "#2563EB"

	ColorGreen400 = "#4ADE80"

	ColorRed400 = "#F87171"

	ColorYellow400 = "#FACC15"
)

var (
	// TitleStyle - for main headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorBlue500))

	// SuccessStyle - for success messages
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGreen400))

	// ErrorStyle - for error messages
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorRed400))

	// WarningStyle - for warnings
	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorYellow400))

	// DimStyle - for secondary text
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	// StepStyle - for next-step instructions
	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue300))

	// CommandStyle - for CLI commands the user should run
	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorBlue400))
)
