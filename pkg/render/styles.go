package render

import "github.com/charmbracelet/lipgloss"

var (
	Gold      = lipgloss.Color("#E5A00D")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

var (
	HeadingStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	FocusStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Gold).
			Padding(0, 1)

	ToggleStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Underline(true)

	SectionStyle = lipgloss.NewStyle().
			MarginBottom(1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(0, 1)
)
