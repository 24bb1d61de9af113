package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber      = lipgloss.Color("#F59E0B")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Amber).
			Padding(0, 1)
)

// Collection marker characters
const (
	FavoriteChar  = "♥"
	WatchlistChar = "+"
)

// Collection marker styles
var (
	FavoriteOnStyle   = lipgloss.NewStyle().Foreground(Red)
	FavoriteOffStyle  = lipgloss.NewStyle().Foreground(DimGray)
	WatchlistOnStyle  = lipgloss.NewStyle().Foreground(Blue)
	WatchlistOffStyle = lipgloss.NewStyle().Foreground(DimGray)
)

// Badge styles for the navigation bar
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(Amber).
			Padding(0, 1).
			Bold(true)

	NavStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Padding(0, 1).
			Bold(true)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Filter input styles
var (
	FilterPromptStyle = lipgloss.NewStyle().Foreground(Amber)
	FilterStyle       = lipgloss.NewStyle().Foreground(White)
)

// Panel styles
var (
	HeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(SlateLight)

	FooterStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(SlateLight)

	DetailStyle = lipgloss.NewStyle().
			Padding(1, 2)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Padding(2, 4)
)

// SpinnerFrames used while catalog requests are in flight
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
