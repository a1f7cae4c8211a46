package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the theme colors. Two palettes back the dark-mode
// preference from the config file, toggleable at runtime.
type Palette struct {
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Success  lipgloss.Color
	Danger   lipgloss.Color
	Muted    lipgloss.Color
	Text     lipgloss.Color
	Critical lipgloss.Color
}

var lightPalette = Palette{
	Primary:  lipgloss.Color("63"),  // indigo
	Accent:   lipgloss.Color("135"), // purple
	Success:  lipgloss.Color("42"),
	Danger:   lipgloss.Color("196"),
	Muted:    lipgloss.Color("245"),
	Text:     lipgloss.Color("235"),
	Critical: lipgloss.Color("196"),
}

var darkPalette = Palette{
	Primary:  lipgloss.Color("105"),
	Accent:   lipgloss.Color("141"),
	Success:  lipgloss.Color("48"),
	Danger:   lipgloss.Color("203"),
	Muted:    lipgloss.Color("243"),
	Text:     lipgloss.Color("252"),
	Critical: lipgloss.Color("203"),
}

// Styles bundles the lipgloss styles derived from the active palette.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Box       lipgloss.Style
	ActiveBox lipgloss.Style
	Card      lipgloss.Style
	Score     lipgloss.Style
	Countdown lipgloss.Style
	Critical  lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

func newStyles(p Palette) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Subtitle:  lipgloss.NewStyle().Foreground(p.Muted),
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 2),
		ActiveBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Primary).Padding(0, 2),
		Card:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(p.Accent).Padding(1, 4).Bold(true),
		Score:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Critical:  lipgloss.NewStyle().Foreground(p.Critical).Bold(true).Blink(true),
		Success:   lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Danger:    lipgloss.NewStyle().Foreground(p.Danger),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Error:     lipgloss.NewStyle().Foreground(p.Danger).Bold(true),
		Help:      lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
	}
}
