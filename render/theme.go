package render

import "github.com/charmbracelet/lipgloss"

// Palette colours.
const (
	ColorBackground = lipgloss.Color("#222222")
	ColorForeground = lipgloss.Color("#e5e5e5")
	ColorHighlight  = lipgloss.Color("#fca311")
	ColorLowlight   = lipgloss.Color("#999999")
	ColorAlert      = lipgloss.Color("#ff4136")
)

// Theme holds the styles used by every renderer in this package.
type Theme struct {
	Root   lipgloss.Style // the root cell of a necklace
	Member lipgloss.Style // other scale members
	Rest   lipgloss.Style // pitch classes outside the scale
	Badge  lipgloss.Style // class markers in tables
	Frame  lipgloss.Style // bordered boxes
	Dim    lipgloss.Style // indices and secondary text
}

// cellWidth is wide enough for a two-rune name with a space either side.
const cellWidth = 4

// DefaultTheme returns the orange-on-grey theme.
func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return Theme{
		Root:   cell.Foreground(ColorHighlight).Bold(true).Underline(true),
		Member: cell.Foreground(ColorForeground),
		Rest:   cell.Foreground(ColorLowlight),
		Badge:  lipgloss.NewStyle().Foreground(ColorAlert),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorLowlight).
			Padding(0, 1),
		Dim: lipgloss.NewStyle().Foreground(ColorLowlight),
	}
}

// PlainTheme returns a theme without colours, with the same layout as
// DefaultTheme.
func PlainTheme() Theme {
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return Theme{
		Root:   cell,
		Member: cell,
		Rest:   cell,
		Badge:  lipgloss.NewStyle(),
		Frame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Dim:    lipgloss.NewStyle(),
	}
}
