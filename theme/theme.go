// Package theme provides the colour palettes used for terminal output.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the colour palette for rendered output.
// Body text always uses the terminal's own foreground; themes only colour
// banners, titles and feedback lines.
type Theme struct {
	Name string

	Banner     lipgloss.TerminalColor // summary and section banners
	Subbanner  lipgloss.TerminalColor // subsection banners
	Title      lipgloss.TerminalColor // search result titles
	Link       lipgloss.TerminalColor // "Read more" line
	Error      lipgloss.TerminalColor
	Info       lipgloss.TerminalColor
	Monochrome bool // ignore colours, keep bold
}

// Built-in themes
var (
	// Classic uses the 16 ANSI colours, so it follows the terminal's own palette.
	Classic = &Theme{
		Name:      "classic",
		Banner:    lipgloss.Color("6"), // cyan
		Subbanner: lipgloss.Color("5"), // magenta
		Title:     lipgloss.Color("6"),
		Link:      lipgloss.Color("4"), // blue
		Error:     lipgloss.Color("1"), // red
		Info:      lipgloss.Color("2"), // green
	}

	// Dusk adapts between light and dark backgrounds.
	Dusk = &Theme{
		Name:      "dusk",
		Banner:    lipgloss.AdaptiveColor{Light: "#00838f", Dark: "#88c0d0"},
		Subbanner: lipgloss.AdaptiveColor{Light: "#6a1b9a", Dark: "#b48ead"},
		Title:     lipgloss.AdaptiveColor{Light: "#b58900", Dark: "#ebcb8b"},
		Link:      lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#81a1c1"},
		Error:     lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#bf616a"},
		Info:      lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#a3be8c"},
	}

	Mono = &Theme{
		Name:       "mono",
		Monochrome: true,
	}
)

var all = map[string]*Theme{
	Classic.Name: Classic,
	Dusk.Name:    Dusk,
	Mono.Name:    Mono,
}

// ByName looks up a built-in theme.
func ByName(name string) (*Theme, bool) {
	t, ok := all[name]
	return t, ok
}

// Names lists the built-in theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles is the set of styles a renderer draws with.
type Styles struct {
	Bold      lipgloss.Style
	Banner    lipgloss.Style
	Subbanner lipgloss.Style
	Title     lipgloss.Style
	Link      lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles builds the styles of t for output through re. When color is
// false only text attributes are kept.
func NewStyles(t *Theme, re *lipgloss.Renderer, color bool) Styles {
	if !color {
		re.SetColorProfile(termenv.Ascii)
	}
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		s := re.NewStyle()
		if t.Monochrome || c == nil {
			return s
		}
		return s.Foreground(c)
	}
	return Styles{
		Bold:      re.NewStyle().Bold(true),
		Banner:    fg(t.Banner).Bold(true),
		Subbanner: fg(t.Subbanner).Bold(true),
		Title:     fg(t.Title),
		Link:      fg(t.Link),
		Error:     fg(t.Error),
		Info:      fg(t.Info),
	}
}
