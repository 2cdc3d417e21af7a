// Package render writes extracted articles and search results to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"wiki/article"
	"wiki/search"
	"wiki/theme"
)

// Banner fill characters and minimum run lengths on each side of the label.
const (
	sectionFill = '='
	sectionSide = 10
	subFill     = '-'
	subSide     = 5
	bullet      = " * "
)

// Options configures layout.
type Options struct {
	Width int  // display width in cells, 0 disables wrapping and widening
	Wrap  bool // word-wrap paragraphs and list items to Width
}

// Renderer writes styled lines to an output stream.
type Renderer struct {
	w     io.Writer
	s     theme.Styles
	width int
	wrap  bool
}

// New creates a renderer writing to w with the given styles.
func New(w io.Writer, s theme.Styles, o Options) *Renderer {
	return &Renderer{w: w, s: s, width: o.Width, wrap: o.Wrap && o.Width > 0}
}

// Banner centres text in a run of fill characters. Each side gets at least
// side characters, more when width leaves room.
func Banner(text string, fill rune, side, width int) string {
	label := " " + text + " "
	if width > 0 {
		if pad := (width - ansi.PrintableRuneWidth(label)) / 2; pad > side {
			side = pad
		}
	}
	run := strings.Repeat(string(fill), side)
	return run + label + run
}

// Article prints the infobox, the summary banner, the body items and the
// source address. The address line is printed even when the body is empty.
func (r *Renderer) Article(a *article.Article) {
	for _, row := range a.Infobox {
		r.line(r.s.Bold.Render(row.Header) + ": " + row.Value)
	}

	r.line(r.s.Banner.Render(Banner("Summary", sectionFill, sectionSide, r.width)))

	for _, item := range a.Items {
		switch item.Kind {
		case article.KindHeading:
			if item.Level == 2 {
				r.line(r.s.Banner.Render(Banner(item.Text, sectionFill, sectionSide, r.width)))
			} else {
				r.line(r.s.Subbanner.Render(Banner(item.Text, subFill, subSide, 0)))
			}
		case article.KindListItem:
			r.line(bullet + r.wrapText(item.Text, len(bullet)))
		case article.KindParagraph:
			r.line(r.wrapText(item.Text, 0))
		}
	}

	r.line(r.s.Link.Render("Read more: " + a.URL))
}

// Results prints the numbered candidate list.
func (r *Renderer) Results(res *search.Results) {
	r.line(`Here are the results for: "` + res.Query + `"`)
	if res.TotalFound > len(res.Results) {
		r.line(r.s.Info.Render(fmt.Sprintf("Showing %d of %d results", len(res.Results), res.TotalFound)))
	}
	for _, it := range res.Results {
		title := r.s.Title.Bold(true).Render(it.Title)
		r.line(r.s.Bold.Render(fmt.Sprintf("%d. ", it.Rank)) + title + " - " + it.Snippet)
		r.line("")
	}
}

// Prompt prints label without a trailing newline.
func (r *Renderer) Prompt(label string) {
	fmt.Fprint(r.w, label)
}

// Error prints a user-facing failure message.
func (r *Renderer) Error(msg string) {
	r.line(r.s.Error.Render(msg))
}

// Info prints a user-facing notice.
func (r *Renderer) Info(msg string) {
	r.line(r.s.Info.Render(msg))
}

func (r *Renderer) line(s string) {
	fmt.Fprintln(r.w, s)
}

// wrapText wraps s to the display width minus indent, indenting
// continuation lines by the same amount.
func (r *Renderer) wrapText(s string, indent int) string {
	if !r.wrap || r.width-indent < 10 {
		return s
	}
	wrapped := wordwrap.String(s, r.width-indent)
	if indent == 0 {
		return wrapped
	}
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}
