// Package article extracts renderable content from Wikipedia article pages.
package article

import (
	"io"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Kind identifies the kind of content item.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindListItem
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list item"
	default:
		return "unknown"
	}
}

// Item is one unit of extracted article content in document order.
type Item struct {
	Kind  Kind
	Level int // 2 or 3 for headings, 0 otherwise
	Text  string
}

// Heading returns a section heading item.
func Heading(level int, text string) Item { return Item{Kind: KindHeading, Level: level, Text: text} }

// Paragraph returns a paragraph item.
func Paragraph(text string) Item { return Item{Kind: KindParagraph, Text: text} }

// ListItem returns a list item.
func ListItem(text string) Item { return Item{Kind: KindListItem, Text: text} }

// InfoboxRow is one header/value pair of the summary table.
type InfoboxRow struct {
	Header string
	Value  string
}

// Article is the extracted content of one page.
type Article struct {
	Title     string
	URL       string // canonical address after redirects
	FetchTime time.Duration
	Infobox   []InfoboxRow
	Items     []Item
}

// Options controls how much of the body is extracted.
type Options struct {
	Full bool // all sections instead of the lead only
}

// Headings that end extraction even in full mode.
var stopHeadings = map[string]bool{
	"Other Uses": true,
	"See also":   true,
	"References": true,
}

var (
	infoboxSelector = cascadia.MustCompile("table.infobox")
	rowSelector     = cascadia.MustCompile("tr")
	contentSelector = cascadia.MustCompile(".mw-content-ltr")
	blockSelector   = cascadia.MustCompile("h2, h3, p, li")
	titleSelector   = cascadia.MustCompile("#firstHeading")
)

// Extract parses an article page. The infobox is read first and removed from
// the tree so the body walk does not repeat its text.
func Extract(r io.Reader, opts Options) (*Article, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing article HTML")
	}
	doc := goquery.NewDocumentFromNode(root)

	a := &Article{
		Title: strings.TrimSpace(doc.FindMatcher(titleSelector).First().Text()),
	}

	if infobox := doc.FindMatcher(infoboxSelector).First(); infobox.Length() > 0 {
		a.Infobox = infoboxRows(infobox)
		infobox.Remove()
	}

	content := doc.FindMatcher(contentSelector).First()
	a.Items = bodyItems(content, opts)
	return a, nil
}

func infoboxRows(infobox *goquery.Selection) []InfoboxRow {
	var rows []InfoboxRow
	infobox.FindMatcher(rowSelector).Each(func(_ int, row *goquery.Selection) {
		th := row.Find("th").First()
		td := row.Find("td").First()
		if th.Length() == 0 || td.Length() == 0 {
			return
		}
		rows = append(rows, InfoboxRow{
			Header: CleanReferences(strings.TrimSpace(th.Text())),
			Value:  CleanReferences(strings.TrimSpace(td.Text())),
		})
	})
	return rows
}

// bodyItems walks headings, paragraphs and list items in document order.
// Lead-only mode stops at the first h2; both modes stop at a terminal heading.
func bodyItems(content *goquery.Selection, opts Options) []Item {
	var items []Item
	content.FindMatcher(blockSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := cleanBlock(s.Text())
		if text == "" {
			return true
		}

		switch goquery.NodeName(s) {
		case "h2":
			if stopHeadings[text] || !opts.Full {
				return false
			}
			items = append(items, Heading(2, text))
		case "h3":
			items = append(items, Heading(3, text))
		case "p":
			items = append(items, Paragraph(text))
		case "li":
			items = append(items, ListItem(text))
		}
		return true
	})
	return items
}
