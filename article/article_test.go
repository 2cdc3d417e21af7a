package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki/fetcher"
)

func TestCleanReferences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Water[1][2]", "Water"},
		{"[10] is a citation", " is a citation"},
		{"no markers", "no markers"},
		{"keep [a] and [1a]", "keep [a] and [1a]"},
		{"mid[345]dle", "middle"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanReferences(tt.in), tt.in)
	}
}

func TestCleanEdits(t *testing.T) {
	assert.Equal(t, "History", CleanEdits("History[edit]"))
	assert.Equal(t, "a  b", CleanEdits("a [edit] b"))
	assert.Equal(t, "[Edit]", CleanEdits("[Edit]"))
}

func page(body string) string {
	return `<!DOCTYPE html><html><body>
<h1 id="firstHeading">Test Page</h1>
<div class="mw-content-ltr">` + body + `</div></body></html>`
}

func extract(t *testing.T, body string, full bool) *Article {
	t.Helper()
	a, err := Extract(strings.NewReader(page(body)), Options{Full: full})
	require.NoError(t, err)
	return a
}

func TestExtractStopsAtTerminalHeading(t *testing.T) {
	body := `<p>A</p><h2>Other Uses</h2><p>B</p>`
	assert.Equal(t, []Item{Paragraph("A")}, extract(t, body, false).Items)
	assert.Equal(t, []Item{Paragraph("A")}, extract(t, body, true).Items)
}

func TestExtractLeadAndFull(t *testing.T) {
	body := `<p>A</p><h2>History</h2><p>B</p><h2>See also</h2><p>C</p>`

	assert.Equal(t, []Item{Paragraph("A")}, extract(t, body, false).Items)
	assert.Equal(t, []Item{
		Paragraph("A"),
		Heading(2, "History"),
		Paragraph("B"),
	}, extract(t, body, true).Items)
}

func TestExtractBlocks(t *testing.T) {
	body := `
<p>Lead[1] text.</p>
<p>   </p>
<p>[2]</p>
<h2>Background<span>[edit]</span></h2>
<h3>Early life[edit]</h3>
<ul><li>First[3]</li><li>Second</li></ul>
<h2>References</h2>
<p>never</p>`

	a := extract(t, body, true)
	assert.Equal(t, []Item{
		Paragraph("Lead text."),
		Heading(2, "Background"),
		Heading(3, "Early life"),
		ListItem("First"),
		ListItem("Second"),
	}, a.Items)
	assert.Equal(t, "Test Page", a.Title)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "heading", KindHeading.String())
	assert.Equal(t, "paragraph", KindParagraph.String())
	assert.Equal(t, "list item", KindListItem.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestExtractEmptyHeadingDoesNotStop(t *testing.T) {
	body := `<p>A</p><h2> [edit] </h2><p>B</p>`
	assert.Equal(t, []Item{Paragraph("A"), Paragraph("B")}, extract(t, body, false).Items)
}

func TestExtractInfobox(t *testing.T) {
	body := `
<table class="infobox vcard">
<tr><th colspan="2">Caption only</th></tr>
<tr><th>Born</th><td>1 January 1900[1]</td></tr>
<tr><td>data only</td></tr>
<tr><th>Died</th><td> 2000 </td></tr>
<tr><td><p>Infobox paragraph</p></td></tr>
</table>
<p>Body</p>`

	a := extract(t, body, false)
	assert.Equal(t, []InfoboxRow{
		{Header: "Born", Value: "1 January 1900"},
		{Header: "Died", Value: "2000"},
	}, a.Infobox)
	assert.Equal(t, []Item{Paragraph("Body")}, a.Items)
}

func TestExtractWithoutContainer(t *testing.T) {
	a, err := Extract(strings.NewReader(`<html><body><p>stray</p></body></html>`), Options{})
	require.NoError(t, err)
	assert.Empty(t, a.Items)
	assert.Empty(t, a.Infobox)
}

func TestURL(t *testing.T) {
	u, err := URL(DefaultBaseURL, "Alan Turing")
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Alan_Turing", u)

	u, err = URL("http://127.0.0.1:8080/", "Who?")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/wiki/Who%3F", u)

	u, err = URL(DefaultBaseURL, "Go (game)")
	require.NoError(t, err)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(game)", u)
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/Go", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/wiki/Go_(game)", http.StatusFound)
	})
	mux.HandleFunc("/wiki/Go_(game)", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page(`<p>Board game.</p>`)))
	})
	mux.HandleFunc("/wiki/Broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := fetcher.New(fetcher.Options{}, nil)
	ctx := context.Background()

	a, err := Fetch(ctx, c, srv.URL, "Go", Options{})
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/wiki/Go_(game)", a.URL)
	assert.Positive(t, a.FetchTime)
	assert.Equal(t, []Item{Paragraph("Board game.")}, a.Items)

	_, err = Fetch(ctx, c, srv.URL, "Missing page", Options{})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = Fetch(ctx, c, srv.URL, "Broken", Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
