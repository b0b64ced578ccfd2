package webapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"golang.org/x/net/html"

	"github.com/workbook-dev/workbook/labkit/lab"
	"github.com/workbook-dev/workbook/labkit/report"
)

// quotesPage is the page the service serves at /quotes, shaped like the
// classic scraping playgrounds: quote blocks with tag links, plus a table.
const quotesPage = `<!DOCTYPE html>
<html>
<head><title>Workbook Quotes</title></head>
<body>
<h1>Quotes worth keeping</h1>
<div class="quote">
  <span class="text">Simplicity is the soul of efficiency.</span>
  <small class="author">Austin Freeman</small>
  <a class="tag" href="/tag/design">design</a>
  <a class="tag" href="/tag/simplicity">simplicity</a>
</div>
<div class="quote">
  <span class="text">First, solve the problem. Then, write the code.</span>
  <small class="author">John Johnson</small>
  <a class="tag" href="/tag/craft">craft</a>
</div>
<div class="quote">
  <span class="text">Clear is better than clever.</span>
  <small class="author">Rob Pike</small>
  <a class="tag" href="/tag/go">go</a>
  <a class="tag" href="/tag/proverbs">proverbs</a>
</div>
<table id="readings">
  <tr><th>book</th><th>authors</th><th>year</th></tr>
  <tr><td>The Go Programming Language</td><td>Donovan &amp; Kernighan</td><td>2015</td></tr>
  <tr><td>The Practice of Programming</td><td>Kernighan &amp; Pike</td><td>1999</td></tr>
  <tr><td>The Pragmatic Programmer</td><td>Hunt &amp; Thomas</td><td>1999</td></tr>
</table>
<p>More at <a href="/notes">the notes API</a> and <a href="https://go.dev/doc">go.dev/doc</a>.</p>
</body>
</html>
`

func (s *noteServer) handleQuotesPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, quotesPage)
}

// findAll returns every element under n with the given tag, in document
// order, n included.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// attr returns the value of the named attribute on n, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasClass reports whether n lists class among its CSS classes.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// textOf returns the trimmed text content under n, entities decoded.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// pageTitle returns the document's <title> text.
func pageTitle(doc *html.Node) string {
	titles := findAll(doc, "title")
	if len(titles) == 0 {
		return ""
	}
	return textOf(titles[0])
}

// pageLinks returns every href in document order.
func pageLinks(doc *html.Node) []string {
	var hrefs []string
	for _, a := range findAll(doc, "a") {
		if href := attr(a, "href"); href != "" {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

// quote is one scraped quote block.
type quote struct {
	Text   string
	Author string
	Tags   []string
}

// scrapeQuotes pulls the quote blocks out of the parsed page.
func scrapeQuotes(doc *html.Node) []quote {
	var out []quote
	for _, div := range findAll(doc, "div") {
		if !hasClass(div, "quote") {
			continue
		}
		var q quote
		for _, span := range findAll(div, "span") {
			if hasClass(span, "text") {
				q.Text = textOf(span)
				break
			}
		}
		for _, small := range findAll(div, "small") {
			if hasClass(small, "author") {
				q.Author = textOf(small)
				break
			}
		}
		for _, a := range findAll(div, "a") {
			if hasClass(a, "tag") {
				q.Tags = append(q.Tags, textOf(a))
			}
		}
		out = append(out, q)
	}
	return out
}

// tableRows returns the td cell texts of each data row of the first
// table, skipping the th header row.
func tableRows(doc *html.Node) [][]string {
	tables := findAll(doc, "table")
	if len(tables) == 0 {
		return nil
	}
	var rows [][]string
	for _, tr := range findAll(tables[0], "tr") {
		var cells []string
		for _, td := range findAll(tr, "td") {
			cells = append(cells, textOf(td))
		}
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}
	return rows
}

func runScrape(ctx context.Context, env *lab.Env) error {
	p := report.New(env.Out)

	srv := httptest.NewServer(newNoteServer().routes())
	defer srv.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/quotes", nil)
	if err != nil {
		return err
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		return fmt.Errorf("fetching quotes page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return fmt.Errorf("parsing quotes page: %w", err)
	}

	p.Section("The page itself")
	p.KV("status", "%d", resp.StatusCode)
	p.KV("title", "%s", pageTitle(doc))

	p.Section("Quote blocks")
	for _, q := range scrapeQuotes(doc) {
		p.Printf("  %q\n", q.Text)
		p.Printf("    - %s  [%s]\n", q.Author, strings.Join(q.Tags, ", "))
	}

	p.Section("Table rows")
	p.Table([]string{"book", "authors", "year"}, tableRows(doc))

	p.Section("Every link on the page")
	for _, href := range pageLinks(doc) {
		p.Printf("  %s\n", href)
	}

	return nil
}
