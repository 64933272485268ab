package main

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

var ErrNothingImported = errors.New("no valid colors found in the document")

// ImportHistoryHTML collects the color code of every table body row in an
// exported history page. Rows whose code does not look like rgba() are
// skipped.
func ImportHistoryHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse history document")
	}

	var colors []string
	for _, tbody := range findAll(doc, "tbody") {
		for _, tr := range findAll(tbody, "tr") {
			cell := findClass(tr, "code")
			if cell == nil {
				continue
			}
			code := strings.TrimSpace(textContent(cell))
			if code != "" && LooksLikeRGBA(code) {
				colors = append(colors, code)
			}
		}
	}
	if len(colors) == 0 {
		return nil, ErrNothingImported
	}
	return colors, nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == tag {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, f := range strings.Fields(attr.Val) {
			if f == class {
				return true
			}
		}
	}
	return false
}

func findClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			return c
		}
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
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
	return b.String()
}

// importHistoryFile reads path and merges its colors into the store.
func importHistoryFile(store *Store, path string) (int, error) {
	file, err := openFile(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	colors, err := ImportHistoryHTML(file)
	if err != nil {
		return 0, err
	}
	return store.ImportHistory(colors), nil
}
