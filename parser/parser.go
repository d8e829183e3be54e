package parser

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// PlainText strips markup from an HTML fragment and returns the visible
// text, line-joined with single spaces.
func PlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return strings.TrimSpace(htmlStr)
	}

	var parts []string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return strings.Join(parts, " ")
}

// ExtractTextFromHTMLWithReadability extracts the readable article text
// from a full HTML document. Used for imported news items whose feeds
// ship full pages instead of clean summaries.
func ExtractTextFromHTMLWithReadability(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return ""
	}
	return article.TextContent
}

// CountLinks counts anchor tags with an href in an HTML fragment.
// Feeds the link-density spam signal.
func CountLinks(htmlStr string) int {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return 0
	}

	count := 0
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					count++
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return count
}

// Excerpt returns plain text truncated to max runes on a rune boundary.
func Excerpt(htmlStr string, max int) string {
	text := PlainText(htmlStr)
	rs := []rune(text)
	if len(rs) <= max {
		return text
	}
	return strings.TrimSpace(string(rs[:max])) + "…"
}
