package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderedText approximates what the browser shows for s. Hidden content
// and source indentation are dropped and <br> or block boundaries become
// newlines. Non-breaking spaces come back as plain spaces so copied code
// stays runnable. Falls back to the raw text content when nothing renders.
func renderedText(s *goquery.Selection) string {
	var b strings.Builder
	for i, n := range s.Nodes {
		if i > 0 {
			breakLine(&b)
		}
		if n.Type != html.ElementNode && n.Type != html.DocumentNode {
			writeRendered(&b, n)
			continue
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeRendered(&b, c)
		}
	}
	// block boundaries at the edges are not part of the rendered text
	text := strings.Trim(b.String(), "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	if text == "" {
		return s.Text()
	}
	return text
}

func writeRendered(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// indentation between tags is markup formatting, not content
		if strings.Trim(n.Data, " \t\r\n") == "" && strings.Contains(n.Data, "\n") {
			return
		}
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		}
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		breakLine(b)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeRendered(b, c)
	}
	if block {
		breakLine(b)
	}
}

// breakLine starts a new line unless the builder is empty or already at one.
func breakLine(b *strings.Builder) {
	if b.Len() == 0 {
		return
	}
	if s := b.String(); s[len(s)-1] != '\n' {
		b.WriteByte('\n')
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Dd,
		atom.Div, atom.Dl, atom.Dt, atom.Fieldset, atom.Figcaption, atom.Figure,
		atom.Footer, atom.Form, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5,
		atom.H6, atom.Header, atom.Hr, atom.Li, atom.Main, atom.Nav, atom.Ol,
		atom.P, atom.Pre, atom.Section, atom.Table, atom.Tr, atom.Ul:
		return true
	}
	return false
}

// trimmedText is the whitespace-trimmed text content of s.
func trimmedText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
