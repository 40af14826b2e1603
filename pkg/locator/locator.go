// Package locator finds elements in a page snapshot from structural hints.
//
// Every lookup is optional: a missing element, a nil root or a hint that
// does not compile all produce an empty selection, never an error.
package locator

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

const xpathPrefix = "xpath:"

// Locator resolves hints against a root selection. Compiled CSS selectors
// are cached, so one Locator can be shared across requests.
type Locator struct {
	cache  sync.Map // hint -> cascadia.Selector
	logger *slog.Logger
}

// New creates a Locator. A nil logger discards debug output.
func New(logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Locator{logger: logger}
}

// All returns every element under root matching hint, in document order.
func (l *Locator) All(root *goquery.Selection, hint string) *goquery.Selection {
	if root == nil {
		return emptySelection()
	}
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return root.FindNodes()
	}

	if expr, ok := xpathExpr(hint); ok {
		return l.xpath(root, expr)
	}

	sel, ok := l.compile(hint)
	if !ok {
		return root.FindNodes()
	}
	return root.FindMatcher(sel)
}

// First returns the first element under root matching hint.
func (l *Locator) First(root *goquery.Selection, hint string) (*goquery.Selection, bool) {
	return first(l.All(root, hint))
}

// ByClass returns every element under root whose class attribute contains
// token as a whole word.
func (l *Locator) ByClass(root *goquery.Selection, token string) *goquery.Selection {
	if root == nil {
		return emptySelection()
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t\n") {
		return root.FindNodes()
	}
	return root.FindMatcher(classMatcher(token))
}

// FirstByClass returns the first element under root carrying class token.
func (l *Locator) FirstByClass(root *goquery.Selection, token string) (*goquery.Selection, bool) {
	return first(l.ByClass(root, token))
}

func (l *Locator) compile(hint string) (cascadia.Selector, bool) {
	if cached, ok := l.cache.Load(hint); ok {
		sel, valid := cached.(cascadia.Selector)
		return sel, valid
	}

	sel, err := cascadia.Compile(hint)
	if err != nil {
		l.logger.Debug("invalid selector hint", "hint", hint, "error", err)
		// remember the failure so it is only logged once
		l.cache.Store(hint, false)
		return nil, false
	}
	l.cache.Store(hint, sel)
	return sel, true
}

func (l *Locator) xpath(root *goquery.Selection, expr string) *goquery.Selection {
	var found []*html.Node
	for _, n := range root.Nodes {
		nodes, err := htmlquery.QueryAll(n, expr)
		if err != nil {
			l.logger.Debug("invalid xpath hint", "xpath", expr, "error", err)
			return root.FindNodes()
		}
		for _, node := range nodes {
			if node.Type == html.ElementNode {
				found = append(found, node)
			}
		}
	}
	// FindNodes keeps only descendants of root and removes duplicates.
	return root.FindNodes(found...)
}

func xpathExpr(hint string) (string, bool) {
	if rest, ok := strings.CutPrefix(hint, xpathPrefix); ok {
		return strings.TrimSpace(rest), true
	}
	if strings.HasPrefix(hint, "/") || strings.HasPrefix(hint, "(") {
		return hint, true
	}
	return "", false
}

func first(s *goquery.Selection) (*goquery.Selection, bool) {
	if s.Length() == 0 {
		return s, false
	}
	return s.First(), true
}

func emptySelection() *goquery.Selection {
	return &goquery.Selection{}
}

// classMatcher matches elements whose class list contains token.
type classMatcher string

func (m classMatcher) Match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == string(m) {
					return true
				}
			}
		}
	}
	return false
}

func (m classMatcher) MatchAll(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if m.Match(cur) {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (m classMatcher) Filter(nodes []*html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range nodes {
		if m.Match(n) {
			out = append(out, n)
		}
	}
	return out
}
