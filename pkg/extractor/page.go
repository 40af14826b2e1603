package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/dtnitsch/algosensei/models"
)

// PageHTML returns the outer HTML of the document element.
func (e *Extractor) PageHTML(root *goquery.Selection) string {
	html, ok := e.loc.First(root, "html")
	if !ok {
		return ""
	}
	out, err := goquery.OuterHtml(html)
	if err != nil {
		return ""
	}
	return out
}

// PageText returns the rendered text of the body.
func (e *Extractor) PageText(root *goquery.Selection) string {
	body, ok := e.loc.First(root, "body")
	if !ok {
		return ""
	}
	return renderedText(body)
}

// PageInfo returns the title, address and meta description of the page.
func (e *Extractor) PageInfo(root *goquery.Selection, pageURL string) models.PageInfo {
	info := models.PageInfo{URL: pageURL}
	if title, ok := e.loc.First(root, "title"); ok {
		// collapsed the way document.title reports it
		info.Title = strings.Join(strings.Fields(title.Text()), " ")
	}
	if meta, ok := e.loc.First(root, e.sel.MetaDescription); ok {
		info.Description = meta.AttrOr("content", "")
	}
	return info
}

// ReadableText runs the page through go-readability and returns only the
// main article text, one paragraph per line.
func (e *Extractor) ReadableText(root *goquery.Selection, pageURL string) (string, error) {
	src := e.PageHTML(root)
	if src == "" {
		return "", fmt.Errorf("page has no document element")
	}

	parsedURL := &url.URL{}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return "", fmt.Errorf("invalid page url: %w", err)
		}
		parsedURL = u
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(src), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}
	return renderedText(doc.Selection), nil
}
