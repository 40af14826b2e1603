// Package document turns raw page HTML into a queryable snapshot.
package document

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// MaxHTMLSize limits a snapshot to 16MB.
const MaxHTMLSize = 16 * 1024 * 1024

// Page is a parsed snapshot of one browser tab.
type Page struct {
	Doc *goquery.Document
	URL string
}

// Root returns the selection every extractor starts from.
func (p *Page) Root() *goquery.Selection {
	if p == nil || p.Doc == nil {
		return nil
	}
	return p.Doc.Selection
}

// Load reads and parses HTML, converting it to UTF-8 first.
func Load(r io.Reader, rawURL string) (*Page, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxHTMLSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read html: %w", err)
	}
	return LoadBytes(data, rawURL)
}

// LoadString parses an HTML snapshot held in memory.
func LoadString(htmlStr, rawURL string) (*Page, error) {
	return LoadBytes([]byte(htmlStr), rawURL)
}

// LoadBytes parses HTML bytes. rawURL is optional but must parse when set.
func LoadBytes(data []byte, rawURL string) (*Page, error) {
	return LoadResponse(data, rawURL, "")
}

// LoadResponse parses a fetched body. A charset in contentType takes
// precedence over anything declared in the markup.
func LoadResponse(data []byte, rawURL, contentType string) (*Page, error) {
	if len(data) > MaxHTMLSize {
		return nil, fmt.Errorf("html exceeds maximum size of %d bytes", MaxHTMLSize)
	}
	if rawURL != "" {
		if _, err := url.Parse(rawURL); err != nil {
			return nil, fmt.Errorf("invalid page url: %w", err)
		}
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader(data, contentType))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	if rawURL != "" {
		doc.Url, _ = url.Parse(rawURL)
	}
	return &Page{Doc: doc, URL: rawURL}, nil
}

// utf8Reader decodes data using the charset from contentType or the
// markup, or a detected one when nothing is declared.
func utf8Reader(data []byte, contentType string) io.Reader {
	label := detectCharset(data, contentType)
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return bytes.NewReader(data)
	}
	return r
}

var metaCharset = regexp.MustCompile(`(?i)<meta[^>]*charset\s*=\s*["']?\s*[a-z0-9_.:-]+`)

func detectCharset(data []byte, contentType string) string {
	if contentType == "" {
		contentType = "text/html"
	}
	_, name, certain := charset.DetermineEncoding(data, contentType)
	// windows-1252 is also what DetermineEncoding falls back to when neither
	// a BOM, a header, a meta tag nor valid UTF-8 tells it anything.
	if certain || name != "windows-1252" || declaresCharset(data) {
		return name
	}
	result, err := chardet.NewHtmlDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return name
	}
	return strings.ToLower(result.Charset)
}

// declaresCharset reports whether the prescan window holds a meta charset.
func declaresCharset(data []byte) bool {
	if len(data) > 1024 {
		data = data[:1024]
	}
	return metaCharset.Match(data)
}
