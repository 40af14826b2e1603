package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

// loadHTML parses an inline fixture and returns its root selection.
func loadHTML(t *testing.T, src string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc.Selection
}

// loadFixture parses a file under testdata/.
func loadFixture(t *testing.T, name string) *goquery.Selection {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return loadHTML(t, string(data))
}
