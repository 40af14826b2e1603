package locator

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<html><body>
<div id="editor"><div><button> Python3 </button></div><div>other</div></div>
<div class="view-lines">
  <div class="view-line">a</div>
  <div class="view-line extra">b</div>
</div>
<p class="view-line-number">1</p>
<section><span class="item">x</span><span class="item">y</span></section>
</body></html>`

func loadDoc(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestAll(t *testing.T) {
	doc := loadDoc(t, fixture)
	loc := New(nil)

	tests := []struct {
		name string
		hint string
		want []string
	}{
		{name: "css class", hint: ".view-line", want: []string{"a", "b"}},
		{name: "css child combinator", hint: "#editor > div:first-child button", want: []string{" Python3 "}},
		{name: "xpath prefix", hint: "xpath://span[@class='item']", want: []string{"x", "y"}},
		{name: "bare xpath", hint: "//section/span", want: []string{"x", "y"}},
		{name: "no match", hint: ".missing", want: nil},
		{name: "invalid css", hint: "div[[", want: nil},
		{name: "invalid xpath", hint: "//div[", want: nil},
		{name: "empty hint", hint: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := loc.All(doc.Selection, tt.hint)
			var texts []string
			got.Each(func(_ int, s *goquery.Selection) {
				texts = append(texts, s.Text())
			})
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestAll_RestrictsToRoot(t *testing.T) {
	doc := loadDoc(t, fixture)
	loc := New(nil)

	section := doc.Find("section")
	require.Equal(t, 1, section.Length())

	assert.Equal(t, 0, loc.All(section, ".view-line").Length())
	assert.Equal(t, 0, loc.All(section, "//div[@class='view-line']").Length())
	assert.Equal(t, 2, loc.All(section, "//span").Length())
}

func TestFirst(t *testing.T) {
	doc := loadDoc(t, fixture)
	loc := New(nil)

	s, ok := loc.First(doc.Selection, ".view-line")
	require.True(t, ok)
	assert.Equal(t, "a", s.Text())

	_, ok = loc.First(doc.Selection, ".nope")
	assert.False(t, ok)
}

func TestByClass(t *testing.T) {
	doc := loadDoc(t, fixture)
	loc := New(nil)

	// view-line-number and view-lines must not match the view-line token
	assert.Equal(t, 2, loc.ByClass(doc.Selection, "view-line").Length())
	assert.Equal(t, 1, loc.ByClass(doc.Selection, "extra").Length())
	assert.Equal(t, 0, loc.ByClass(doc.Selection, "view").Length())
	assert.Equal(t, 0, loc.ByClass(doc.Selection, "").Length())
	assert.Equal(t, 0, loc.ByClass(doc.Selection, "view-line extra").Length())

	s, ok := loc.FirstByClass(doc.Selection, "view-lines")
	require.True(t, ok)
	assert.Equal(t, 2, s.Children().Length())
}

func TestNilRoot(t *testing.T) {
	loc := New(nil)

	assert.Equal(t, 0, loc.All(nil, "div").Length())
	assert.Equal(t, 0, loc.ByClass(nil, "div").Length())
	_, ok := loc.First(nil, "div")
	assert.False(t, ok)
}

func TestCompileCache(t *testing.T) {
	doc := loadDoc(t, fixture)
	loc := New(nil)

	for range 3 {
		assert.Equal(t, 2, loc.All(doc.Selection, ".view-line").Length())
		assert.Equal(t, 0, loc.All(doc.Selection, "div[[").Length())
	}

	cached, ok := loc.cache.Load(".view-line")
	require.True(t, ok)
	assert.NotNil(t, cached)
}
