package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/algosensei/models"
)

func TestPageInfo(t *testing.T) {
	root := loadFixture(t, "problem.html")

	got := Default().PageInfo(root, "https://leetcode.com/problems/two-sum/")

	assert.Equal(t, models.PageInfo{
		Title:       "Two Sum - LeetCode",
		URL:         "https://leetcode.com/problems/two-sum/",
		Description: "Given an array of integers nums and an integer target, return indices of the two numbers.",
	}, got)
}

func TestPageInfo_NoMeta(t *testing.T) {
	got := Default().PageInfo(loadHTML(t, `<html><body>x</body></html>`), "")

	assert.Equal(t, models.PageInfo{}, got)
}

func TestPageInfo_TitleWhitespace(t *testing.T) {
	root := loadHTML(t, "<html><head><title>\n   Two  Sum\t - LeetCode \n</title></head><body></body></html>")

	got := Default().PageInfo(root, "")

	assert.Equal(t, "Two Sum - LeetCode", got.Title)
}

func TestPageHTML(t *testing.T) {
	root := loadHTML(t, `<html><head><title>T</title></head><body><p>hi</p></body></html>`)

	got := Default().PageHTML(root)

	assert.Equal(t, `<html><head><title>T</title></head><body><p>hi</p></body></html>`, got)
}

func TestPageText(t *testing.T) {
	root := loadHTML(t, `<html><head><title>T</title><style>p{}</style></head>
	<body><h1>Title</h1><p>first<br>second</p><script>var x = 1;</script><div>a&nbsp;b</div></body></html>`)

	got := Default().PageText(root)

	assert.Equal(t, "Title\nfirst\nsecond\na b", got)
}

func TestReadableText(t *testing.T) {
	para := strings.Repeat("This paragraph describes the problem in enough words for readability to keep it. ", 6)
	root := loadHTML(t, `<html><head><title>Article</title></head><body>
	<nav><a href="/">Home</a><a href="/problems">Problems</a></nav>
	<article><h1>Article</h1><p>`+para+`</p><p>`+para+`</p></article>
	<footer>Copyright</footer>
	</body></html>`)

	got, err := Default().ReadableText(root, "https://example.com/post")

	require.NoError(t, err)
	assert.Contains(t, got, "This paragraph describes the problem")
	assert.NotContains(t, got, "Copyright")
}

func TestReadableText_NoDocument(t *testing.T) {
	_, err := Default().ReadableText(nil, "")
	assert.Error(t, err)
}
