package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/algosensei/models"
)

func TestUserCode(t *testing.T) {
	const header = `<div id="editor"><div><button> C++ </button></div></div>`

	tests := []struct {
		name string
		html string
		want models.CodeSnapshot
	}{
		{
			name: "editor missing",
			html: header,
			want: models.CodeSnapshot{Language: "C++", Error: ErrEditorNotFound},
		},
		{
			name: "editor and language missing",
			html: `<p>nothing</p>`,
			want: models.CodeSnapshot{Error: ErrEditorNotFound},
		},
		{
			name: "line container missing",
			html: header + `<div data-track-load="code_editor"><div class="view-line">a</div></div>`,
			want: models.CodeSnapshot{Language: "C++", Error: ErrLinesNotFound},
		},
		{
			name: "lines joined with blank line kept",
			html: header + `<div data-track-load="code_editor"><div class="view-lines">
				<div class="view-line">a</div>
				<div class="view-line"></div>
				<div class="view-line">b</div>
			</div></div>`,
			want: models.CodeSnapshot{Code: "a\n\nb", Language: "C++"},
		},
		{
			name: "empty line container",
			html: `<div data-track-load="code_editor"><div class="view-lines"></div></div>`,
			want: models.CodeSnapshot{},
		},
		{
			name: "language button outside first header child ignored",
			html: `<div id="editor"><div><span>no button</span></div><div><button>Java</button></div></div>
			<div data-track-load="code_editor"><div class="view-lines"><div class="view-line">x</div></div></div>`,
			want: models.CodeSnapshot{Code: "x"},
		},
	}

	ex := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.UserCode(loadHTML(t, tt.html))
			assert.Equal(t, tt.want, got)
			if got.Error != "" {
				assert.Empty(t, got.Code)
			}
		})
	}
}

func TestUserCode_Fixture(t *testing.T) {
	root := loadFixture(t, "problem.html")
	ex := Default()

	got := ex.UserCode(root)

	assert.Equal(t, models.CodeSnapshot{
		Code:     "class Solution:\n    def twoSum(self):\n\n        return []",
		Language: "Python3",
	}, got)
	assert.Equal(t, got, ex.UserCode(root))
}

func TestUserCode_NonBreakingSpaces(t *testing.T) {
	root := loadHTML(t, `<div data-track-load="code_editor"><div class="view-lines">
		<div class="view-line"><span>if&nbsp;x:</span></div>
		<div class="view-line"><span>&nbsp;&nbsp;&nbsp;&nbsp;return&nbsp;x</span></div>
	</div></div>`)

	got := Default().UserCode(root)

	assert.Equal(t, "if x:\n    return x", got.Code)
	assert.NotContains(t, got.Code, "\u00a0")
}
