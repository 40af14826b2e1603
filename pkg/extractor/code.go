package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/algosensei/models"
)

// UserCode reads the editor content and the selected language.
func (e *Extractor) UserCode(root *goquery.Selection) models.CodeSnapshot {
	language := e.language(root)

	editor, ok := e.loc.First(root, e.sel.CodeEditor)
	if !ok {
		return models.CodeSnapshot{Language: language, Error: ErrEditorNotFound}
	}

	container, ok := e.loc.First(editor, e.sel.ViewLines)
	if !ok {
		return models.CodeSnapshot{Language: language, Error: ErrLinesNotFound}
	}

	var lines []string
	e.loc.All(container, e.sel.ViewLine).Each(func(_ int, line *goquery.Selection) {
		lines = append(lines, renderedText(line))
	})

	return models.CodeSnapshot{
		Code:     strings.Join(lines, "\n"),
		Language: language,
	}
}

func (e *Extractor) language(root *goquery.Selection) string {
	header, ok := e.loc.First(root, e.sel.EditorHeader)
	if !ok {
		return ""
	}
	button, ok := e.loc.First(header, e.sel.LanguageButton)
	if !ok {
		return ""
	}
	return strings.TrimSpace(renderedText(button))
}
