package extractor

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ProblemSeq yields the problem page as text chunks: description,
// examples and constraints, the editor lines, console data and the error
// panel, in that order. Each section is looked up only when the consumer
// reaches it.
func (e *Extractor) ProblemSeq(root *goquery.Selection) iter.Seq[string] {
	sections := []func(*goquery.Selection) []string{
		e.description,
		e.editorLines,
		e.consoleBlock,
		e.errorBlock,
	}
	return func(yield func(string) bool) {
		for _, section := range sections {
			for _, chunk := range section(root) {
				if !yield(chunk) {
					return
				}
			}
		}
	}
}

// Problem collects ProblemSeq. An unrecognized page gives an empty,
// non-nil slice.
func (e *Extractor) Problem(root *goquery.Selection) []string {
	out := []string{}
	for chunk := range e.ProblemSeq(root) {
		out = append(out, chunk)
	}
	return out
}

func (e *Extractor) description(root *goquery.Selection) []string {
	box, ok := e.loc.FirstByClass(root, e.sel.ProblemClass)
	if !ok {
		return nil
	}

	chunks := []string{ProblemHeader}
	box.Children().Each(func(_ int, child *goquery.Selection) {
		if text := trimmedText(child); text != "" {
			chunks = append(chunks, text)
		}
	})
	return chunks
}

// editorLines keeps one chunk per rendered line, blank lines included.
func (e *Extractor) editorLines(root *goquery.Selection) []string {
	lines := e.loc.ByClass(root, e.sel.ViewLineClass)
	if lines.Length() == 0 {
		return nil
	}

	chunks := make([]string, 0, lines.Length()+1)
	chunks = append(chunks, CodeHeader)
	lines.Each(func(_ int, line *goquery.Selection) {
		chunks = append(chunks, line.Text())
	})
	return chunks
}

func (e *Extractor) consoleBlock(root *goquery.Selection) []string {
	lines := e.Console(root)
	if len(lines) == 0 {
		return nil
	}
	return []string{ConsoleHeader + strings.Join(lines, "\n")}
}

func (e *Extractor) errorBlock(root *goquery.Selection) []string {
	panel, ok := e.loc.First(root, e.sel.ErrorPanel)
	if !ok {
		return nil
	}
	text := trimmedText(panel)
	if text == "" {
		return nil
	}
	return []string{ErrorHeader, text, ErrorInstruction}
}
