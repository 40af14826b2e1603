package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Console reads the console panel: test-case inputs, current and expected
// output, and a note when more than one test case exists. The result is
// never nil.
func (e *Extractor) Console(root *goquery.Selection) []string {
	results := []string{}
	results = append(results, e.testCases(root)...)
	results = append(results, e.outputs(root)...)

	if e.loc.All(root, e.sel.TestCaseButton).Length() > 1 {
		results = append(results, MultipleCasesNote)
	}
	return results
}

// testCases pairs case labels with case inputs by position.
func (e *Extractor) testCases(root *goquery.Selection) []string {
	box, ok := e.loc.First(root, e.sel.TestCaseBox)
	if !ok {
		return nil
	}

	inputs := e.loc.All(box, e.sel.TestCaseInput)
	var lines []string
	e.loc.All(box, e.sel.TestCaseLabel).Each(func(i int, label *goquery.Selection) {
		if i >= inputs.Length() {
			return
		}
		name := trimmedText(label)
		value := trimmedText(inputs.Eq(i))
		if name == "" || value == "" {
			return
		}
		lines = append(lines, name+" "+value)
	})
	return lines
}

// outputs reads every result block. A label mentioning "Output" wins over
// one mentioning "Expected", so "Expected Output" reports as current output.
func (e *Extractor) outputs(root *goquery.Selection) []string {
	var lines []string
	e.loc.All(root, e.sel.ResultBox).Each(func(_ int, box *goquery.Selection) {
		valueSel, ok := e.loc.First(box, e.sel.ResultValue)
		if !ok {
			return
		}
		value := trimmedText(valueSel)
		if value == "" {
			return
		}

		labelSel, ok := e.loc.First(box, e.sel.ResultLabel)
		if !ok {
			return
		}
		label := labelSel.Text()
		switch {
		case strings.Contains(label, "Output"):
			lines = append(lines, "Current Output: "+value)
		case strings.Contains(label, "Expected"):
			lines = append(lines, "Expected Output: "+value)
		}
	})
	return lines
}
