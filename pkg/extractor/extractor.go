// Package extractor reads problem, console and editor content out of a
// problem-page snapshot.
//
// Extractors never fail: a missing element drops its segment from the
// output. The only user-visible failure is the CodeSnapshot error field.
// Nothing here mutates the page.
package extractor

import (
	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/locator"
)

// Section headers and fixed lines of the problem sequence.
const (
	ProblemHeader     = "\nHeres the description, examples, and constraints for the problem\n"
	CodeHeader        = "\n--- Function Definition and Current Code ---\n"
	ConsoleHeader     = "\n--- Test Cases and Results ---\n"
	ErrorHeader       = "\n--- LeetCode Error Message ---\n"
	ErrorInstruction  = "\nPlease fix the above error in the code."
	MultipleCasesNote = "\nNote: There are multiple test cases available."
)

// Code snapshot error markers.
const (
	ErrEditorNotFound = "Code editor not found"
	ErrLinesNotFound  = "Code lines not found"
)

// Extractor binds a selector set to a locator.
type Extractor struct {
	sel models.Selectors
	loc *locator.Locator
}

// New creates an Extractor. A nil locator gets a silent default.
func New(sel models.Selectors, loc *locator.Locator) *Extractor {
	if loc == nil {
		loc = locator.New(nil)
	}
	return &Extractor{sel: sel, loc: loc}
}

// Default creates an Extractor for the stock problem-page markup.
func Default() *Extractor {
	return New(models.DefaultSelectors(), nil)
}
