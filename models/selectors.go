package models

// Selectors are the structural hints used to find problem-page elements.
// Each value is a CSS selector, an XPath expression (leading "/" or
// "xpath:"), or a bare class token where the field name says Class.
type Selectors struct {
	ProblemClass    string `yaml:"problem_class"`
	ViewLineClass   string `yaml:"view_line_class"`
	ErrorPanel      string `yaml:"error_panel"`
	TestCaseBox     string `yaml:"test_case_box"`
	TestCaseLabel   string `yaml:"test_case_label"`
	TestCaseInput   string `yaml:"test_case_input"`
	TestCaseButton  string `yaml:"test_case_button"`
	ResultBox       string `yaml:"result_box"`
	ResultLabel     string `yaml:"result_label"`
	ResultValue     string `yaml:"result_value"`
	EditorHeader    string `yaml:"editor_header"`
	LanguageButton  string `yaml:"language_button"`
	CodeEditor      string `yaml:"code_editor"`
	ViewLines       string `yaml:"view_lines"`
	ViewLine        string `yaml:"view_line"`
	MetaDescription string `yaml:"meta_description"`
}

// DefaultSelectors matches the current problem-page markup.
func DefaultSelectors() Selectors {
	return Selectors{
		ProblemClass:    "elfjS",
		ViewLineClass:   "view-line",
		ErrorPanel:      "div.font-menlo.whitespace-pre-wrap.break-all.text-xs.text-red-60",
		TestCaseBox:     "div.space-y-4",
		TestCaseLabel:   ".text-xs.font-medium",
		TestCaseInput:   `[data-e2e-locator="console-testcase-input"]`,
		TestCaseButton:  `[data-e2e-locator="console-testcase-button"]`,
		ResultBox:       "div.flex.h-full.w-full.flex-col.space-y-2",
		ResultLabel:     "div.flex.text-xs.font-medium",
		ResultValue:     "div.font-menlo.relative.mx-3.whitespace-pre-wrap",
		EditorHeader:    "#editor > div:first-child",
		LanguageButton:  "button",
		CodeEditor:      `[data-track-load="code_editor"]`,
		ViewLines:       ".view-lines",
		ViewLine:        ".view-line",
		MetaDescription: `meta[name="description"]`,
	}
}

// Override returns s with every non-empty field of o applied.
func (s Selectors) Override(o Selectors) Selectors {
	pick := func(cur, next string) string {
		if next != "" {
			return next
		}
		return cur
	}
	return Selectors{
		ProblemClass:    pick(s.ProblemClass, o.ProblemClass),
		ViewLineClass:   pick(s.ViewLineClass, o.ViewLineClass),
		ErrorPanel:      pick(s.ErrorPanel, o.ErrorPanel),
		TestCaseBox:     pick(s.TestCaseBox, o.TestCaseBox),
		TestCaseLabel:   pick(s.TestCaseLabel, o.TestCaseLabel),
		TestCaseInput:   pick(s.TestCaseInput, o.TestCaseInput),
		TestCaseButton:  pick(s.TestCaseButton, o.TestCaseButton),
		ResultBox:       pick(s.ResultBox, o.ResultBox),
		ResultLabel:     pick(s.ResultLabel, o.ResultLabel),
		ResultValue:     pick(s.ResultValue, o.ResultValue),
		EditorHeader:    pick(s.EditorHeader, o.EditorHeader),
		LanguageButton:  pick(s.LanguageButton, o.LanguageButton),
		CodeEditor:      pick(s.CodeEditor, o.CodeEditor),
		ViewLines:       pick(s.ViewLines, o.ViewLines),
		ViewLine:        pick(s.ViewLine, o.ViewLine),
		MetaDescription: pick(s.MetaDescription, o.MetaDescription),
	}
}
