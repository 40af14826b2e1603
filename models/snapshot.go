package models

// CodeSnapshot is the editor content and selected language read from the page.
// When Error is set, Code is empty.
type CodeSnapshot struct {
	Code     string `json:"code" yaml:"code"`
	Language string `json:"language" yaml:"language"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// PageInfo is the metadata returned for GET_PAGE_INFO.
type PageInfo struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}
