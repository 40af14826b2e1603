package models

import "fmt"

// MessageType tags a request sent over the extension messaging channel.
type MessageType string

const (
	TypeGetProblem        MessageType = "getProblem"
	TypeGetCodeComplexity MessageType = "getCodeComplexity"
	TypeGetPageHTML       MessageType = "GET_PAGE_HTML"
	TypeGetPageText       MessageType = "GET_PAGE_TEXT"
	TypeGetPageInfo       MessageType = "GET_PAGE_INFO"
)

// Request is a single message from the side panel. HTML and URL carry the
// page snapshot when the request crosses a process boundary.
type Request struct {
	Type MessageType `json:"type"`
	HTML string      `json:"html,omitempty"`
	URL  string      `json:"url,omitempty"`
}

// Response is the one-shot reply to a Request. Only the fields relevant to
// the request type are set; PageInfo fields are flattened into the object.
type Response struct {
	*PageInfo `yaml:"page_info,omitempty"`

	Data  interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	HTML  string      `json:"html,omitempty" yaml:"html,omitempty"`
	Text  string      `json:"text,omitempty" yaml:"text,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewUnknownTypeResponse creates a response for message types nobody handles.
func NewUnknownTypeResponse(msgType MessageType) Response {
	return Response{
		Error: &ErrorInfo{
			Type:    "unknown_type",
			Message: "Message type '" + string(msgType) + "' not recognized",
			SuggestedActions: []string{
				"Valid types: getProblem, getCodeComplexity, GET_PAGE_HTML, GET_PAGE_TEXT, GET_PAGE_INFO",
			},
		},
	}
}

// NewInvalidRequestResponse creates a response for requests that could not
// be decoded or whose page snapshot could not be loaded.
func NewInvalidRequestResponse(msg string) Response {
	return Response{
		Error: &ErrorInfo{
			Type:    "invalid_request",
			Message: msg,
		},
	}
}

// NewTooLargeResponse replaces a response that exceeds the outbound frame
// limit.
func NewTooLargeResponse(msgType MessageType, size int) Response {
	return Response{
		Error: &ErrorInfo{
			Type:    "response_too_large",
			Message: fmt.Sprintf("Response to '%s' is %d bytes, above the native messaging limit", msgType, size),
			SuggestedActions: []string{
				"Request GET_PAGE_TEXT or GET_PAGE_INFO instead of the full page HTML",
			},
		},
	}
}
