package dispatch

import "github.com/dtnitsch/algosensei/models"

// AllTypes returns every message type the dispatcher answers.
func AllTypes() []models.MessageType {
	return []models.MessageType{
		models.TypeGetProblem,
		models.TypeGetCodeComplexity,
		models.TypeGetPageHTML,
		models.TypeGetPageText,
		models.TypeGetPageInfo,
	}
}

// IsValidType checks if a message type is handled.
func IsValidType(t models.MessageType) bool {
	for _, v := range AllTypes() {
		if v == t {
			return true
		}
	}
	return false
}

// Reply tells the transport what happened to the response channel.
type Reply int

const (
	// NoReply means the request was not handled and send was never called.
	NoReply Reply = iota
	// ReplySync means send was called before Dispatch returned.
	ReplySync
	// ReplyAsync means the channel must stay open: send may be called after
	// Dispatch returns. It corresponds to returning true from a runtime
	// message listener.
	ReplyAsync
)

func (r Reply) String() string {
	switch r {
	case ReplySync:
		return "sync"
	case ReplyAsync:
		return "async"
	default:
		return "none"
	}
}

// KeepOpen reports whether the transport must wait for a later send.
func (r Reply) KeepOpen() bool {
	return r == ReplyAsync
}
