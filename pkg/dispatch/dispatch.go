// Package dispatch routes side-panel messages to the page extractors.
package dispatch

import (
	"log/slog"

	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/document"
	"github.com/dtnitsch/algosensei/pkg/extractor"
)

// SendFunc delivers the single response to a request.
type SendFunc func(models.Response)

// Handler answers one message type against a page snapshot.
type Handler func(page *document.Page, req models.Request, send SendFunc) Reply

// Dispatcher maps a request type tag to its handler.
type Dispatcher struct {
	handlers map[models.MessageType]Handler
	logger   *slog.Logger
}

// New registers the extraction and page utility handlers.
func New(ex *extractor.Extractor, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		handlers: make(map[models.MessageType]Handler),
		logger:   logger,
	}

	d.Register(models.TypeGetProblem, func(page *document.Page, _ models.Request, send SendFunc) Reply {
		send(models.Response{Data: ex.Problem(page.Root())})
		return ReplySync
	})
	d.Register(models.TypeGetCodeComplexity, func(page *document.Page, _ models.Request, send SendFunc) Reply {
		send(models.Response{Data: ex.UserCode(page.Root())})
		return ReplySync
	})

	// Page utilities keep the channel open like the content script they
	// replace; the response is still sent before returning.
	d.Register(models.TypeGetPageHTML, func(page *document.Page, _ models.Request, send SendFunc) Reply {
		send(models.Response{HTML: ex.PageHTML(page.Root())})
		return ReplyAsync
	})
	d.Register(models.TypeGetPageText, func(page *document.Page, _ models.Request, send SendFunc) Reply {
		send(models.Response{Text: ex.PageText(page.Root())})
		return ReplyAsync
	})
	d.Register(models.TypeGetPageInfo, func(page *document.Page, req models.Request, send SendFunc) Reply {
		pageURL := req.URL
		if page != nil && page.URL != "" {
			pageURL = page.URL
		}
		info := ex.PageInfo(page.Root(), pageURL)
		send(models.Response{PageInfo: &info})
		return ReplyAsync
	})

	return d
}

// Register installs or replaces the handler for a message type.
func (d *Dispatcher) Register(t models.MessageType, h Handler) {
	d.handlers[t] = h
}

// Dispatch runs the handler for req.Type. Unknown types are ignored and
// send is not called.
func (d *Dispatcher) Dispatch(page *document.Page, req models.Request, send SendFunc) Reply {
	h, ok := d.handlers[req.Type]
	if !ok {
		d.logger.Debug("ignoring unhandled message", "type", req.Type)
		return NoReply
	}

	sent := 0
	reply := h(page, req, func(resp models.Response) {
		sent++
		if sent > 1 {
			d.logger.Warn("dropping duplicate response", "type", req.Type)
			return
		}
		send(resp)
	})
	d.logger.Debug("message dispatched", "type", req.Type, "reply", reply.String())
	return reply
}

// Handle dispatches req and returns the response it produced, if any.
func (d *Dispatcher) Handle(page *document.Page, req models.Request) (models.Response, bool) {
	var (
		resp models.Response
		got  bool
	)
	d.Dispatch(page, req, func(r models.Response) {
		resp = r
		got = true
	})
	return resp, got
}
