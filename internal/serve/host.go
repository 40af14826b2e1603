// Package serve runs the native messaging host the browser extension talks to.
package serve

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/algosensei/models"
	"github.com/dtnitsch/algosensei/pkg/dispatch"
	"github.com/dtnitsch/algosensei/pkg/document"
	"github.com/dtnitsch/algosensei/pkg/nativemsg"
)

// Host answers one framed request at a time.
type Host struct {
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

func NewHost(d *dispatch.Dispatcher, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Host{dispatcher: d, logger: logger}
}

// Serve reads requests from r and writes exactly one response per request
// to w. It returns nil when r reaches EOF between messages and an error when
// the framing breaks.
func (h *Host) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := nativemsg.Read(r)
		if errors.Is(err, io.EOF) {
			h.logger.Info("browser closed the connection")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read request: %w", err)
		}

		resp, msgType := h.respond(data)
		if err := h.write(w, resp, msgType); err != nil {
			return err
		}
	}
}

func (h *Host) respond(data []byte) (models.Response, models.MessageType) {
	var req models.Request
	if err := json.Unmarshal(data, &req); err != nil {
		h.logger.Warn("malformed request", "error", err, "bytes", len(data))
		return models.NewInvalidRequestResponse("request is not valid JSON: " + err.Error()), ""
	}

	if !dispatch.IsValidType(req.Type) {
		h.logger.Warn("unknown message type", "type", req.Type)
		return models.NewUnknownTypeResponse(req.Type), req.Type
	}

	page, err := document.LoadString(req.HTML, req.URL)
	if err != nil {
		h.logger.Warn("failed to load page snapshot", "type", req.Type, "url", req.URL, "error", err)
		return models.NewInvalidRequestResponse(err.Error()), req.Type
	}

	resp, ok := h.dispatcher.Handle(page, req)
	if !ok {
		return models.NewUnknownTypeResponse(req.Type), req.Type
	}
	h.logger.Debug("request answered", "type", req.Type, "url", req.URL)
	return resp, req.Type
}

func (h *Host) write(w io.Writer, resp models.Response, msgType models.MessageType) error {
	err := nativemsg.WriteJSON(w, resp)
	if !errors.Is(err, nativemsg.ErrMessageTooLarge) {
		return err
	}

	body, _ := json.Marshal(resp)
	h.logger.Warn("response too large", "type", msgType, "bytes", len(body))
	return nativemsg.WriteJSON(w, models.NewTooLargeResponse(msgType, len(body)))
}
