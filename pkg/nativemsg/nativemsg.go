// Package nativemsg implements the browser native messaging framing: each
// message is a 32-bit little-endian length followed by that many bytes of
// UTF-8 JSON.
package nativemsg

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// MaxOutgoing is the largest message a host may send to the browser.
	MaxOutgoing = 1024 * 1024
	// MaxIncoming bounds what we accept from the browser. The page snapshot
	// rides inside the request, so this is well above MaxOutgoing.
	MaxIncoming = 64 * 1024 * 1024
)

var (
	ErrMessageTooLarge = errors.New("native message too large")
	ErrShortMessage    = errors.New("native message truncated")
)

// Read returns the next raw message. io.EOF means the browser closed the
// pipe between messages.
func Read(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read message length: %w", err)
	}
	if size > MaxIncoming {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortMessage, err)
	}
	return buf, nil
}

// ReadJSON reads the next message and decodes it into v.
func ReadJSON(r io.Reader, v interface{}) error {
	data, err := Read(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	return nil
}

// Write frames and writes one raw message.
func Write(w io.Writer, data []byte) error {
	if len(data) > MaxOutgoing {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return fmt.Errorf("failed to write message length: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// WriteJSON encodes v and writes it as one message.
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	return Write(w, data)
}
