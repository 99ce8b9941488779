package coverletter

import (
	"context"
	"sync"
)

// Clipboard is a write-only clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClientClipboard records the most recent text written to it. The web
// binding hands that text back to the browser, which performs the actual
// navigator.clipboard write.
type ClientClipboard struct {
	mu   sync.Mutex
	last string
}

// NewClientClipboard returns an empty ClientClipboard.
func NewClientClipboard() *ClientClipboard {
	return &ClientClipboard{}
}

// WriteText implements Clipboard.
func (c *ClientClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.last = text
	c.mu.Unlock()
	return nil
}

// Last returns the most recently written text.
func (c *ClientClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}
