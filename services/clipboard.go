package services

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard receives plain text copied by the user.
type Clipboard interface {
	WriteText(text string) error
}

// ErrClipboardUnsupported is returned when no system clipboard is available.
var ErrClipboardUnsupported = errors.New("clipboard not available on this system")

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps the last text written. Used in tests and when the
// server has no desktop session.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *MemoryClipboard) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Text returns the last text written.
func (m *MemoryClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// CopyReceipt renders the receipt and writes it verbatim to cb. The rendered
// text is returned even when the write fails.
func CopyReceipt(cb Clipboard, info ClientInfo, items []SelectedItem, quoteNumber string) (string, error) {
	text := RenderReceipt(info, items, CalcQuoteTotals(items), quoteNumber)
	return text, cb.WriteText(text)
}
