package clip

import "sync"

// headlessSource is a no-op backend for environments without a display
// server. It never holds text and its counter never moves.
type headlessSource struct{}

// Headless returns the no-op backend.
func Headless() Source { return headlessSource{} }

func (headlessSource) Name() string             { return "headless (no-op)" }
func (headlessSource) ChangeCount() int64       { return 0 }
func (headlessSource) ReadText() (string, bool) { return "", false }
func (headlessSource) Close()                   {}

// Memory is an in-process clipboard. Every Set or Clear advances the change
// counter the way a system pasteboard does, so copying the same text twice
// is two changes.
type Memory struct {
	mu      sync.Mutex
	count   int64
	text    string
	hasText bool
	closed  bool
}

// NewMemory returns an empty Memory clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "memory" }

func (m *Memory) ChangeCount() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *Memory) ReadText() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.hasText
}

// Set replaces the content with text.
func (m *Memory) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.text, m.hasText = text, true
}

// Clear removes any text content.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	m.text, m.hasText = "", false
}

// Swap replaces the content without moving the counter. It reproduces a
// reader observing content between another process's write and its counter
// update.
func (m *Memory) Swap(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text, m.hasText = text, true
}

func (m *Memory) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}

// Closed reports whether Close has been called.
func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var (
	_ Source = headlessSource{}
	_ Source = (*Memory)(nil)
)
