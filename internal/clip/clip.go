// Package clip provides read access to the system clipboard as a text
// snapshot plus a cheap change counter. Build constraints select how the
// native backend detects changes:
//
//	clip_darwin.go   : NSPasteboard changeCount via cgo
//	clip_windows.go  : GetClipboardSequenceNumber via golang.org/x/sys/windows
//	clip_other.go    : Linux and the rest: compare sampled content
//
// Text is always read with golang.design/x/clipboard for the native backend
// and with github.com/atotto/clipboard for the exec backend.
package clip

import (
	"errors"
	"fmt"
)

// Source is a read-only view of a clipboard.
type Source interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ChangeCount returns a counter that moves whenever the clipboard content
	// is replaced. Only equality between two readings is meaningful.
	ChangeCount() int64

	// ReadText returns the current text content. ok is false when the
	// clipboard holds no text representation; an empty string with ok true
	// is a real, empty text value.
	ReadText() (text string, ok bool)

	// Close releases any resources held by the backend.
	Close()
}

// Backend names accepted by Open.
const (
	BackendNative   = "native"
	BackendExec     = "exec"
	BackendHeadless = "headless"
)

var (
	// ErrUnknownBackend is returned by Open for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown clipboard backend")
	// ErrUnavailable is returned by Open when the backend cannot reach a clipboard.
	ErrUnavailable = errors.New("clipboard unavailable")
)

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendNative, BackendExec, BackendHeadless}
}

// Open constructs the named backend. An empty name selects BackendNative.
func Open(name string) (Source, error) {
	switch name {
	case "", BackendNative:
		return openNative()
	case BackendExec:
		return openExec()
	case BackendHeadless:
		return Headless(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
