//go:build windows

package clip

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var procGetClipboardSequenceNumber = windows.NewLazySystemDLL("user32.dll").NewProc("GetClipboardSequenceNumber")

type windowsSource struct{}

func openNative() (Source, error) {
	if err := initNative(); err != nil {
		return nil, err
	}
	if err := procGetClipboardSequenceNumber.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return windowsSource{}, nil
}

func (windowsSource) Name() string { return "Windows Clipboard" }

// ChangeCount returns the clipboard sequence number. It is 0 when the
// window station has no clipboard access, which then reads as "no change".
func (windowsSource) ChangeCount() int64 {
	n, _, _ := procGetClipboardSequenceNumber.Call()
	return int64(uint32(n))
}

func (windowsSource) ReadText() (string, bool) { return readNativeText() }

func (windowsSource) Close() {}
