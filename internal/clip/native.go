package clip

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	nativeOnce sync.Once
	nativeErr  error
)

// initNative calls clipboard.Init once per process. It is deferred to Open
// rather than init() so that `pbtail version` works on headless systems.
func initNative() error {
	nativeOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			nativeErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	})
	return nativeErr
}

func readNativeText() (string, bool) {
	b := clipboard.Read(clipboard.FmtText)
	if b == nil {
		return "", false
	}
	return string(b), true
}
