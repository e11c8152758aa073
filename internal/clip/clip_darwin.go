//go:build darwin

package clip

// #cgo CFLAGS: -x objective-c
// #cgo LDFLAGS: -framework Cocoa
// #import <Cocoa/Cocoa.h>
//
// NSInteger pbtail_changeCount() {
//     return [[NSPasteboard generalPasteboard] changeCount];
// }
import "C"

type darwinSource struct{}

func openNative() (Source, error) {
	if err := initNative(); err != nil {
		return nil, err
	}
	return darwinSource{}, nil
}

func (darwinSource) Name() string { return "macOS NSPasteboard" }

func (darwinSource) ChangeCount() int64 { return int64(C.pbtail_changeCount()) }

func (darwinSource) ReadText() (string, bool) { return readNativeText() }

func (darwinSource) Close() {}
