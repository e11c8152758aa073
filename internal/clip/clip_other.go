//go:build !darwin && !windows

package clip

// otherSource covers Linux (X11/Wayland) and the remaining platforms, none of
// which expose a change counter. Changes are detected by sampling content.
type otherSource struct {
	*compareCounter
}

func openNative() (Source, error) {
	if err := initNative(); err != nil {
		return nil, err
	}
	return otherSource{newCompareCounter(readNativeText)}, nil
}

func (otherSource) Name() string { return "native clipboard (poll)" }

func (otherSource) ReadText() (string, bool) { return readNativeText() }

func (otherSource) Close() {}
