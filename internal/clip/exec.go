package clip

import (
	"fmt"
	"log/slog"

	atotto "github.com/atotto/clipboard"
)

// execSource reads the clipboard through platform utilities (pbpaste, xclip,
// xsel, wl-paste) or the Win32 API, without cgo.
type execSource struct {
	*compareCounter
}

func openExec() (Source, error) {
	if atotto.Unsupported {
		return nil, fmt.Errorf("%w: no clipboard utility found (install xclip, xsel or wl-clipboard)", ErrUnavailable)
	}
	s := execSource{}
	s.compareCounter = newCompareCounter(s.ReadText)
	return s, nil
}

func (execSource) Name() string { return "exec clipboard (poll)" }

// ReadText treats a failed read as "no text": the utilities exit non-zero
// when the selection has no text target.
func (execSource) ReadText() (string, bool) {
	text, err := atotto.ReadAll()
	if err != nil {
		slog.Debug("clipboard read failed", "backend", "exec", "err", err)
		return "", false
	}
	return text, true
}

func (execSource) Close() {}
