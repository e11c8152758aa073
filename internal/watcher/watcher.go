// Package watcher turns clipboard changes into a stream of formatted
// emissions.
//
// A Watcher is a single-owner loop: Run sleeps for the polling interval,
// compares the clipboard change counter with the last one it saw, and on a
// change runs the output policy (Next) and writes the result. Stop may be
// called from any goroutine; it is observed between sleeps, never during one.
package watcher

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"go.klb.dev/pbtail/internal/clip"
	"go.klb.dev/pbtail/internal/format"
)

// DefaultInterval is the polling interval when the caller does not pick one.
const DefaultInterval = 50 * time.Millisecond

// Config selects how a Watcher renders and when it emits.
type Config struct {
	Format   format.Format
	Modes    Mode
	Interval time.Duration // negative values are treated as 0
	Output   io.Writer     // defaults to os.Stdout
}

// Watcher owns the change-detection state for one clipboard.
type Watcher struct {
	src      clip.Source
	format   format.Format
	modes    Mode
	interval time.Duration
	sink     io.Writer
	out      *bufio.Writer
	sleep    func(context.Context, time.Duration) error

	lastChange  int64
	lastEmitted *string
	stopped     atomic.Bool
}

// New snapshots the clipboard change counter so that content already present
// is not reported as a change on the first poll.
func New(src clip.Source, cfg Config) *Watcher {
	if cfg.Format == "" {
		cfg.Format = format.Default
	}
	if cfg.Interval < 0 {
		cfg.Interval = 0
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	return &Watcher{
		src:        src,
		format:     cfg.Format,
		modes:      cfg.Modes,
		interval:   cfg.Interval,
		sink:       cfg.Output,
		out:        bufio.NewWriter(cfg.Output),
		sleep:      sleepContext,
		lastChange: src.ChangeCount(),
	}
}

// Next reads the clipboard and applies the output policy. It returns the
// serialized output when the outcome is OutcomeEmit and "" otherwise.
func (w *Watcher) Next() (Outcome, string) {
	content, ok := w.src.ReadText()
	if !ok {
		if !w.modes.Has(AllowEmpty) {
			w.lastEmitted = nil
			logOutcome(OutcomeNoText, "", false)
			return OutcomeNoText, ""
		}
		content = ""
	}

	if w.modes.Has(Dedupe) && w.lastEmitted != nil && *w.lastEmitted == content {
		logOutcome(OutcomeDuplicate, content, true)
		return OutcomeDuplicate, ""
	}

	w.lastEmitted = &content
	logOutcome(OutcomeEmit, content, true)
	return OutcomeEmit, format.Serialize(content, w.format)
}

// Echo runs Next and writes any output followed by its terminator.
func (w *Watcher) Echo() Outcome {
	outcome, output := w.Next()
	if outcome != OutcomeEmit {
		return outcome
	}
	if err := w.write(output); err != nil {
		slog.Error("write failed", "err", err)
	}
	return outcome
}

// write emits output and its terminator as one flushed unit.
func (w *Watcher) write(output string) error {
	_, _ = w.out.WriteString(output)
	_, _ = w.out.WriteString(format.Terminator(output, w.format))
	if err := w.out.Flush(); err != nil {
		// bufio errors are sticky; start the next emission clean.
		w.out.Reset(w.sink)
		return err
	}
	return nil
}

// Run emits clipboard changes until Stop is called or ctx is done. With
// PrintAndExit it emits once and returns immediately. Run returns nil after
// Stop and ctx.Err() when a sleep was cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.modes.Has(PrintAndExit) {
		w.Echo()
		return nil
	}

	slog.Debug("watching clipboard",
		"backend", w.src.Name(),
		"format", w.format.String(),
		"modes", w.modes.String(),
		"interval", w.interval,
	)

	if w.modes.Has(PrintInitialValue) {
		w.Echo()
	}

	for {
		if err := w.sleep(ctx, w.interval); err != nil {
			slog.Debug("poll sleep cancelled", "err", err)
			return err
		}
		if w.stopped.Load() {
			break
		}

		cc := w.src.ChangeCount()
		if cc == w.lastChange {
			continue
		}
		slog.Debug("clipboard changed", "from", w.lastChange, "to", cc)
		w.lastChange = cc
		w.Echo()
	}

	slog.Debug("watcher stopped")
	return nil
}

// Stop asks Run to return after its current sleep. It is safe to call from
// any goroutine and more than once.
func (w *Watcher) Stop() { w.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (w *Watcher) Stopped() bool { return w.stopped.Load() }

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
