package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pbtail/internal/clip"
	"go.klb.dev/pbtail/internal/watcher"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pbtail",
		Short: "Watch the system clipboard and print text content to stdout",
		Long: `pbtail watches the system clipboard and prints its text content to stdout
every time it changes, like "tail -f" for the clipboard.

Each emission is written and flushed immediately, so pbtail can feed a
pipeline that reads line by line. Interrupt (Ctrl+C) stops pbtail after the
current polling interval; a second interrupt terminates it at once.

Config file search order (first found wins):
  $HOME/.config/pbtail/pbtail.toml
  path supplied via --config

All flags can be set via PBTAIL_<FLAG> env vars or config-file keys.
Precedence (lowest → highest): defaults → config file → PBTAIL_* env vars → flags`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runWatch(cmd, v) },
	}

	addWatchFlags(cmd)
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runWatch(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)

	opts, err := resolveOptions(cmd.Flags(), v)
	if err != nil {
		return err
	}

	src, err := clip.Open(opts.backend)
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	defer src.Close()

	w := watcher.New(src, watcher.Config{
		Format:   opts.format,
		Modes:    opts.modes,
		Interval: opts.interval,
		Output:   cmd.OutOrStdout(),
	})

	if !opts.modes.Has(watcher.PrintAndExit) {
		stop := notifyShutdown(w)
		defer stop()
	}

	if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// stopper is the part of *watcher.Watcher the signal relay needs.
type stopper interface {
	Stop()
}

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// notifyShutdown relays the first SIGINT/SIGTERM to s.Stop. The returned
// func releases the signal channel.
func notifyShutdown(s stopper) (release func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, shutdownSignals...)
	done := make(chan struct{})

	go relayShutdown(ch, done, s, func() { signal.Reset(shutdownSignals...) })

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

// relayShutdown waits for one signal on ch, restores the default handlers
// via reset so a second signal terminates the process, and stops s.
func relayShutdown(ch <-chan os.Signal, done <-chan struct{}, s stopper, reset func()) {
	select {
	case sig := <-ch:
		slog.Debug("shutdown requested", "signal", sig.String())
		reset()
		s.Stop()
	case <-done:
	}
}
