package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.klb.dev/pbtail/internal/clip"
	"go.klb.dev/pbtail/internal/format"
	"go.klb.dev/pbtail/internal/watcher"
)

// Flag spelling and help text for the output formats and modes. The format
// and watcher packages know nothing about the command line.
var formatFlags = []struct {
	format format.Format
	short  string
	usage  string
}{
	{format.Newline, "n", "add newline if output doesn't already end with one (default)"},
	{format.NewlineAlways, "N", "always add newline"},
	{format.NUL, "0", "use NUL character as terminator"},
	{format.Raw, "r", "no terminator"},
	{format.JSON, "j", `output as JSON: {"content": string}`},
	{format.JSONValue, "J", `output as JSON: {"content": string, "value": content parsed as JSON} (value is unset if content is not valid JSON)`},
}

var modeFlags = []struct {
	mode  watcher.Mode
	name  string
	short string
	usage string
}{
	{watcher.AllowEmpty, "allow-empty", "a", "print even when clipboard has no string representation; without this, printing is skipped"},
	{watcher.Dedupe, "dedupe", "d", "skip printing if content is identical to the last printed content"},
	{watcher.PrintInitialValue, "print-initial-value", "i", "print the initial clipboard value on startup"},
	{watcher.PrintAndExit, "print-and-exit", "1", "print the clipboard value and exit immediately"},
}

var errUsage = errors.New("invalid usage")

// options is the resolved command line.
type options struct {
	format   format.Format
	modes    watcher.Mode
	interval time.Duration
	backend  string
}

func addWatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()

	exclusive := make([]string, 0, len(formatFlags)+1)
	for _, ff := range formatFlags {
		f.BoolP(ff.format.String(), ff.short, false, ff.usage)
		exclusive = append(exclusive, ff.format.String())
	}
	f.String("format", "", "output format by name: "+formatNames())
	exclusive = append(exclusive, "format")
	cmd.MarkFlagsMutuallyExclusive(exclusive...)

	for _, mf := range modeFlags {
		f.BoolP(mf.name, mf.short, false, mf.usage)
	}

	f.Int("polling-interval", int(watcher.DefaultInterval/time.Millisecond), "polling interval in milliseconds")
	f.String("backend", clip.BackendNative, "clipboard backend: "+strings.Join(clip.Backends(), "|"))
}

// resolveOptions reads the watch flags back out of v, where flags, env vars
// and the config file have already been merged. A format chosen on the
// command line replaces any format from the environment or config file.
func resolveOptions(flags *pflag.FlagSet, v *viper.Viper) (options, error) {
	var opts options

	f, err := resolveFormat(flags, v)
	if err != nil {
		return options{}, err
	}
	opts.format = f

	for _, mf := range modeFlags {
		if v.GetBool(mf.name) {
			opts.modes |= mf.mode
		}
	}

	ms := v.GetInt("polling-interval")
	if ms < 0 {
		return options{}, fmt.Errorf("%w: polling interval must be non-negative, got %d", errUsage, ms)
	}
	opts.interval = time.Duration(ms) * time.Millisecond

	opts.backend = v.GetString("backend")
	return opts, nil
}

func resolveFormat(flags *pflag.FlagSet, v *viper.Viper) (format.Format, error) {
	fromCLI := flags.Changed("format")
	for _, ff := range formatFlags {
		fromCLI = fromCLI || flags.Changed(ff.format.String())
	}
	isSet := v.GetBool
	if fromCLI {
		isSet = func(name string) bool {
			on, _ := flags.GetBool(name)
			return flags.Changed(name) && on
		}
	}

	var (
		selected []string
		chosen   = format.Default
	)
	for _, ff := range formatFlags {
		if isSet(ff.format.String()) {
			selected = append(selected, "--"+ff.format.String())
			chosen = ff.format
		}
	}

	name := v.GetString("format")
	if fromCLI && !flags.Changed("format") {
		name = ""
	}
	if name != "" {
		f, err := format.Parse(name)
		if err != nil {
			return "", fmt.Errorf("%w: %w", errUsage, err)
		}
		selected = append(selected, "--format="+name)
		chosen = f
	}

	if len(selected) > 1 {
		return "", fmt.Errorf("%w: conflicting output formats: %s", errUsage, strings.Join(selected, ", "))
	}
	return chosen, nil
}

func formatNames() string {
	names := make([]string, 0, len(format.All()))
	for _, f := range format.All() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}
