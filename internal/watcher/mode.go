package watcher

import "strings"

// Mode is a set of independent output policies.
type Mode uint8

const (
	// AllowEmpty emits an empty string when the clipboard has no text.
	AllowEmpty Mode = 1 << iota
	// Dedupe skips content identical to the last emitted content.
	Dedupe
	// PrintInitialValue emits once on start, before the first poll.
	PrintInitialValue
	// PrintAndExit emits once and returns without polling.
	PrintAndExit
)

var modeNames = []struct {
	mode Mode
	name string
}{
	{AllowEmpty, "allow-empty"},
	{Dedupe, "dedupe"},
	{PrintInitialValue, "print-initial-value"},
	{PrintAndExit, "print-and-exit"},
}

// Has reports whether every flag in flag is set in m.
func (m Mode) Has(flag Mode) bool { return m&flag == flag }

func (m Mode) String() string {
	var names []string
	for _, n := range modeNames {
		if m.Has(n.mode) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Outcome is the result of one pass of the output policy.
type Outcome int

const (
	// OutcomeNoText means the clipboard had no text and AllowEmpty was unset.
	OutcomeNoText Outcome = iota
	// OutcomeDuplicate means Dedupe suppressed content equal to the last emission.
	OutcomeDuplicate
	// OutcomeEmit means the content was accepted for output.
	OutcomeEmit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoText:
		return "no-text"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeEmit:
		return "emit"
	default:
		return "unknown"
	}
}
