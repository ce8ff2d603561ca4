package git

import (
	"strconv"
	"strings"
)

// progressPrefixes is checked in order; the first match wins.
var progressPrefixes = []struct {
	prefix string
	kind   ProgressKind
}{
	{"Cloning into", ProgressStarted},
	{"Counting objects: ", ProgressCounting},
	{"Compressing objects: ", ProgressCompressing},
	{"Receiving objects: ", ProgressReceiving},
	{"Resolving deltas: ", ProgressResolving},
}

// ParseProgress classifies one line of clone output. It never fails:
// unknown lines become ProgressOther and a missing percentage becomes 0.
func ParseProgress(line string) ProgressEvent {
	text := strings.TrimSpace(line)
	text = strings.TrimSpace(strings.TrimPrefix(text, "remote:"))

	for _, p := range progressPrefixes {
		if !strings.HasPrefix(text, p.prefix) {
			continue
		}
		if p.kind == ProgressStarted {
			return ProgressEvent{Kind: ProgressStarted}
		}
		return ProgressEvent{Kind: p.kind, Percent: leadingPercent(text[len(p.prefix):])}
	}
	return ProgressEvent{Kind: ProgressOther, Raw: line}
}

// leadingPercent returns the integer before the first "%", or 0.
func leadingPercent(s string) int {
	before, _, found := strings.Cut(s, "%")
	if !found {
		return 0
	}
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
