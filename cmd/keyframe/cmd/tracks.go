package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// selectTracks returns the named tracks in the order given, or every track
// when names is empty.
func selectTracks(doc *document.Document, names []string) ([]document.NamedTrack, error) {
	if len(names) == 0 {
		return doc.Tracks, nil
	}
	out := make([]document.NamedTrack, 0, len(names))
	for _, name := range names {
		t, ok := doc.Lookup(name)
		if !ok {
			return nil, errors.Errorf("cmd.selectTracks", errors.KindLookup,
				"no track named %q (have %s)", name, strings.Join(doc.Names(), ", "))
		}
		out = append(out, document.NamedTrack{Name: name, Track: t})
	}
	return out, nil
}

// timeRange returns the span covered by the keyframes of tracks.
func timeRange(tracks []document.NamedTrack) (start, end timetick.TimeTick, ok bool) {
	for _, nt := range tracks {
		s, e, has := nt.Track.TimeRange()
		if !has {
			continue
		}
		if !ok {
			start, end, ok = s, e, true
			continue
		}
		start, end = start.Min(s), end.Max(e)
	}
	return start, end, ok
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
}

// takeFlag removes every "--name value" and "--name=value" from args and
// returns the values in order.
func takeFlag(args []string, name string) (values, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == name:
			if i+1 >= len(args) {
				return nil, nil, usageError("%s requires a value", name)
			}
			values = append(values, args[i+1])
			i++
		case strings.HasPrefix(arg, name+"="):
			values = append(values, strings.TrimPrefix(arg, name+"="))
		default:
			rest = append(rest, arg)
		}
	}
	return values, rest, nil
}

// takeLast is takeFlag for a single-valued flag; the last occurrence wins.
func takeLast(args []string, name string) (value string, found bool, rest []string, err error) {
	values, rest, err := takeFlag(args, name)
	if err != nil || len(values) == 0 {
		return "", false, rest, err
	}
	return values[len(values)-1], true, rest, nil
}

// takeBool removes a boolean "--name" switch from args.
func takeBool(args []string, name string) (bool, []string) {
	var rest []string
	found := false
	for _, arg := range args {
		if arg == name {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return found, rest
}

func rejectFlags(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			return usageError("unknown flag: %s", arg)
		}
	}
	return nil
}

func wantArgs(args []string, min int, usage string) error {
	if len(args) < min {
		return usageError("%s\n\nUsage: %s", fmt.Sprintf("expected at least %d argument(s)", min), usage)
	}
	return nil
}
