package cmd

import (
	"fmt"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/keyframe"
)

func init() {
	RegisterCommand(&Command{
		Name:  "eval",
		Short: "Evaluate tracks at a time",
		Long: `Evaluate every track (or the named tracks) of a document at one time.

The time is read in the configured timeline unit (seconds by default, or
frames when timeline.unit is "frames" in keyframe.yaml). Empty tracks are
reported as "-".

With --explain the bracketing keyframes and the eased progression are
printed as well.`,
		Usage: "keyframe eval <document> <time> [track...] [--explain]",
		Run:   runEval,
	})
}

func runEval(args []string) error {
	explain, args := takeBool(args, "--explain")
	if err := rejectFlags(args); err != nil {
		return err
	}
	if err := wantArgs(args, 2, "keyframe eval <document> <time> [track...]"); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	at, err := cfg.ParseTime(args[1])
	if err != nil {
		return errors.New("cmd.eval", errors.KindCommand, err)
	}
	doc, err := document.ReadFile(args[0])
	if err != nil {
		return err
	}
	tracks, err := selectTracks(doc, args[2:])
	if err != nil {
		return err
	}

	tw := newTable()
	if explain {
		fmt.Fprintln(tw, "track\tvalue\tleft\tright\tprogression")
	}
	for _, nt := range tracks {
		r, ok := nt.Track.Evaluate(at)
		if !ok {
			fmt.Fprintf(tw, "%s\t-\n", nt.Name)
			continue
		}
		value := cfg.FormatValue(keyframe.Blend(r, animation.Float64{}))
		if !explain {
			fmt.Fprintf(tw, "%s\t%s\n", nt.Name, value)
			continue
		}
		right := "-"
		if r.HasRight {
			right = cfg.FormatValue(r.Right)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", nt.Name, value, cfg.FormatValue(r.Left), right,
			cfg.FormatValue(float64(r.Progression)))
	}
	return tw.Flush()
}
