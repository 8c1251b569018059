package cmd

import (
	"fmt"
	"math"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/keyframe"
	"github.com/go-drift/keyframe/pkg/timetick"
)

// maxSamples bounds the rows sample will print.
const maxSamples = 100_000

func init() {
	RegisterCommand(&Command{
		Name:  "sample",
		Short: "Tabulate tracks over a time range",
		Long: `Evaluate tracks on a fixed grid and print one row per step.

The range defaults to the span covered by the selected tracks. The step
defaults to sample.step from keyframe.yaml, or one frame at timeline.fps.
Times are read and printed in the configured timeline unit.`,
		Usage: "keyframe sample <document> [start end] [--step STEP] [--track NAME]...",
		Run:   runSample,
	})
}

func runSample(args []string) error {
	names, args, err := takeFlag(args, "--track")
	if err != nil {
		return err
	}
	stepArg, hasStep, args, err := takeLast(args, "--step")
	if err != nil {
		return err
	}
	if err := rejectFlags(args); err != nil {
		return err
	}
	if err := wantArgs(args, 1, "keyframe sample <document> [start end]"); err != nil {
		return err
	}
	if len(args) != 1 && len(args) != 3 {
		return usageError("sample takes either no range or both start and end")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := document.ReadFile(args[0])
	if err != nil {
		return err
	}
	tracks, err := selectTracks(doc, names)
	if err != nil {
		return err
	}

	step := cfg.Step
	if hasStep {
		if step, err = cfg.ParseTime(stepArg); err != nil {
			return errors.New("cmd.sample", errors.KindCommand, err)
		}
		if !(step.Value() > 0) {
			return usageError("--step must be positive")
		}
	}

	var start, end timetick.TimeTick
	if len(args) == 3 {
		if start, err = cfg.ParseTime(args[1]); err != nil {
			return errors.New("cmd.sample", errors.KindCommand, err)
		}
		if end, err = cfg.ParseTime(args[2]); err != nil {
			return errors.New("cmd.sample", errors.KindCommand, err)
		}
	} else {
		var ok bool
		if start, end, ok = timeRange(tracks); !ok {
			return errors.Errorf("cmd.sample", errors.KindLookup, "%s has no keyframes to sample", args[0])
		}
	}
	if !start.IsFinite() || !end.IsFinite() {
		return usageError("sample range must be finite (got %v..%v)", start, end)
	}
	if end.Less(start) {
		return usageError("end %v is before start %v", end, start)
	}

	steps := math.Floor(end.Sub(start).Ratio(step) + 1e-9)
	if !(steps+1 <= maxSamples) {
		return usageError("range needs %.0f samples (limit %d); use a larger --step", steps+1, maxSamples)
	}

	tw := newTable()
	fmt.Fprint(tw, "time")
	for _, nt := range tracks {
		fmt.Fprintf(tw, "\t%s", nt.Name)
	}
	fmt.Fprintln(tw)
	for i := 0; i <= int(steps); i++ {
		at := start.Add(step.Mul(float64(i)))
		fmt.Fprint(tw, cfg.FormatTime(at))
		for _, nt := range tracks {
			if v, ok := keyframe.Sample(nt.Track, at, animation.Float64{}); ok {
				fmt.Fprintf(tw, "\t%s", cfg.FormatValue(v))
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
