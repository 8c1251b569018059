package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/errors"
	"github.com/go-drift/keyframe/pkg/keyframe"
)

// frameTicker delivers one tick per frame. Tests replace it.
var frameTicker = func(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play tracks back in real time",
		Long: `Play a document back against the wall clock, printing every track's
value once per frame at timeline.fps.

Playback runs from the first to the last keyframe. --rate scales playback
speed (negative plays backwards from the end). --loop repeats the range
until interrupted; --frames stops after a fixed number of printed frames.`,
		Usage: "keyframe play <document> [--rate RATE] [--loop] [--frames N] [--track NAME]...",
		Run:   runPlay,
	})
}

func runPlay(args []string) error {
	names, args, err := takeFlag(args, "--track")
	if err != nil {
		return err
	}
	rateArg, hasRate, args, err := takeLast(args, "--rate")
	if err != nil {
		return err
	}
	framesArg, hasFrames, args, err := takeLast(args, "--frames")
	if err != nil {
		return err
	}
	loop, args := takeBool(args, "--loop")
	if err := rejectFlags(args); err != nil {
		return err
	}
	if err := wantArgs(args, 1, "keyframe play <document>"); err != nil {
		return err
	}

	rate := 1.0
	if hasRate {
		if rate, err = strconv.ParseFloat(rateArg, 64); err != nil || rate == 0 {
			return usageError("invalid --rate %q", rateArg)
		}
	}
	maxFrames := -1
	if hasFrames {
		if maxFrames, err = strconv.Atoi(framesArg); err != nil || maxFrames < 1 {
			return usageError("invalid --frames %q", framesArg)
		}
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
	start, end, ok := timeRange(tracks)
	if !ok {
		return errors.Errorf("cmd.play", errors.KindLookup, "%s has no keyframes to play", args[0])
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	origin := start
	if rate < 0 {
		origin = end
	}
	ph := animation.NewPlayhead(origin)
	ph.Rate = rate
	if loop {
		ph.Loop(start, end)
	}

	ticks, stopTicks := frameTicker(cfg.FrameDuration())
	defer stopTicks()

	ph.Play()
	for printed := 0; maxFrames < 0 || printed < maxFrames; printed++ {
		pos := ph.Position()
		done := !loop && (pos.Less(start) || end.Less(pos))
		if done {
			pos = pos.Clamp(start, end)
		}
		fmt.Fprint(stdout, cfg.FormatTime(pos))
		for _, nt := range tracks {
			if v, ok := keyframe.Sample(nt.Track, pos, animation.Float64{}); ok {
				fmt.Fprintf(stdout, "\t%s=%s", nt.Name, cfg.FormatValue(v))
			} else {
				fmt.Fprintf(stdout, "\t%s=-", nt.Name)
			}
		}
		fmt.Fprintln(stdout)
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			ph.Pause()
			return nil
		case <-ticks:
		}
	}
	return nil
}
