package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/keyframe"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Summarize a document",
		Long: `Print the document version and, for every track, the keyframe count,
time range, value range and the easing used by each segment.

Bezier segments are named after the matching catalog preset when one is
within match.tolerance; otherwise they are shown as "custom".`,
		Usage: "keyframe info <document>",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	if err := rejectFlags(args); err != nil {
		return err
	}
	if err := wantArgs(args, 1, "keyframe info <document>"); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := document.ReadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "version: %s\n", doc.Version)
	fmt.Fprintf(stdout, "tracks:  %d\n\n", len(doc.Tracks))

	tw := newTable()
	fmt.Fprintln(tw, "track\tkeyframes\ttime\tvalue\tspan\tsegments")
	for _, nt := range doc.Tracks {
		src := keyframe.SourceOf(nt.Track)
		start, end, ok := nt.Track.TimeRange()
		if !ok {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\t-\n", nt.Name)
			continue
		}
		lo, hi, _ := src.ValueRange()
		span, _ := keyframe.Extent(nt.Track, animation.Float64{})
		fmt.Fprintf(tw, "%s\t%d\t%s..%s\t%s..%s\t%s\t%s\n",
			nt.Name, src.Len(),
			cfg.FormatTime(start), cfg.FormatTime(end),
			cfg.FormatValue(float64(lo)), cfg.FormatValue(float64(hi)),
			cfg.FormatValue(float64(span)),
			describeSegments(nt.Track.Sorted(), cfg.Tolerance))
	}
	return tw.Flush()
}

func describeSegments(sorted []keyframe.Keyframe[float64], tol float32) string {
	segs := keyframe.Segments(sorted)
	if len(segs) == 0 {
		return "-"
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = segmentEasing(s, tol)
	}
	return strings.Join(parts, ", ")
}

func segmentEasing(s keyframe.Segment[float64], tol float32) string {
	switch {
	case !s.Left.ConnectedRight:
		return "disconnected"
	case !(s.Duration().Value() > 0):
		return "zero-length"
	case s.Left.Mode != keyframe.ModeBezier:
		return s.Left.Mode.String()
	}
	if p, ok := s.Preset(tol); ok {
		return p.Name()
	}
	return "custom"
}
