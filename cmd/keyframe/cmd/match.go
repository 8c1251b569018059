package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/keyframe/pkg/animation"
	"github.com/go-drift/keyframe/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "match",
		Short: "Name a CSS cubic-bezier tuple",
		Long: `Find the first catalog preset whose handles are within tolerance of a
CSS cubic-bezier(x1, y1, x2, y2) tuple.

The tuple may be given as four numbers or as a single
"cubic-bezier(x1, y1, x2, y2)" string. The tolerance defaults to
match.tolerance from keyframe.yaml.`,
		Usage: "keyframe match <x1> <y1> <x2> <y2> [--tolerance TOL]",
		Run:   runMatch,
	})
}

func runMatch(args []string) error {
	tolArg, hasTol, args, err := takeLast(args, "--tolerance")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tol := cfg.Tolerance
	if hasTol {
		v, err := strconv.ParseFloat(tolArg, 32)
		if err != nil || !(v > 0) {
			return usageError("invalid --tolerance %q", tolArg)
		}
		tol = float32(v)
	}

	css, err := parseCSS(args)
	if err != nil {
		return err
	}
	h := animation.HandlesFromCSS(css[0], css[1], css[2], css[3])
	p, ok := animation.MatchPreset(h, tol)
	if !ok {
		return errors.Errorf("cmd.match", errors.KindLookup,
			"no preset within %g of cubic-bezier(%g, %g, %g, %g)", tol, css[0], css[1], css[2], css[3])
	}
	fmt.Fprintln(stdout, p.Name())
	return nil
}

// parseCSS accepts "x1 y1 x2 y2", "x1,y1,x2,y2" or "cubic-bezier(x1, y1, x2, y2)".
func parseCSS(args []string) ([4]float32, error) {
	var out [4]float32
	joined := strings.Join(args, " ")
	joined = strings.TrimSpace(joined)
	joined = strings.TrimPrefix(joined, "cubic-bezier")
	joined = strings.Trim(joined, "() ")
	fields := strings.FieldsFunc(joined, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 4 {
		return out, usageError("expected four numbers, got %d\n\nUsage: keyframe match <x1> <y1> <x2> <y2>", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return out, usageError("invalid number %q", f)
		}
		out[i] = float32(v)
	}
	return out, nil
}
