package cmd

import (
	"fmt"

	"github.com/go-drift/keyframe/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "presets",
		Short: "List easing presets",
		Long: `List the easing preset catalog with each preset's CSS cubic-bezier
tuple and the keyframe handles it converts to.

By default only the common presets are shown; --all lists the full
catalog in lookup order.`,
		Usage: "keyframe presets [--all]",
		Run:   runPresets,
	})
}

func runPresets(args []string) error {
	all, args := takeBool(args, "--all")
	if err := rejectFlags(args); err != nil {
		return err
	}
	if len(args) > 0 {
		return usageError("presets takes no arguments")
	}

	list := animation.CommonPresets()
	if all {
		list = animation.AllPresets()
	}

	tw := newTable()
	fmt.Fprintln(tw, "name\tcss\thandles")
	for _, p := range list {
		x1, y1, x2, y2 := p.CSS()
		h := p.Handles()
		fmt.Fprintf(tw, "%s\tcubic-bezier(%g, %g, %g, %g)\t[%g %g %g %g]\n",
			p.Name(), x1, y1, x2, y2, h.LeftX, h.LeftY, h.RightX, h.RightY)
	}
	return tw.Flush()
}
