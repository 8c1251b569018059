package cmd

import (
	"fmt"

	"github.com/go-drift/keyframe/pkg/document"
	"github.com/go-drift/keyframe/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check documents against the schema",
		Long: `Decode each document, checking it against the embedded JSON Schema and
the supported format version. Every file is checked; the command fails if
any of them is invalid.

--schema prints the schema instead.`,
		Usage: "keyframe validate <document>... | keyframe validate --schema",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	printSchema, args := takeBool(args, "--schema")
	if printSchema {
		fmt.Fprint(stdout, document.Schema())
		return nil
	}
	if err := rejectFlags(args); err != nil {
		return err
	}
	if err := wantArgs(args, 1, "keyframe validate <document>..."); err != nil {
		return err
	}

	failed := 0
	for _, path := range args {
		doc, err := document.ReadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s\n", path)
			errors.ReportErr("cmd.validate", err)
			continue
		}
		n := 0
		for _, nt := range doc.Tracks {
			n += nt.Track.Len()
		}
		fmt.Fprintf(stdout, "ok   %s (%s, %d tracks, %d keyframes)\n", path, doc.Version, len(doc.Tracks), n)
	}
	if failed > 0 {
		return errors.Errorf("cmd.validate", errors.KindSchema, "%d of %d documents invalid", failed, len(args))
	}
	return nil
}
