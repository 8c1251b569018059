// Command keyframe inspects and evaluates keyframe animation documents.
package main

import (
	"os"

	"github.com/go-drift/keyframe/cmd/keyframe/cmd"
	"github.com/go-drift/keyframe/pkg/errors"
)

func main() {
	defer errors.RecoverWithCallback("keyframe.main", func(any) { os.Exit(2) })
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
