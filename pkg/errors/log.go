package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that writes one line per error.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a KeyframeError.
func (h *LogHandler) HandleError(err *KeyframeError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprintf(w, "[keyframe error] %s", err.Op)
	if h.Verbose {
		fmt.Fprintf(w, " [%s]", err.Kind)
	}
	if err.Path != "" {
		fmt.Fprintf(w, " at %s", err.Path)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[keyframe panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[keyframe panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
