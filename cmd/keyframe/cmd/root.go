// Package cmd implements the keyframe CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (eval, sample, play, presets, match, info,
// validate).
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-drift/keyframe/cmd/keyframe/internal/config"
	"github.com/go-drift/keyframe/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "keyframe",
	Short: "keyframe - evaluate keyframe animation curves",
	Long: `keyframe reads animation documents (YAML or JSON lists of named
tracks) and evaluates them at arbitrary times with sub-frame precision.

Use "keyframe <command> --help" for more information about a command.`,
	Usage: "keyframe <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output.
var stdout io.Writer = os.Stdout

// configDir is set by --config-dir.
var configDir string

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:])
}

// ExecuteArgs runs the CLI with the given arguments. A failing command is
// reported to the errors handler before its error is returned. --verbose
// switches to a verbose LogHandler for the duration of the call.
func ExecuteArgs(args []string) error {
	if slices.Contains(args, "--verbose") {
		var out io.Writer
		if lh, ok := errors.Handler().(*errors.LogHandler); ok {
			out = lh.Out
		}
		prev := errors.SetHandler(&errors.LogHandler{Verbose: true, Out: out})
		defer errors.SetHandler(prev)
	}
	err := execute(args)
	if err != nil {
		errors.ReportErr("keyframe", err)
	}
	return err
}

func execute(args []string) error {
	configDir = ""

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "keyframe version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
		case "--config-dir":
			if i+1 < len(args) {
				configDir = args[i+1]
				i++
			} else {
				return usageError("--config-dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				configDir = strings.TrimPrefix(arg, "--config-dir=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return usageError("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// loadConfig resolves keyframe.yaml from --config-dir, $KEYFRAME_CONFIG_DIR
// or the working directory, in that order.
func loadConfig() (*config.Resolved, error) {
	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.Dir(); err != nil {
			return nil, errors.New("config.Dir", errors.KindConfig, err)
		}
	}
	return config.Resolve(dir)
}

func usageError(format string, args ...any) error {
	return errors.Errorf("cmd", errors.KindCommand, format, args...)
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --verbose            Report errors with operation and location")
	fmt.Fprintln(w, "  --config-dir DIR     Read keyframe.yaml from DIR")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  KEYFRAME_CONFIG_DIR  Config directory (lower priority than --config-dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  keyframe eval anim.yaml 1.25      Evaluate every track at t=1.25")
	fmt.Fprintln(w, "  keyframe sample anim.yaml 0 2     Tabulate tracks from 0 to 2")
	fmt.Fprintln(w, "  keyframe match .42 0 .58 1        Name a CSS cubic-bezier")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
