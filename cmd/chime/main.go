package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/minicodemonkey/chime/internal/cmd"
	"github.com/minicodemonkey/chime/internal/config"
	"github.com/minicodemonkey/chime/internal/paths"
)

func main() {
	color := term.IsTerminal(os.Stdout.Fd())
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, color))
}

// run dispatches a command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, color bool) int {
	if len(args) == 0 {
		return report(stderr, cmd.RunRender(cmd.RenderOptions{Out: stdout, Color: color}))
	}

	name, rest := args[0], args[1:]
	switch name {
	case "render":
		fs, variant := newFlagSet("render", stderr)
		output := fs.String("output", "", "output file (default: "+paths.DefaultFilename+", suffixed for other variants)")
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		return report(stderr, cmd.RunRender(cmd.RenderOptions{
			Variant: *variant,
			Output:  *output,
			Out:     stdout,
			Color:   color,
		}))

	case "preset":
		fs, variant := newFlagSet("preset", stderr)
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		return report(stderr, cmd.RunPreset(cmd.PresetOptions{Variant: *variant, Out: stdout, Color: color}))

	case "list":
		return report(stderr, cmd.RunList(cmd.ListOptions{Out: stdout}))

	case "inspect":
		fs, variant := newFlagSet("inspect", stderr)
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		return report(stderr, cmd.RunInspect(cmd.InspectOptions{Variant: *variant}))

	case "help", "-h", "--help":
		printUsage(stdout)
		return 0

	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
		printUsage(stderr)
		return 1
	}
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	variant := fs.String("variant", config.DefaultVariant, "sound variant ("+strings.Join(config.Names(), ", ")+")")
	return fs, variant
}

func report(stderr io.Writer, err error) int {
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `chime renders the scan confirmation sound.

Usage:
  chime                      Render the default variant into the current directory
  chime render [flags]       Render a variant to a WAV file
  chime preset [flags]       Print a variant's parameters as YAML
  chime list                 List the available variants
  chime inspect [flags]      Open the waveform and pitch inspector
  chime help                 Show this help

Flags:
  --variant NAME             Variant to use (default: confirm)
  --output PATH              Output file for render
`)
}
