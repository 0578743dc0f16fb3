package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/coregx/regolith"
	coregexengine "github.com/coregx/regolith/engine/coregex"
)

// errNoMatch makes `regolith test` exit with status 1 without a message.
var errNoMatch = errors.New("no match")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:                   "regolith",
		Usage:                  "JavaScript-flavored regular expressions on Go regex engines",
		Version:                version,
		UseShortOptionHandling: true,
		Writer:                 a.stdout,
		ErrWriter:              a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "engine",
				Aliases: []string{"e"},
				Usage:   "Regex engine to compile with (see `regolith engines`)",
				Value:   regolith.DefaultEngine,
			},
			&cli.StringFlag{
				Name:    "flags",
				Aliases: []string{"f"},
				Usage:   "Regex flags: g (global), i (ignore case), m (multiline), s (dot all)",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Reject unknown or repeated flag characters",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print results as JSON even on a terminal",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log compilation details to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "test",
				Usage:     "Report whether INPUT contains a match (exit status 1 if not)",
				ArgsUsage: "<pattern> <input>",
				Action:    a.testAction,
			},
			{
				Name:      "exec",
				Usage:     "Print the first match and its capture groups",
				ArgsUsage: "<pattern> <input>",
				Action:    a.execAction,
			},
			{
				Name:      "match",
				Usage:     "Print the first match, or every match with the g flag",
				ArgsUsage: "<pattern> <input>",
				Action:    a.matchAction,
			},
			{
				Name:      "replace",
				Usage:     "Replace the first match, or every match with the g flag",
				ArgsUsage: "<pattern> <input> <replacement>",
				Action:    a.replaceAction,
			},
			{
				Name:      "search",
				Usage:     "Print the character offset of the first match, or -1",
				ArgsUsage: "<pattern> <input>",
				Action:    a.searchAction,
			},
			{
				Name:      "split",
				Usage:     "Split INPUT around matches",
				ArgsUsage: "<pattern> <input>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Return at most this many pieces (0 means all)",
					},
				},
				Action: a.splitAction,
			},
			{
				Name:   "engines",
				Usage:  "List the available regex engines",
				Action: a.enginesAction,
			},
		},
	}
}

// compile builds the RegExp named by the first argument from the global
// options, and returns it with the input text, which is the second argument
// or stdin when the argument is "-".
func (a *app) compile(cmd *cli.Command, nargs int, usage string) (*regolith.RegExp, []string, error) {
	if cmd.NArg() != nargs {
		return nil, nil, fmt.Errorf("usage: regolith %s %s", cmd.Name, usage)
	}

	config := regolith.DefaultConfig()
	config.EngineName = cmd.String("engine")
	config.StrictFlags = cmd.Bool("strict")

	start := time.Now()
	re, err := regolith.CompileWithConfig(cmd.Args().First(), cmd.String("flags"), config)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Bool("verbose") {
		logger := log.New(a.stderr, "regolith: ", 0)
		logger.Printf("compiled %s with engine %s in %s", re, re.Engine(), time.Since(start))
	}

	args := cmd.Args().Slice()[1:]
	if args[0] == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		args[0] = strings.TrimSuffix(string(data), "\n")
	}
	return re, args, nil
}

func (a *app) testAction(ctx context.Context, cmd *cli.Command) error {
	re, args, err := a.compile(cmd, 2, "<pattern> <input>")
	if err != nil {
		return err
	}
	ok := re.Test(args[0])
	if err := a.print(cmd, ok); err != nil {
		return err
	}
	if !ok {
		return errNoMatch
	}
	return nil
}

func (a *app) execAction(ctx context.Context, cmd *cli.Command) error {
	re, args, err := a.compile(cmd, 2, "<pattern> <input>")
	if err != nil {
		return err
	}
	return a.print(cmd, re.Exec(args[0]))
}

func (a *app) matchAction(ctx context.Context, cmd *cli.Command) error {
	re, args, err := a.compile(cmd, 2, "<pattern> <input>")
	if err != nil {
		return err
	}
	return a.print(cmd, re.Match(args[0]))
}

func (a *app) replaceAction(ctx context.Context, cmd *cli.Command) error {
	re, args, err := a.compile(cmd, 3, "<pattern> <input> <replacement>")
	if err != nil {
		return err
	}
	return a.print(cmd, re.Replace(args[0], args[1]))
}

func (a *app) searchAction(ctx context.Context, cmd *cli.Command) error {
	re, args, err := a.compile(cmd, 2, "<pattern> <input>")
	if err != nil {
		return err
	}
	return a.print(cmd, re.Search(args[0]))
}

func (a *app) splitAction(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	if limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", limit)
	}
	re, args, err := a.compile(cmd, 2, "[--limit N] <pattern> <input>")
	if err != nil {
		return err
	}
	return a.print(cmd, re.Split(args[0], uint(limit)))
}

type enginesReport struct {
	Engines  []string        `json:"engines"`
	Default  string          `json:"default"`
	Features map[string]bool `json:"coregex_features"`
}

func (a *app) enginesAction(ctx context.Context, cmd *cli.Command) error {
	report := enginesReport{
		Engines:  regolith.Engines(),
		Default:  regolith.DefaultEngine,
		Features: coregexengine.Features(),
	}
	if a.jsonOutput(cmd) {
		return json.NewEncoder(a.stdout).Encode(report)
	}
	for _, name := range report.Engines {
		if name == report.Default {
			name += " (default)"
		}
		fmt.Fprintln(a.stdout, name)
	}
	return nil
}

// jsonOutput reports whether results are printed as JSON: when asked for,
// or when stdout is not a terminal.
func (a *app) jsonOutput(cmd *cli.Command) bool {
	if cmd.Bool("json") {
		return true
	}
	f, ok := a.stdout.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

// print writes a result as one JSON value, or as lines on a terminal.
func (a *app) print(cmd *cli.Command, v any) error {
	if a.jsonOutput(cmd) {
		return json.NewEncoder(a.stdout).Encode(v)
	}
	return a.printLines(v)
}

// printLines writes slices one element per line and a nil slice as "null".
func (a *app) printLines(v any) error {
	if list, ok := v.([]string); ok {
		if list == nil {
			_, err := fmt.Fprintln(a.stdout, "null")
			return err
		}
		_, err := fmt.Fprintln(a.stdout, strings.Join(list, "\n"))
		return err
	}
	_, err := fmt.Fprintln(a.stdout, v)
	return err
}
