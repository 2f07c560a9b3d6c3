package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"palwatch/internal/errors"
	"palwatch/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(env *ops.Env) *cli.App {
	app := &cli.App{
		Name:    "palwatch",
		Usage:   "Game-save watcher: snapshot diffs, save events, play patterns",
		Version: Version,
		Commands: []*cli.Command{
			observeCmd(env),
			diffCmd(),
			recentCmd(env),
			sessionCmd(env),
			statsCmd(env),
			trendsCmd(env),
			reportCmd(env),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// observeCmd creates the observe command.
func observeCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "observe",
		Usage:     "Record one parsed world-state file as a save event",
		ArgsUsage: "<state.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("path to a world-state file is required"))
			}

			output, err := ops.Observe(env, ops.ObserveInput{StatePath: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// diffCmd creates the diff command.
func diffCmd() *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "Diff two snapshot files without recording anything",
		ArgsUsage: "<new.json> <old.json>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("two snapshot paths are required: new and old"))
			}

			output, err := ops.DiffSnapshots(ops.DiffInput{
				NewPath: c.Args().Get(0),
				OldPath: c.Args().Get(1),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// recentCmd creates the recent command.
func recentCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "recent",
		Usage: "List the most recent save events, oldest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Maximum events to return (default 10, max 100)"},
			&cli.BoolFlag{Name: "all", Usage: "Read the full archive instead of the rolling log"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Recent(env, ops.RecentInput{
				Limit: c.Int("limit"),
				All:   c.Bool("all"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// sessionCmd creates the session command.
func sessionCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Summarize the most recent play session",
		Action: func(c *cli.Context) error {
			output, err := ops.Session(env)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// statsCmd creates the stats command.
func statsCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Report event totals and save patterns across the retained history",
		Action: func(c *cli.Context) error {
			output, err := ops.Stats(env)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// trendsCmd creates the trends command.
func trendsCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "trends",
		Usage: "Report heuristic trend observations over the recent history window",
		Action: func(c *cli.Context) error {
			output, err := ops.Trends(env)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// reportCmd creates the report command.
func reportCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Render an observation report into the reports directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "markdown", Usage: "Report format: markdown|html"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Recent events included (default 10, max 100)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Report(env, ops.ReportInput{
				Format: ops.ReportFormat(c.String("format")),
				Limit:  c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// outputJSON writes indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if wErr, ok := err.(*errors.WatchError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", wErr.Code, wErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
