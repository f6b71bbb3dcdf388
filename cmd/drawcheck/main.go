// Command drawcheck runs drawing structure scenarios and reports every
// mismatch between a recorded tree and its command list.
//
// Usage:
//
//	drawcheck [--list] [--run name,...] [--replay] [--trace] [-v]
//
// With no --run flag every registered scenario runs. The exit status is 1
// if any scenario fails or reports a mismatch.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/drawing"
	"github.com/gogpu/drawing/recording"
	_ "github.com/gogpu/drawing/recording/backends/trace"
	"github.com/gogpu/drawing/scenario"
	"github.com/gogpu/drawing/verify"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("drawcheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		list    = flags.Bool("list", false, "list scenarios and exit")
		names   = flags.StringSlice("run", nil, "comma-separated scenarios to run (default all)")
		replay  = flags.Bool("replay", false, "also verify the tree rebuilt by playback")
		trace   = flags.Bool("trace", false, "print the command trace of each scenario")
		verbose = flags.BoolP("verbose", "v", false, "log traversal at debug level")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	drawing.SetLogger(logger)
	defer drawing.SetLogger(nil)

	if *list {
		for _, s := range scenario.All() {
			fmt.Fprintf(stdout, "%-14s %-6s %s\n", s.Name, s.Target, s.Description)
		}
		return 0
	}

	if len(*names) == 0 {
		*names = scenario.Names()
	}

	opts := []scenario.RunOption{scenario.WithLogger(logger)}
	if *replay {
		opts = append(opts, scenario.WithReplay())
	}

	failed := 0
	for _, name := range *names {
		res, err := scenario.Run(name, opts...)
		if err != nil {
			fmt.Fprintf(stdout, "FAIL %s: %v\n", name, err)
			failed++
			continue
		}

		if *trace {
			if err := writeTrace(stdout, res.Recording); err != nil {
				fmt.Fprintf(stdout, "FAIL %s: trace: %v\n", name, err)
				failed++
				continue
			}
		}

		if res.Passed() {
			fmt.Fprintf(stdout, "ok   %s (%d commands)\n", name, res.Recording.Len())
			continue
		}
		failed++
		fmt.Fprintf(stdout, "FAIL %s\n", name)
		printMismatches(stdout, "", res.Mismatches)
		printMismatches(stdout, "replay ", res.ReplayMismatches)
	}

	if failed > 0 {
		fmt.Fprintf(stdout, "%d of %d scenarios failed\n", failed, len(*names))
		return 1
	}
	return 0
}

func printMismatches(w io.Writer, prefix string, ms []verify.Mismatch) {
	for _, m := range ms {
		fmt.Fprintf(w, "    %s%s\n", prefix, m)
	}
}

func writeTrace(w io.Writer, r *recording.Recording) error {
	b, err := recording.NewBackend("trace")
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("backend %T cannot write a trace", b)
	}
	if err := r.Playback(wb); err != nil {
		return err
	}
	_, err = wb.WriteTo(w)
	return err
}
