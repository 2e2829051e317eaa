package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/server"
	"github.com/katalvlaran/mazepath/solver"
	"github.com/katalvlaran/mazepath/statespace"
)

type solveFlags struct {
	json    bool
	render  bool
	arrows  bool
	heading string
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a maze read from a file or stdin",
		Long: `Solve reads a maze and prints the minimum route cost, the number of
cells on any optimal route and the fewest steps ignoring turns.

An unreachable end is not an error: it prints "unreachable" and the
fewest walls that would have to be removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, a, f, args)
		},
	}
	cmd.Flags().BoolVar(&f.json, "json", false, "print the full report as JSON")
	cmd.Flags().BoolVar(&f.render, "render", false, "print the maze with optimal cells marked")
	cmd.Flags().BoolVar(&f.arrows, "arrows", false, "with --render, draw one optimal route as heading arrows")
	cmd.Flags().StringVar(&f.heading, "heading", "", "start heading (east, south, west, north)")

	return cmd
}

func runSolve(cmd *cobra.Command, a *app, f *solveFlags, args []string) error {
	cfg := a.cfg
	if f.heading != "" {
		h, err := statespace.ParseHeading(f.heading)
		if err != nil {
			return fmt.Errorf("--heading: %w", err)
		}
		cfg.StartHeading = h
	}

	s, err := solver.New(cfg, a.logger)
	if err != nil {
		return err
	}

	in, name, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	g, err := s.Parse(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	rep, err := s.Solve(cmd.Context(), g)
	if err != nil {
		return err
	}

	var rendered string
	if f.render {
		if rendered, err = s.Render(g, rep, f.arrows); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if f.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.SolveResponse{Report: rep, Rendered: rendered})
	}

	return writeSummary(out, rep, rendered)
}

// openInput resolves the maze source: a named file, or stdin for "-" or
// no argument.
func openInput(cmd *cobra.Command, args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, err
	}

	return f, args[0], func() { f.Close() }, nil
}

func writeSummary(w io.Writer, rep *solver.Report, rendered string) error {
	var err error
	if rep.Reachable {
		_, err = fmt.Fprintf(w, "cost: %d\ntiles: %d\nmin_steps: %d\n", rep.Cost, rep.Tiles, rep.MinSteps)
	} else {
		_, err = fmt.Fprintln(w, "unreachable")
		if err == nil && rep.Breach != nil {
			_, err = fmt.Fprintf(w, "breach_walls: %d\n", rep.Breach.Walls)
		}
	}
	if err == nil && rendered != "" {
		_, err = io.WriteString(w, rendered)
	}

	return err
}
