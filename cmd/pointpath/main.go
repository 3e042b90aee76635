// seehuhn.de/go/pointpath - rebuild vector paths from point lists
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pointpath rebuilds vector paths from point lists.
//
// Usage:
//
//	pointpath calls FILE            print the drawing operations
//	pointpath render FILE -o OUT    draw into a PNG, PDF or SVG file
//	pointpath cases                 list the built-in test cases
//
// FILE is a YAML or JSON list of [x, y] pairs, a GeoJSON LineString or
// MultiPoint, or "-" for stdin.  Instead
// of a file, a built-in test case can be selected with --case.
// Settings are read from pointpath.yaml, if present.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pointpath"
	"seehuhn.de/go/pointpath/draw"
	"seehuhn.de/go/pointpath/testcases"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the values of the command line flags.
type options struct {
	configFile string
	verbose    bool
	rtol, atol float64
	caseName   string
	width      int
	height     int
	output     string
	applyCTM   bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opt := &options{}

	root := &cobra.Command{
		Use:           "pointpath",
		Short:         "Rebuild vector paths from point lists",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opt.verbose {
				level = slog.LevelDebug
			}
			pointpath.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opt.configFile, "config", defaultConfigFile, "configuration file")
	pf.BoolVarP(&opt.verbose, "verbose", "v", false, "log the subpath ranges")
	pf.Float64Var(&opt.rtol, "rtol", pointpath.DefaultTolerance.RTol, "relative tolerance for point comparisons")
	pf.Float64Var(&opt.atol, "atol", pointpath.DefaultTolerance.ATol, "absolute tolerance for point comparisons")

	calls := &cobra.Command{
		Use:   "calls [FILE]",
		Short: "Print the drawing operations for a point list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, s, err := opt.resolve(cmd, args)
			if err != nil {
				return err
			}
			rec := &draw.Recorder{}
			var ctx pointpath.Context = rec
			if opt.applyCTM {
				ctx = draw.Transform{Ctx: rec, M: s.CTM}
			}
			e := pointpath.Emitter{Tolerance: s.Tolerance}
			if err := e.EmitPath(ctx, src); err != nil {
				return err
			}
			for _, c := range rec.Calls {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	calls.Flags().StringVar(&opt.caseName, "case", "", "use the named built-in test case")
	calls.Flags().BoolVar(&opt.applyCTM, "ctm", false, "apply the transformation matrix to the coordinates")

	renderCmd := &cobra.Command{
		Use:   "render [FILE] -o OUT",
		Short: "Draw a point list into a PNG, PDF or SVG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, s, err := opt.resolve(cmd, args)
			if err != nil {
				return err
			}
			e := pointpath.Emitter{Tolerance: s.Tolerance}
			return render(e, src, s, opt.output)
		},
	}
	rf := renderCmd.Flags()
	rf.StringVar(&opt.caseName, "case", "", "use the named built-in test case")
	rf.StringVarP(&opt.output, "output", "o", "", "output file (.png, .pdf or .svg)")
	rf.IntVar(&opt.width, "width", 0, "canvas width")
	rf.IntVar(&opt.height, "height", 0, "canvas height")
	renderCmd.MarkFlagRequired("output")

	cases := &cobra.Command{
		Use:   "cases",
		Short: "List the built-in test cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					fmt.Fprintf(w, "%s_%s\t%d points\t%d subpaths\t%d closed\n",
						category, tc.Name, len(tc.Points), tc.Subpaths, tc.Closed)
				}
			}
			return nil
		},
	}

	root.AddCommand(calls, renderCmd, cases)
	return root
}

// resolve finds the point source and merges the settings from the test
// case, the configuration file and the command line, in this order.
func (opt *options) resolve(cmd *cobra.Command, args []string) (pointpath.PointSource, settings, error) {
	s := defaultSettings()

	var src pointpath.PointSource
	switch {
	case opt.caseName != "" && len(args) > 0:
		return nil, s, fmt.Errorf("cannot use both a file and --case")
	case opt.caseName != "":
		tc, ok := testcases.Lookup(opt.caseName)
		if !ok {
			return nil, s, fmt.Errorf("unknown test case %q", opt.caseName)
		}
		s.fromTestCase(tc)
		src = pointpath.Points(tc.Points)
	case len(args) == 1:
		src = fileSource(args[0], cmd.InOrStdin())
	default:
		return nil, s, fmt.Errorf("need a point file or --case")
	}

	flags := cmd.Flags()
	cfg, err := LoadConfig(opt.configFile, flags.Changed("config"))
	if err != nil {
		return nil, s, err
	}
	if flags.Changed("rtol") {
		cfg.Tolerance.RTol = &opt.rtol
	}
	if flags.Changed("atol") {
		cfg.Tolerance.ATol = &opt.atol
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = opt.width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = opt.height
	}
	if err := s.apply(cfg); err != nil {
		return nil, s, err
	}
	return src, s, nil
}
