package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vexdse/area"
	"github.com/sarchlab/vexdse/record"
	"github.com/sarchlab/vexdse/scan"
	"github.com/sarchlab/vexdse/space"
)

// referencePoint is the configuration reported by "area" without
// arguments.
var referencePoint = space.Point{
	space.IssueWidth: 4,
	space.MemLoad:    1,
	space.MemStore:   1,
	space.MemPft:     1,
	space.Alu:        4,
	space.Mpy:        2,
	space.Memory:     1,
	space.R0:         64,
	space.B0:         8,
}

func (a *app) newAreaCommand() *cobra.Command {
	var weightsPath string

	cmd := &cobra.Command{
		Use:   "area [" + record.Usage + "]",
		Short: "Print the area estimate of one configuration",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != int(space.NumParams) {
				return &usageError{usage: record.Usage}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.loadModel(weightsPath)
			if err != nil {
				return err
			}

			p := referencePoint
			if len(args) > 0 {
				p, err = space.ParsePoint(args)
				if err != nil {
					return err
				}
			}
			if err := model.Validate(p); err != nil {
				return err
			}

			estimate := model.Estimate(p)
			a.logger.Debug("area estimate",
				"point", p.String(), "raw", estimate)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Value = %d\n", area.Report(estimate))
			return err
		},
	}

	cmd.Flags().StringVarP(&weightsPath, "weights", "w", "", "Path to area weights JSON file")
	// Values after the first one may be negative; a negative first value
	// needs a preceding "--".
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) newGenConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig " + record.Usage,
		Short: "Print the simulator machine configuration record",
		// Values are copied verbatim, including ones starting with '-'.
		DisableFlagParsing: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != int(space.NumParams) {
				return &usageError{usage: record.Usage}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return record.Write(cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) newGetIntCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "getint",
		Short: "Print the first integer found on standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := scan.FirstIntegerFrom(cmd.InOrStdin())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d", n)
			return err
		},
	}
}

func (a *app) newPermuteCommand() *cobra.Command {
	var rangesPath string

	cmd := &cobra.Command{
		Use:   "permute",
		Short: "Print every configuration of the design space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.enumerate(rangesPath)
			if err != nil {
				return err
			}

			return writeLines(cmd.OutOrStdout(), points, func(b []byte, p space.Point) []byte {
				return p.AppendTo(b)
			})
		},
	}

	cmd.Flags().StringVarP(&rangesPath, "ranges", "r", "", "Path to parameter ranges file (JSON or YAML)")
	return cmd
}

func (a *app) newExploreCommand() *cobra.Command {
	var rangesPath, weightsPath string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Print every configuration with its area estimate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := a.loadModel(weightsPath)
			if err != nil {
				return err
			}

			points, err := a.enumerate(rangesPath)
			if err != nil {
				return err
			}

			return writeLines(cmd.OutOrStdout(), points, func(b []byte, p space.Point) []byte {
				b = p.AppendTo(b)
				b = append(b, ' ')
				return strconv.AppendInt(b, int64(area.Report(model.Estimate(p))), 10)
			})
		},
	}

	cmd.Flags().StringVarP(&rangesPath, "ranges", "r", "", "Path to parameter ranges file (JSON or YAML)")
	cmd.Flags().StringVarP(&weightsPath, "weights", "w", "", "Path to area weights JSON file")
	return cmd
}

// loadModel returns the reference model, or one with the weights in path.
func (a *app) loadModel(path string) (*area.Model, error) {
	if path == "" {
		return area.NewModel(), nil
	}

	config, err := area.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("loaded area weights", "path", path)
	return area.NewModelWithConfig(config), nil
}

// enumerate returns the points of the default design space, or of the
// ranges in path.
func (a *app) enumerate(path string) (iter.Seq[space.Point], error) {
	ranges := space.DefaultRanges()
	if path != "" {
		var err error
		ranges, err = space.LoadRanges(path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded parameter ranges", "path", path)
	}

	a.logger.Debug("enumerating design space", "points", ranges.Count())
	return space.Enumerate(ranges)
}

// writeLines writes one line per point, built by format into a reused
// buffer.
func writeLines(
	w io.Writer,
	points iter.Seq[space.Point],
	format func([]byte, space.Point) []byte,
) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for p := range points {
		line = format(line[:0], p)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
