package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxygene76/linalg/internal/types"
	"github.com/oxygene76/linalg/pkg/linalg"
)

func lineCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "2D line queries",
		Long: `Queries on lines in the plane. A line is written as normal=constant:
"7.204,3.182=8.68" is the line 7.204x_1 + 3.182x_2 = 8.68.`,
	}

	cmd.AddCommand(
		lineShowCmd(a),
		lineParallelCmd(a),
		lineEqualCmd(a),
		lineIntersectCmd(a),
	)

	return cmd
}

func lineShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <line>",
		Short: "Print the line equation and its basepoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			const name = "line show"

			lines, err := a.parseLines(args)
			if err != nil {
				return a.fail(name, args, err)
			}
			l := lines[0]

			result := types.NewResult(name, args...).WithText(l.String())
			if bp, ok := l.Basepoint(); ok {
				result.WithVector(a.coordinates(bp)).AddMetadata("basepoint", bp.String())
			} else {
				result.AddMetadata("basepoint", "none")
			}
			return a.print(cmd, result)
		},
	}
}

func lineParallelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parallel <line> <line>",
		Short: "Whether two lines are parallel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			const name = "line parallel"

			lines, err := a.parseLines(args)
			if err != nil {
				return a.fail(name, args, err)
			}
			ok, err := lines[0].IsParallel(lines[1])
			if err != nil {
				return a.fail(name, args, err)
			}
			return a.print(cmd, a.booleanResult(name, args, ok))
		},
	}
}

func lineEqualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <line> <line>",
		Short: "Whether two lines describe the same points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			const name = "line equal"

			lines, err := a.parseLines(args)
			if err != nil {
				return a.fail(name, args, err)
			}
			ok, err := lines[0].AreEqual(lines[1])
			if err != nil {
				return a.fail(name, args, err)
			}
			return a.print(cmd, a.booleanResult(name, args, ok))
		},
	}
}

func lineIntersectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <line> <line>",
		Short: "Intersection point of two lines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			const name = "line intersect"

			lines, err := a.parseLines(args)
			if err != nil {
				return a.fail(name, args, err)
			}
			a.logger.Debug("intersecting lines", "first", lines[0].String(), "second", lines[1].String())

			got, err := lines[0].Intersection(lines[1])
			if err != nil {
				return a.fail(name, args, err)
			}

			result := types.NewResult(name, args...).
				WithKind(got.Kind.String()).
				WithText(got.String())
			if got.Kind == linalg.PointIntersection {
				result.WithVector(a.coordinates(got.Point))
			}
			return a.print(cmd, result)
		},
	}
}

func (a *app) parseLines(args []string) ([]linalg.Line, error) {
	lines := make([]linalg.Line, len(args))
	for i, arg := range args {
		l, err := linalg.ParseLine(arg, a.lineOptions()...)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		lines[i] = l
	}
	return lines, nil
}
