package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxygene76/linalg/internal/types"
	"github.com/oxygene76/linalg/pkg/linalg"
)

// vectorOp is a binary or unary vector operation exposed as a subcommand.
type vectorOp struct {
	use   string
	short string
	arity int
	run   func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error)
}

func vectorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Vector arithmetic",
	}

	ops := []vectorOp{
		{"add <v> <w>", "Sum of two vectors", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].Add(vs[1])
			return a.vectorResult(op, args, v), err
		}},
		{"sub <v> <w>", "Difference v - w", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].Subtract(vs[1])
			return a.vectorResult(op, args, v), err
		}},
		{"mag <v>", "Euclidean norm", 1, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			return a.scalarResult(op, args, vs[0].Magnitude()), nil
		}},
		{"normalize <v>", "Unit vector in the direction of v", 1, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].Normalize()
			return a.vectorResult(op, args, v), err
		}},
		{"dot <v> <w>", "Dot product", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			dot, err := vs[0].Dot(vs[1])
			return a.scalarResult(op, args, dot), err
		}},
		{"angle <v> <w>", "Angle between two vectors", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			angle, err := vs[0].Angle(vs[1])
			if err != nil {
				return nil, err
			}
			return types.NewResult(op, args...).
				WithScalar(a.scalar(angle.Degrees)).
				AddMetadata("radians", a.scalar(angle.Radians)).
				WithText(fmt.Sprintf("%s rad (%s°)", a.scalar(angle.Radians), a.scalar(angle.Degrees))), nil
		}},
		{"orth <v> <w>", "Whether two vectors are orthogonal", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			ok, err := vs[0].IsOrthogonalWithin(vs[1], a.config.Precision.OrthogonalTolerance)
			return a.booleanResult(op, args, ok), err
		}},
		{"parallel <v> <w>", "Whether two vectors are parallel", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			ok, err := vs[0].IsParallelWithin(vs[1], a.config.Precision.ParallelTolerance)
			return a.booleanResult(op, args, ok), err
		}},
		{"classify <v> <w>", "Orthogonal, parallel or neither", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			r, err := vs[0].ClassifyWithin(vs[1], a.config.Tolerance())
			if err != nil {
				return nil, err
			}
			res := types.NewResult(op, args...).
				WithKind(r.Kind.String()).
				WithScalar(a.scalar(r.Dot)).
				WithText(r.String())
			if r.Kind == linalg.Parallel {
				res.AddMetadata("degrees", a.scalar(r.Angle.Degrees))
			}
			return res, nil
		}},
		{"proj <v> <w>", "Projection of v onto w", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].ProjectOnto(vs[1])
			return a.vectorResult(op, args, v), err
		}},
		{"perp <v> <w>", "Component of v perpendicular to w", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].ProjectPerpendicular(vs[1])
			return a.vectorResult(op, args, v), err
		}},
		{"cross <v> <w>", "Cross product of two 3D vectors", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			v, err := vs[0].Cross(vs[1])
			return a.vectorResult(op, args, v), err
		}},
		{"area-parallelogram <v> <w>", "Area of the parallelogram spanned by two 3D vectors", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			area, err := vs[0].AreaOfParallelogram(vs[1])
			return a.scalarResult(op, args, area), err
		}},
		{"area-triangle <v> <w>", "Area of the triangle spanned by two 3D vectors", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			area, err := vs[0].AreaOfTriangle(vs[1])
			return a.scalarResult(op, args, area), err
		}},
		{"equal <v> <w>", "Exact element-wise equality", 2, func(a *app, op string, args []string, vs []linalg.Vector) (*types.Result, error) {
			return a.booleanResult(op, args, vs[0].Equal(vs[1])), nil
		}},
	}

	for _, op := range ops {
		cmd.AddCommand(a.vectorOpCmd(op))
	}
	cmd.AddCommand(scaleCmd(a))

	return cmd
}

func (a *app) vectorOpCmd(op vectorOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.ExactArgs(op.arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "vector " + cmd.Name()

			vs, err := parseVectors(args)
			if err != nil {
				return a.fail(name, args, err)
			}
			a.logger.Debug("running vector operation", "op", name, "operands", vs)

			result, err := op.run(a, name, args, vs)
			if err != nil {
				return a.fail(name, args, err)
			}
			return a.print(cmd, result)
		},
	}
}

func scaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale <v> <scalar>",
		Short: "Multiply every coordinate by a scalar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			const name = "vector scale"

			v, err := linalg.ParseVector(args[0])
			if err != nil {
				return a.fail(name, args, err)
			}
			c, err := linalg.ParseCoordinate(args[1])
			if err != nil {
				return a.fail(name, args, err)
			}
			scaled, err := v.ScalarMultiply(c)
			if err != nil {
				return a.fail(name, args, err)
			}
			return a.print(cmd, a.vectorResult(name, args, scaled))
		},
	}
}

func parseVectors(args []string) ([]linalg.Vector, error) {
	vs := make([]linalg.Vector, len(args))
	for i, arg := range args {
		v, err := linalg.ParseVector(arg)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		vs[i] = v
	}
	return vs, nil
}
