package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxygene76/linalg/internal/types"
	"github.com/oxygene76/linalg/pkg/linalg"
)

func demoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample computations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.demo()
			if err != nil {
				return a.fail("demo", args, err)
			}
			for _, r := range results {
				if err := a.print(cmd, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) demo() ([]*types.Result, error) {
	var results []*types.Result

	crosses := [][2]linalg.Vector{
		{linalg.MustNewVector(8.462, 7.893, -8.187), linalg.MustNewVector(6.984, -5.975, 4.778)},
		{linalg.MustNewVector(5, 3, 2), linalg.MustNewVector(-1, 0, 3)},
	}
	for _, pair := range crosses {
		c, err := pair[0].Cross(pair[1])
		if err != nil {
			return nil, err
		}
		results = append(results, a.vectorResult("vector cross", operands(pair[0], pair[1]), c))
	}

	v, w := linalg.MustNewVector(-8.987, -9.838, 5.031), linalg.MustNewVector(-4.268, -1.861, -8.866)
	area, err := v.AreaOfParallelogram(w)
	if err != nil {
		return nil, err
	}
	results = append(results, a.scalarResult("vector area-parallelogram", operands(v, w), area))

	v, w = linalg.MustNewVector(1.5, 9.547, 3.691), linalg.MustNewVector(-6.007, 0.124, 5.772)
	area, err = v.AreaOfTriangle(w)
	if err != nil {
		return nil, err
	}
	results = append(results, a.scalarResult("vector area-triangle", operands(v, w), area))

	l1, err := linalg.NewLine(linalg.MustNewVector(7.204, 3.182), 8.68, a.lineOptions()...)
	if err != nil {
		return nil, err
	}
	l2, err := linalg.NewLine(linalg.MustNewVector(8.172, 4.114), 9.883, a.lineOptions()...)
	if err != nil {
		return nil, err
	}
	got, err := l1.Intersection(l2)
	if err != nil {
		return nil, err
	}
	r := types.NewResult("line intersect", l1.String(), l2.String()).
		WithKind(got.Kind.String()).
		WithText(got.String())
	if got.Kind == linalg.PointIntersection {
		r.WithVector(a.coordinates(got.Point))
	}
	results = append(results, r)

	return results, nil
}

func operands(vs ...linalg.Vector) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}
