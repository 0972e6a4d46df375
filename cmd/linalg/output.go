package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/linalg/internal/types"
	"github.com/oxygene76/linalg/pkg/linalg"
)

// print writes a result in the configured output format.
func (a *app) print(cmd *cobra.Command, result *types.Result) error {
	out := cmd.OutOrStdout()

	switch a.config.Output.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(out, result.Text)
		return err
	}
}

func (a *app) scalar(x float64) string {
	return linalg.FormatDecimal(x, a.config.Output.DecimalPlaces)
}

func (a *app) coordinates(v linalg.Vector) []string {
	coords := v.Coordinates()
	out := make([]string, len(coords))
	for i, x := range coords {
		out[i] = a.scalar(x)
	}
	return out
}

func (a *app) vectorResult(op string, args []string, v linalg.Vector) *types.Result {
	return types.NewResult(op, args...).
		WithVector(a.coordinates(v)).
		WithText(v.String())
}

func (a *app) scalarResult(op string, args []string, x float64) *types.Result {
	s := a.scalar(x)
	return types.NewResult(op, args...).
		WithScalar(s).
		WithText(s)
}

func (a *app) booleanResult(op string, args []string, b bool) *types.Result {
	return types.NewResult(op, args...).
		WithBoolean(b).
		WithText(fmt.Sprintf("%t", b))
}

// fail logs a failed operation and hands the error back to cobra.
func (a *app) fail(op string, args []string, err error) error {
	a.logger.Error("operation failed", "op", op, "operands", args, "err", err)
	return fmt.Errorf("%s: %w", op, err)
}
