package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fracpoint/internal/point"
)

func pointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Operate on two points given as X1 Y1 X2 Y2",
	}
	cmd.AddCommand(
		pointBinaryCmd("add", "Add two points component-wise", func(a, b point.Point) string {
			return a.Add(b).String()
		}),
		pointBinaryCmd("dot", "Dot product of two points", func(a, b point.Point) string {
			return point.FormatCoord(a.Dot(b))
		}),
		pointBinaryCmd("mid", "Midpoint of two points", func(a, b point.Point) string {
			return a.Midpoint(b).String()
		}),
	)
	return cmd
}

// pointBinaryCmd builds a subcommand printing op(a, b). Point operations
// cannot fail once both operands parse.
func pointBinaryCmd(name, short string, op func(a, b point.Point) string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [X1 Y1 X2 Y2]",
		Short: short,
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, tb, err := operandPair(args)
			if err != nil {
				return err
			}
			a, err := point.Parse(ta)
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			b, err := point.Parse(tb)
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}
			res := op(a, b)
			appCtx.Log.Debug().Str("op", name).Stringer("a", a).Stringer("b", b).Str("result", res).Msg("point operation")
			fmt.Fprintln(appCtx.Out, res)
			return nil
		},
	}
}
