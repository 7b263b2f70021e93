package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fracpoint/internal/fraction"
)

func fracCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frac",
		Short: "Operate on two fractions given as N1 D1 N2 D2",
	}
	cmd.AddCommand(
		fracBinaryCmd("add", "Add two fractions", func(a, b fraction.Fraction) (fraction.Fraction, error) {
			return a.Add(b), nil
		}),
		fracBinaryCmd("sub", "Subtract the second fraction from the first", func(a, b fraction.Fraction) (fraction.Fraction, error) {
			return a.Sub(b), nil
		}),
		fracBinaryCmd("mul", "Multiply two fractions", func(a, b fraction.Fraction) (fraction.Fraction, error) {
			return a.Mul(b), nil
		}),
		fracBinaryCmd("div", "Divide the first fraction by the second", fraction.Fraction.Div),
		fracCmpCmd(),
	)
	return cmd
}

// fracBinaryCmd builds a subcommand printing op(a, b).
func fracBinaryCmd(name, short string, op func(a, b fraction.Fraction) (fraction.Fraction, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [N1 D1 N2 D2]",
		Short: short,
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readFractions(args)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				appCtx.Log.Error().Err(err).Str("op", name).Stringer("a", a).Stringer("b", b).Msg("fraction operation failed")
				return fmt.Errorf("%s %s %s: %w", name, a, b, err)
			}
			appCtx.Log.Debug().Str("op", name).Stringer("a", a).Stringer("b", b).Stringer("result", res).Msg("fraction operation")
			fmt.Fprintln(appCtx.Out, res)
			return nil
		},
	}
}

// fracCmpCmd prints every relation between two fractions.
func fracCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp [N1 D1 N2 D2]",
		Short: "Compare two fractions",
		Long: "Compare two fractions with ==, !=, <, >, <= and >=.\n\n" +
			"Ordering compares cross products directly and is only correct when\n" +
			"both denominators are positive.",
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := readFractions(args)
			if err != nil {
				return err
			}
			for _, rel := range []struct {
				sym string
				ok  bool
			}{
				{"==", a.Equal(b)},
				{"!=", a.NotEqual(b)},
				{"<", a.Less(b)},
				{">", a.Greater(b)},
				{"<=", a.LessOrEqual(b)},
				{">=", a.GreaterOrEqual(b)},
			} {
				fmt.Fprintf(appCtx.Out, "%s %s %s: %t\n", a, rel.sym, b, rel.ok)
			}
			return nil
		},
	}
}

func readFractions(args []string) (fraction.Fraction, fraction.Fraction, error) {
	ta, tb, err := operandPair(args)
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, err
	}
	a, err := fraction.Parse(ta)
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, fmt.Errorf("first operand: %w", err)
	}
	b, err := fraction.Parse(tb)
	if err != nil {
		return fraction.Fraction{}, fraction.Fraction{}, fmt.Errorf("second operand: %w", err)
	}
	return a, b, nil
}
