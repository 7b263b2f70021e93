package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fracpoint/internal/fraction"
	"fracpoint/internal/point"
)

// demo: construct, add and print two fractions, then add, dot and midpoint two points.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through fraction and point operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := appCtx.Out

			frac1, err := fraction.New(5, 4)
			if err != nil {
				return err
			}
			frac2, err := fraction.New(10, 8)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "frac1 = %s\n", frac1)
			fmt.Fprintf(out, "frac2 = %s\n", frac2)
			fmt.Fprintf(out, "frac1 + frac2 = %s\n", frac1.Add(frac2))

			point1 := point.New(1.0, 2.0)
			point2 := point.New(3.0, 4.0)
			fmt.Fprintf(out, "point1 = %s\n", point1)
			fmt.Fprintf(out, "point2 = %s\n", point2)
			fmt.Fprintf(out, "point1 + point2 = %s\n", point1.Add(point2))
			fmt.Fprintf(out, "Point1 * Point2 = %s\n", point.FormatCoord(point1.Dot(point2)))
			fmt.Fprintf(out, "Midpoint of point1 and point2 = %s\n", point1.Midpoint(point2))

			appCtx.Log.Debug().Msg("demo complete")
			return nil
		},
	}
}
