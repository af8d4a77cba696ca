package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/profile"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [store]",
		Short: "Describe a profile store",
		Long:  `Prints the name, identifier, shape, resolution and length statistics of a profile store.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()

			ls, err := s.Lengths()
			if err != nil {
				return err
			}
			n, m := s.Shape()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:       %s\n", s.Name())
			fmt.Fprintf(out, "id:         %s\n", s.ID())
			fmt.Fprintf(out, "profiles:   %d\n", n)
			fmt.Fprintf(out, "width:      %d\n", m)
			fmt.Fprintf(out, "resolution: %g\n", s.Resolution())
			if n > 0 {
				sum := profile.Summarize(ls)
				fmt.Fprintf(out, "length:     min %d, max %d, mean %.2f, std %.2f, median %.1f\n",
					sum.Min, sum.Max, sum.Mean, sum.StdDev, sum.Median)
			}

			return nil
		},
	}
}
