package cli

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/mean"
	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/store"
)

// ErrMethod is returned for an unknown averaging method.
var ErrMethod = errors.New("cli: unknown averaging method")

func (a *app) meanCmd() *cobra.Command {
	var output, method string

	cmd := &cobra.Command{
		Use:   "mean [store]",
		Short: "Compute the mean profile",
		Long: `Computes the mean profile of a store and saves it as a one-profile store.

The wasserstein method (default) averages in quantile space, so plateaus
and edges are transported rather than blurred. The euclidean method is the
pointwise average. The result is padded with NaN to the input width.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()

			_, m := s.Shape()
			opts := a.cfg.Mean.BatchOptions(a.log.Progress("mean"))
			a.log.Info("averaging", "store", s.Path(), "method", method, "profiles", s.Len())

			var (
				row []float64
				l   int
			)
			switch method {
			case "wasserstein":
				var f []float64
				f, l, err = mean.Wasserstein(s, a.cfg.Mean.GridNum, opts...)
				if err != nil {
					return err
				}
				row = profile.PadTo(f, m, math.NaN())
			case "euclidean":
				if row, err = mean.Euclidean(s, opts...); err != nil {
					return err
				}
				ls, err := s.Lengths()
				if err != nil {
					return err
				}
				// every input is zero past the longest contact point
				l = slices.Max(ls)
			default:
				return fmt.Errorf("%w: %q", ErrMethod, method)
			}

			o, err := store.Create(output, m, s.Resolution(), s.Name())
			if err != nil {
				return err
			}
			defer o.Close()
			if err = o.Append([][]float64{row}, []int{l}, []string{s.Name()}); err != nil {
				return err
			}
			a.log.Info("averaged", "output", output, "length", l)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: mean of %d profiles, length %d\n", output, s.Len(), l)

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output store path")
	cmd.Flags().StringVar(&method, "method", "wasserstein", "averaging method: wasserstein or euclidean")
	cmd.Flags().Int("wnum", 1000, "number of quantile grid points")
	cmd.Flags().Int("batch-size", 0, "profiles loaded per batch (0 loads all)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
