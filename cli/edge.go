package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/edge"
	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/store"
)

// ErrScaleBy is returned for an unknown scaling reference.
var ErrScaleBy = errors.New("cli: unknown scaling reference")

// transform is the shape shared by the edge rewrites.
type transform func(src profile.Source, fn func(profile.Batch) error, opts ...profile.Option) error

// rewrite streams src through t into a new store of row width m.
func (a *app) rewrite(cmd *cobra.Command, op string, src *store.Store, output string, m int, t transform) error {
	o, err := store.Create(output, m, src.Resolution(), src.Name())
	if err != nil {
		return err
	}
	defer o.Close()

	opts := a.cfg.Mean.BatchOptions(a.log.Progress(op))
	if err = t(src, o.AppendBatch, opts...); err != nil {
		return err
	}
	a.log.Info("rewritten", "op", op, "output", output, "profiles", o.Len(), "width", m)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d profiles, width %d\n", output, o.Len(), m)

	return nil
}

func (a *app) scaleCmd() *cobra.Command {
	var output, by string

	cmd := &cobra.Command{
		Use:   "scale [store]",
		Short: "Scale profiles by area or plateau height",
		Long:  `Divides every profile by its area (--by area) or by its plateau height (--by plateau).`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var t transform
			switch by {
			case "area":
				t = edge.ScaleArea
			case "plateau":
				t = edge.ScalePlateau
			default:
				return fmt.Errorf("%w: %q", ErrScaleBy, by)
			}
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()
			_, m := s.Shape()

			return a.rewrite(cmd, "scale", s, output, m, t)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output store path")
	cmd.Flags().StringVar(&by, "by", "area", "scaling reference: area or plateau")
	cmd.Flags().Int("batch-size", 0, "profiles loaded per batch (0 loads all)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// widthCmd builds trim and pad, which differ only in geometry and transform.
func (a *app) widthCmd(use, short, long string,
	widths func(profile.Source, float64, ...profile.Option) (edge.Widths, error),
	run func(profile.Source, float64, func(profile.Batch) error, ...profile.Option) error,
) *cobra.Command {
	var (
		output string
		width  float64
	)

	cmd := &cobra.Command{
		Use:   use + " [store]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()

			w, err := widths(s, width)
			if err != nil {
				return err
			}
			t := func(src profile.Source, fn func(profile.Batch) error, opts ...profile.Option) error {
				return run(src, width, fn, opts...)
			}

			return a.rewrite(cmd, use, s, output, w.W1+w.W2, t)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output store path")
	cmd.Flags().Float64Var(&width, "width", 0, "edge width in physical units")
	cmd.Flags().Int("batch-size", 0, "profiles loaded per batch (0 loads all)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (a *app) trimCmd() *cobra.Command {
	return a.widthCmd("trim", "Trim profiles to a common edge width",
		`Keeps the given width before every contact point (default: the shortest
profile) and the common substrate after it.`,
		edge.TrimWidths, edge.Trim)
}

func (a *app) padCmd() *cobra.Command {
	return a.widthCmd("pad", "Pad profiles to a common edge width",
		`Left-pads every profile with its plateau height so that all contact
points line up (default width: the longest profile).`,
		edge.PadWidths, edge.Pad)
}
