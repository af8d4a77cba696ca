package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/profile"
	"github.com/katalvlaran/heavyedge/store"
)

// ErrIncompatible is returned when merged stores differ in width or resolution.
var ErrIncompatible = errors.New("cli: stores have different width or resolution")

func (a *app) mergeCmd() *cobra.Command {
	var output, name string

	cmd := &cobra.Command{
		Use:   "merge store...",
		Short: "Merge profile stores",
		Long:  `Concatenates stores of equal width and resolution into a new store.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := store.Open(args[0])
			if err != nil {
				return err
			}
			_, m := first.Shape()
			res := first.Resolution()
			first.Close()

			o, err := store.Create(output, m, res, name)
			if err != nil {
				return err
			}
			defer o.Close()

			opts := a.cfg.Mean.BatchOptions(a.log.Progress("merge"))
			for _, path := range args {
				if err = mergeInto(o, path, m, res, opts); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d profiles from %d stores\n", output, o.Len(), len(args))

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output store path")
	cmd.Flags().StringVar(&name, "name", "", "name of the merged dataset")
	cmd.Flags().Int("batch-size", 0, "profiles loaded per batch (0 loads all)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func mergeInto(o *store.Store, path string, m int, res float64, opts []profile.Option) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if _, sm := s.Shape(); sm != m || s.Resolution() != res {
		return fmt.Errorf("%w: %s is %d@%g, want %d@%g", ErrIncompatible, path, sm, s.Resolution(), m, res)
	}

	return profile.Batches(s, o.AppendBatch, opts...)
}
