package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/chart"
)

func (a *app) plotCmd() *cobra.Command {
	var (
		ff      fitFlags
		output  string
		title   string
		indices []int
		withFit bool
	)

	cmd := &cobra.Command{
		Use:   "plot [store]",
		Short: "Draw profiles to an image",
		Long: `Draws the valid part of the selected profiles (all by default) to a PNG,
SVG or PDF file chosen by extension. With --fit the breakpoint model of
every selected profile is drawn as a dashed line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(indices) == 0 {
				for i := 0; i < s.Len(); i++ {
					indices = append(indices, i)
				}
			}

			var series []chart.Series
			for _, idx := range indices {
				all := fitFlags{}
				x, y, name, err := all.window(s, idx)
				if err != nil {
					return err
				}
				series = append(series, chart.Series{Label: name, X: x, Y: y})
				if !withFit {
					continue
				}
				fx, fy, _, err := ff.window(s, idx)
				if err != nil {
					return err
				}
				p, err := a.fit(&ff, fx, fy, name)
				if err != nil {
					return err
				}
				series = append(series, chart.Series{Label: name + " fit", X: fx, Y: p.Predict(fx), Dashed: true})
			}

			opts := chart.DefaultOptions()
			if title != "" {
				opts.Title = title
			} else if s.Name() != "" {
				opts.Title = s.Name()
			}
			if err = chart.Profiles(output, series, opts); err != nil {
				return err
			}
			a.log.Info("plotted", "output", output, "series", len(series))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d series\n", output, len(series))

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output image path")
	cmd.Flags().StringVar(&title, "title", "", "figure title (default: dataset name)")
	cmd.Flags().IntSliceVar(&indices, "index", nil, "profile indices to draw (default all)")
	cmd.Flags().BoolVar(&withFit, "fit", false, "overlay the breakpoint model")
	ff.register(cmd)
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
