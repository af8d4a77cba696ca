package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heavyedge/segreg"
	"github.com/katalvlaran/heavyedge/store"
)

// fitFlags are the breakpoint flags shared by segreg and plot --fit.
type fitFlags struct {
	xmax float64
	psi0 float64
}

func (f *fitFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.xmax, "xmax", 0, "fit only x < xmax (0 fits the whole valid range)")
	cmd.Flags().Float64Var(&f.psi0, "psi0", 0, "initial breakpoint guess")
	cmd.Flags().Float64("tol", segreg.DefaultTolerance, "breakpoint convergence tolerance")
	cmd.Flags().Int("max-iter", segreg.DefaultMaxIter, "maximum breakpoint iterations")
	cmd.Flags().Int("max-halvings", segreg.DefaultMaxHalvings, "maximum step halvings per iteration")
}

// window returns the valid samples of profile idx with x < xmax.
func (f *fitFlags) window(s *store.Store, idx int) (x, y []float64, name string, err error) {
	b, err := s.Slice(idx, idx+1)
	if err != nil {
		return nil, nil, "", err
	}
	if b.Len() == 0 {
		return nil, nil, "", fmt.Errorf("cli: profile index %d out of range [0, %d)", idx, s.Len())
	}
	l := b.Ls[0]
	x, y = s.X()[:l], b.Ys[0][:l]
	if f.xmax > 0 {
		k := 0
		for k < len(x) && x[k] < f.xmax {
			k++
		}
		x, y = x[:k], y[:k]
	}

	return x, y, b.Names[0], nil
}

func (a *app) fit(f *fitFlags, x, y []float64, name string) (segreg.Params, error) {
	p, reachedMax, err := segreg.Fit(x, y, f.psi0, a.cfg.Segreg.FitOptions()...)
	if err != nil {
		return segreg.Params{}, fmt.Errorf("profile %q: %w", name, err)
	}
	if reachedMax {
		a.log.Warn("breakpoint search stopped at the iteration cap", "profile", name, "max_iter", a.cfg.Segreg.MaxIter)
	}

	return p, nil
}

func (a *app) segregCmd() *cobra.Command {
	var (
		ff    fitFlags
		index int
	)

	cmd := &cobra.Command{
		Use:   "segreg [store]",
		Short: "Fit a two-segment breakpoint model",
		Long: `Fits y = b0 + b1*x + b2*(x-psi)+ to one profile and prints the
coefficients. Use --xmax to restrict the fit to the plateau-to-edge region.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(args)
			if err != nil {
				return err
			}
			defer s.Close()

			x, y, name, err := ff.window(s, index)
			if err != nil {
				return err
			}
			p, err := a.fit(&ff, x, y, name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: b0=%.4f b1=%.4f b2=%.4f psi=%.4f\n", name, p.B0, p.B1, p.B2, p.Psi)

			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "profile index")
	ff.register(cmd)
	_ = cmd.MarkFlagRequired("psi0")

	return cmd
}
