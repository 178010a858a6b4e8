package main

import (
	"fmt"

	"github.com/katalvlaran/twopoint/correlation"
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/spf13/cobra"
)

func newXiCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xi",
		Short: "Spatial two-point correlation function",
		Example: `
  twopoint xi --data galaxies.txt --bins 1,2,5,10 --period 250
  twopoint xi --data a.txt --data2 b.txt --randoms r.txt --bins 1,2,5 --estimator landy-szalay`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, data2, err := a.samples()
			if err != nil {
				return err
			}
			bins, err := a.floats("bins")
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			if opts.Period, err = a.floats("period"); err != nil {
				return err
			}

			res, err := correlation.TwoPoint(data, bins, data2, opts)
			if err != nil {
				return err
			}
			if err = writeResult(cmd.OutOrStdout(), bins, correlation.JackknifeResult{Result: res}); err != nil {
				return err
			}

			return a.flushMetrics()
		},
	}
	cmd.Flags().StringSlice("period", nil, "periodic box length, one or per axis")

	return cmd
}

func newJackknifeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jackknife",
		Short: "Spatial correlation function with jackknife errors",
		Example: `
  twopoint jackknife --data galaxies.txt --randoms randoms.txt --bins 1,2,5,10 --period 250 --nsub 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, data2, err := a.samples()
			if err != nil {
				return err
			}
			bins, err := a.floats("bins")
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			if opts.Period, err = a.floats("period"); err != nil {
				return err
			}
			if opts.Subvolumes, err = a.ints("nsub"); err != nil {
				return err
			}
			if opts.Box, err = a.floats("lbox"); err != nil {
				return err
			}

			res, err := correlation.TwoPointJackknife(data, opts.Randoms, bins, data2, opts)
			if err != nil {
				return err
			}
			if err = writeResult(cmd.OutOrStdout(), bins, res); err != nil {
				return err
			}

			return a.flushMetrics()
		},
	}
	f := cmd.Flags()
	f.StringSlice("period", nil, "periodic box length, one or per axis")
	f.StringSlice("nsub", []string{"10"}, "subvolume divisions, one or per axis")
	f.StringSlice("lbox", nil, "box length for the subvolume grid; defaults to --period")

	return cmd
}

func newWthetaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wtheta",
		Short: "Angular correlation function of (ra, dec) catalogs in degrees",
		Example: `
  twopoint wtheta --data sky.txt --bins 0.1,0.3,1,3,10
  twopoint wtheta --data a.txt --data2 b.txt --bins 1,2,5 --auto=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, data2, err := a.samples()
			if err != nil {
				return err
			}
			bins, err := a.floats("bins")
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.DoAuto = a.v.GetBool("auto")
			opts.DoCross = a.v.GetBool("cross")

			res, err := correlation.Angular(data, bins, data2, opts)
			if err != nil {
				return err
			}
			if err = writeResult(cmd.OutOrStdout(), bins, correlation.JackknifeResult{Result: res}); err != nil {
				return err
			}

			return a.flushMetrics()
		},
	}
	f := cmd.Flags()
	f.Bool("auto", true, "compute both auto-correlations of a cross call")
	f.Bool("cross", true, "compute the cross-correlation of a cross call")

	return cmd
}

func newEstimatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "estimators",
		Short: "List estimators and the pair counts they read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, e := range estimator.All() {
				r := e.Requirements()
				if _, err := fmt.Fprintf(w, "%-13s DD=%t DR=%t RR=%t\n", e, r.DD, r.DR, r.RR); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
