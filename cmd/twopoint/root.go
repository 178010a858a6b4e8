package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/twopoint/correlation"
	"github.com/katalvlaran/twopoint/estimator"
	"github.com/katalvlaran/twopoint/metrics"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix prefixes every environment variable the command reads.
const envPrefix = "TWOPOINT"

var errNoData = errors.New("twopoint: no data catalog given (--data)")

// app carries the state shared by every subcommand.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	reg *prometheus.Registry
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}
	est := estimator.Natural

	cmd := &cobra.Command{
		Use:          "twopoint",
		Short:        "Two-point correlation functions of point catalogs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	defaults := correlation.DefaultOptions()
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (yaml, json or toml)")
	f.String("log-level", "warning", "log level: debug, info, warning, error")
	f.String("data", "", "data catalog, one point per line")
	f.String("data2", "", "second data catalog for cross-correlations")
	f.String("randoms", "", "random catalog")
	f.StringSlice("bins", nil, "bin edges, comma separated")
	f.Var(&est, "estimator", "natural, davis-peebles, hewett, hamilton or landy-szalay")
	f.Int("workers", defaults.Workers, "partitions counted concurrently")
	f.String("backend", pairs.BackendKDTree, fmt.Sprintf("pair counter: %s", strings.Join(pairs.Backends(), ", ")))
	f.Uint64("seed", 0, "downsampling seed, 0 for the fixed default")
	f.Int("max-sample", defaults.MaxSampleSize, "downsample catalogs above this size, 0 to disable")
	f.String("metrics-out", "", "write Prometheus metrics to this file when done")

	cmd.AddCommand(
		newXiCommand(a),
		newJackknifeCommand(a),
		newWthetaCommand(a),
		newEstimatorsCommand(),
	)

	return cmd
}

// init binds flags, environment and the optional config file, in rising
// order of precedence: config, environment, flags.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())

	return nil
}

// options assembles the settings every correlation call shares.
func (a *app) options() (correlation.Options, error) {
	opts := correlation.DefaultOptions()
	opts.Logger = a.log
	opts.Workers = a.v.GetInt("workers")
	opts.MaxSampleSize = a.v.GetInt("max-sample")
	opts.Seed = a.v.GetUint64("seed")

	e, err := estimator.Parse(a.v.GetString("estimator"))
	if err != nil {
		return opts, err
	}
	opts.Estimator = e

	if opts.Counter, err = pairs.New(a.v.GetString("backend")); err != nil {
		return opts, err
	}
	if path := a.v.GetString("randoms"); path != "" {
		if opts.Randoms, err = readCatalog(path); err != nil {
			return opts, err
		}
	}
	if a.v.GetString("metrics-out") != "" {
		a.reg = prometheus.NewRegistry()
		if opts.Metrics, err = metrics.NewRecorder(a.reg); err != nil {
			return opts, err
		}
	}

	return opts, nil
}

// samples reads the data catalog and, if given, the second one.
func (a *app) samples() (pairs.Points, pairs.Points, error) {
	path := a.v.GetString("data")
	if path == "" {
		return nil, nil, errNoData
	}
	data, err := readCatalog(path)
	if err != nil {
		return nil, nil, err
	}
	var data2 pairs.Points
	if path = a.v.GetString("data2"); path != "" {
		if data2, err = readCatalog(path); err != nil {
			return nil, nil, err
		}
	}

	return data, data2, nil
}

// flushMetrics writes the registry when --metrics-out is set.
func (a *app) flushMetrics() error {
	path := a.v.GetString("metrics-out")
	if path == "" || a.reg == nil {
		return nil
	}
	a.log.WithField("path", path).Debug("writing metrics")

	return prometheus.WriteToTextfile(path, a.reg)
}

// floats reads a list of numbers. Entries may be separate list items or
// comma separated within one item, so flags, YAML lists and environment
// strings all work.
func (a *app) floats(key string) ([]float64, error) {
	var out []float64
	for _, item := range a.v.GetStringSlice(key) {
		for _, s := range strings.Split(item, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			x, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("--%s: %w", key, err)
			}
			out = append(out, x)
		}
	}

	return out, nil
}

func (a *app) ints(key string) ([]int, error) {
	fs, err := a.floats(key)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fs))
	for i, x := range fs {
		if x != float64(int(x)) {
			return nil, fmt.Errorf("--%s: %g is not an integer", key, x)
		}
		out[i] = int(x)
	}

	return out, nil
}
