// locomotive reads observed serial numbers, one per line from stdin
// or from its arguments, and estimates the size of the population
// they were drawn from: a railroad numbers its locomotives 1..N, and
// seeing locomotive 60 says something about N.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kaben/irrealis-bayes/bayes"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		max      int
		alpha    float64
		interval float64
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "locomotive [serial...]",
		Short: "Estimate a population size from observed serial numbers",
		Long: `locomotive estimates the size of a serially numbered population
from observed serial numbers (the locomotive problem). It seeds a
prior over the sizes 1..max, applies one Bayesian update per
observation, and reports the posterior mean, mode, and credible
interval.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer l.Sync()
				logger = l
			}

			obs, err := readSerials(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if len(obs) == 0 {
				return fmt.Errorf("no observations")
			}

			post, err := estimate(obs, max, alpha, logger)
			if err != nil {
				return err
			}

			mean, err := post.Expectation()
			if err != nil {
				return err
			}
			mode, err := post.Mode()
			if err != nil {
				return err
			}
			cdf, err := bayes.NewCDF(post.PMF)
			if err != nil {
				return err
			}
			lo, hi, err := cdf.CredibleInterval(interval)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "N %d  mean %.6g  mode %d\n", len(obs), mean, mode)
			fmt.Fprintf(out, "%g%% credible interval [%d, %d]\n", interval*100, lo, hi)
			return nil
		},
	}

	cmd.Flags().IntVar(&max, "max", 1000, "largest population size considered")
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "power-law prior exponent; 0 selects a uniform prior")
	cmd.Flags().Float64Var(&interval, "interval", 0.9, "credible interval mass")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each update")
	return cmd
}

// estimate seeds a prior over the sizes 1..max and updates it once
// per observation. A population of n locomotives produces any one
// serial with probability 1/n, and none above n.
func estimate(obs []int, max int, alpha float64, logger *zap.Logger) (*bayes.Updater[int, int], error) {
	sizes := make([]int, max)
	for i := range sizes {
		sizes[i] = i + 1
	}
	prior := bayes.New[int]()
	if alpha == 0 {
		prior.SetUniform(sizes)
	} else if err := prior.SetPowerLaw(sizes, alpha); err != nil {
		return nil, err
	}

	post := bayes.NewUpdater(prior, func(serial, n int) float64 {
		if serial > n {
			return 0
		}
		return 1 / float64(n)
	})
	for _, serial := range obs {
		if err := post.Update(serial); err != nil {
			return nil, err
		}
		mean, err := post.Expectation()
		if err != nil {
			return nil, err
		}
		logger.Debug("updated posterior",
			zap.Int("serial", serial),
			zap.Float64("mean", mean))
	}
	return post, nil
}

func readSerials(stdin io.Reader, args []string) ([]int, error) {
	if len(args) > 0 {
		obs := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, err
			}
			obs[i] = v
		}
		return obs, nil
	}

	var obs []int
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, err
		}
		obs = append(obs, v)
	}
	return obs, scanner.Err()
}
