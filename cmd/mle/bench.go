package main

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Praz314159/sumcheck/field/bn254"
	"github.com/Praz314159/sumcheck/mle"
)

var (
	benchMinDim int
	benchMaxDim int
	benchRuns   int
	benchOutDir string
)

func init() {
	benchCmd.Flags().IntVar(&benchMinDim, "min-dim", 4, "Smallest hypercube dimension to time.")
	benchCmd.Flags().IntVar(&benchMaxDim, "max-dim", 20, "Largest hypercube dimension to time.")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 5, "Evaluations averaged per dimension.")
	benchCmd.Flags().StringVar(&benchOutDir, "out", "benchmarks", "Directory receiving the chart.")
	rootCmd.AddCommand(benchCmd)
}

// benchResult is the averaged timing for one dimension.
type benchResult struct {
	dim   int
	avgMs float64
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time naive evaluation over a range of dimensions and chart it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchMinDim > benchMaxDim {
			return fmt.Errorf("min-dim %d exceeds max-dim %d", benchMinDim, benchMaxDim)
		}
		if _, err := mle.HypercubeSize(benchMinDim); err != nil {
			return fmt.Errorf("min-dim %d: %w", benchMinDim, err)
		}
		if _, err := mle.HypercubeSize(benchMaxDim); err != nil {
			return fmt.Errorf("max-dim %d: %w", benchMaxDim, err)
		}

		chartPath, err := nextNumberedPath(benchOutDir, "benchmark_", ".png")
		if err != nil {
			return err
		}

		log.Info().
			Int("minDim", benchMinDim).
			Int("maxDim", benchMaxDim).
			Int("runs", benchRuns).
			Msg("benchmarking naive evaluation")

		results := make([]benchResult, 0, benchMaxDim-benchMinDim+1)
		for dim := benchMinDim; dim <= benchMaxDim; dim++ {
			r, err := benchDimension(dim, benchRuns)
			if err != nil {
				return err
			}
			log.Info().Int("dim", dim).Float64("avgMs", r.avgMs).Msg("timed dimension")
			results = append(results, r)
		}

		if err := renderChart(results, chartPath); err != nil {
			return err
		}
		log.Info().Str("chart", chartPath).Msg("benchmark complete")
		return nil
	},
}

func benchDimension(dim, runs int) (benchResult, error) {
	points, err := mle.HypercubeSize(dim)
	if err != nil {
		return benchResult{}, err
	}
	var total time.Duration
	for run := 0; run < runs; run++ {
		oracle, err := mle.NewDense(dim, bn254.RandomVector(points))
		if err != nil {
			return benchResult{}, err
		}
		z := bn254.RandomVector(dim)
		ext := mle.New[fr.Element](bn254.Field{}, oracle, dim, mle.Naive)

		start := time.Now()
		if _, err := ext.Evaluate(z); err != nil {
			return benchResult{}, err
		}
		total += time.Since(start)
	}
	return benchResult{dim: dim, avgMs: total.Seconds() * 1000 / float64(runs)}, nil
}

func renderChart(results []benchResult, path string) error {
	p := plot.New()
	p.Title.Text = "Naive MLE evaluation time"
	p.X.Label.Text = "Dimension"
	p.Y.Label.Text = "Time (ms)"

	pts := make(plotter.XYs, len(results))
	for i, r := range results {
		pts[i].X = float64(r.dim)
		pts[i].Y = r.avgMs
	}

	if err := plotutil.AddLinePoints(p, "naive", pts); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
