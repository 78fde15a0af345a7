package main

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Praz314159/sumcheck/field/bn254"
	"github.com/Praz314159/sumcheck/mle"
)

var (
	profDim    int
	profOutDir string
)

func init() {
	profileCmd.Flags().IntVar(&profDim, "dim", 16, "Dimension of the profiled evaluation.")
	profileCmd.Flags().StringVar(&profOutDir, "out", "traces", "Directory receiving the memory profiles.")
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Capture a memory profile of one naive evaluation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := mle.HypercubeSize(profDim)
		if err != nil {
			return err
		}

		tracePath, err := nextNumberedPath(profOutDir, "trace_", "")
		if err != nil {
			return err
		}

		log.Info().
			Int("dim", profDim).
			Int("points", points).
			Str("trace", tracePath).
			Msg("profiling naive evaluation")

		p := profile.Start(profile.MemProfile, profile.ProfilePath(tracePath), profile.Quiet)

		oracle, err := mle.NewDense(profDim, bn254.RandomVector(points))
		if err != nil {
			p.Stop()
			return err
		}
		z := bn254.RandomVector(profDim)

		ext := mle.New[fr.Element](bn254.Field{}, oracle, profDim, mle.Naive)
		_, err = ext.Evaluate(z)
		p.Stop()
		if err != nil {
			return err
		}

		log.Info().Str("trace", tracePath).Msg("profile written")
		return nil
	},
}
