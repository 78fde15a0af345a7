package main

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	"github.com/Praz314159/sumcheck/field/bn254"
	"github.com/Praz314159/sumcheck/mle"
)

var demoDim int

func init() {
	demoCmd.Flags().IntVar(&demoDim, "dim", 4, "Dimension of the boolean hypercube.")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate a random multilinear extension at a random point",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := mle.HypercubeSize(demoDim)
		if err != nil {
			return err
		}
		log.Info().Int("dim", demoDim).Int("points", points).Msg("building a random dense oracle")

		oracle, err := mle.NewRandomDense[fr.Element](demoDim, bn254.Rand{})
		if err != nil {
			return err
		}
		z := bn254.RandomVector(demoDim)

		ext := mle.New[fr.Element](bn254.Field{}, oracle, demoDim, mle.Naive)
		res, err := ext.Evaluate(z)
		if err != nil {
			return err
		}

		fmt.Printf("Point z: %v\n", bn254.VectorString(z))
		fmt.Printf("Evaluated MLE at z: %v\n", res.String())
		return nil
	},
}
