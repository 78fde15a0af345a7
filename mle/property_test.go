package mle

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Praz314159/sumcheck/field/modp"
)

func TestEvaluationProperties(t *testing.T) {
	f, err := modp.New(127)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("extension agrees with the oracle on the hypercube", prop.ForAll(
		func(dim int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			oracle, err := NewRandomDense[uint64](dim, modp.NewRand(f, rng))
			if err != nil {
				return false
			}
			ext := New[uint64](f, oracle, dim, Naive)
			for i := 0; i < 1<<dim; i++ {
				want, err := oracle.Query(i)
				if err != nil {
					return false
				}
				got, err := ext.Evaluate(BooleanPoint[uint64](f, dim, i))
				if err != nil || got != want {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 6),
		gen.Int64(),
	))

	properties.Property("dense and sparse storage evaluate identically", prop.ForAll(
		func(dim int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			s := modp.NewRand(f, rng)
			values := drawVector[uint64](s, 1<<dim)

			dense, err := NewDense(dim, values)
			if err != nil {
				return false
			}
			sparse, err := NewSparse[uint64](f, dim, hypercubeAssignments(f, dim, values))
			if err != nil {
				return false
			}

			z := drawVector[uint64](s, dim)
			denseRes, err1 := New[uint64](f, dense, dim, Naive).Evaluate(z)
			sparseRes, err2 := New[uint64](f, sparse, dim, Naive).Evaluate(z)
			return err1 == nil && err2 == nil && denseRes == sparseRes
		},
		gen.IntRange(0, 6),
		gen.Int64(),
	))

	properties.Property("evaluation is affine in every coordinate", prop.ForAll(
		func(dim, k int, seed int64) bool {
			k %= dim
			rng := rand.New(rand.NewSource(seed))
			s := modp.NewRand(f, rng)
			oracle, err := NewRandomDense[uint64](dim, s)
			if err != nil {
				return false
			}
			ext := New[uint64](f, oracle, dim, Naive)

			z := drawVector[uint64](s, dim)
			at := func(v uint64) (uint64, error) {
				zk := make([]uint64, dim)
				copy(zk, z)
				zk[k] = v
				return ext.Evaluate(zk)
			}

			r := s.Draw()
			g0, err0 := at(r)
			g1, err1 := at(f.Add(r, f.One()))
			g2, err2 := at(f.Add(r, f.Add(f.One(), f.One())))
			if err0 != nil || err1 != nil || err2 != nil {
				return false
			}
			// the second difference of an affine map vanishes
			return f.Add(g0, g2) == f.Add(g1, g1)
		},
		gen.IntRange(1, 6),
		gen.IntRange(0, 5),
		gen.Int64(),
	))

	properties.Property("points of a foreign dimension are rejected", prop.ForAll(
		func(dim, zLen int) bool {
			if zLen == dim {
				return true
			}
			oracle, err := NewDense(dim, make([]uint64, 1<<dim))
			if err != nil {
				return false
			}
			_, err = New[uint64](f, oracle, dim, Naive).Evaluate(make([]uint64, zLen))
			var wd *WrongDimensionError
			return errors.As(err, &wd) && wd.Expected == dim && wd.Found == zLen
		},
		gen.IntRange(0, 8),
		gen.IntRange(0, 12),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
