package mle

import "github.com/Praz314159/sumcheck/field"

// EvalEq computes eq(b, z) = prod_j (b_j z_j + (1-b_j)(1-z_j)), the
// multilinear Lagrange basis weight of point b at z. On boolean b and z
// it is 1 when the vectors agree and 0 otherwise. Each factor is
// evaluated through the expansion 1 + 2 b_j z_j - b_j - z_j, which costs
// a single multiplication per coordinate.
func EvalEq[E any](f field.Arith[E], b, z []E) (E, error) {
	if len(b) != len(z) {
		var zero E
		return zero, &InconsistentDimensionsError{BDim: len(b), ZDim: len(z)}
	}
	one := f.One()
	res := one
	for j := range b {
		factor := f.Mul(b[j], z[j])
		factor = f.Add(factor, factor)
		factor = f.Add(factor, one)
		factor = f.Sub(factor, b[j])
		factor = f.Sub(factor, z[j])
		res = f.Mul(res, factor)
	}
	return res, nil
}
