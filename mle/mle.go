// Package mle evaluates multilinear extensions of functions defined on
// the boolean hypercube {0,1}^dim over a finite field. A function is
// presented as a read-only Oracle holding one field value per hypercube
// point; a MultilinearExtension binds the oracle to an evaluation
// strategy and computes MLE_f(z) for arbitrary z in F^dim.
package mle

import (
	"fmt"

	"github.com/Praz314159/sumcheck/field"
)

// Strategy names one algorithm for evaluating a multilinear extension.
type Strategy uint8

const (
	// Naive sums f(b)*eq(b, z) over every hypercube point. It runs in
	// O(dim * 2^dim) field operations and serves as the reference
	// faster strategies are checked against.
	Naive Strategy = iota
	// Zhu, Rothblum and Ramakrishna are reserved strategy slots. Their
	// algorithms are not implemented; selecting them makes Evaluate
	// return a NotImplementedError.
	Zhu
	Rothblum
	Ramakrishna
)

func (s Strategy) String() string {
	switch s {
	case Naive:
		return "Naive"
	case Zhu:
		return "Zhu"
	case Rothblum:
		return "Rothblum"
	case Ramakrishna:
		return "Ramakrishna"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// MultilinearExtension is the multilinear extension of the function an
// oracle stores: the unique polynomial of degree at most one in each
// variable that agrees with the oracle on every point of {0,1}^dim. The
// extension is immutable and never modifies its oracle.
type MultilinearExtension[E any] struct {
	f        field.Arith[E]
	oracle   Oracle[E]
	dim      int
	strategy Strategy
}

// New binds an oracle, its claimed dimension and an evaluation strategy.
// Nothing is validated here; a dimension that disagrees with the
// oracle's own is caught by Evaluate.
func New[E any](f field.Arith[E], oracle Oracle[E], dim int, strategy Strategy) *MultilinearExtension[E] {
	return &MultilinearExtension[E]{f: f, oracle: oracle, dim: dim, strategy: strategy}
}

// Evaluate computes MLE_f(z). The point must hold exactly dim
// coordinates; they may be arbitrary field elements, not just 0 and 1.
func (m *MultilinearExtension[E]) Evaluate(z []E) (E, error) {
	var zero E
	if len(z) != m.dim {
		return zero, &WrongDimensionError{Expected: m.dim, Found: len(z)}
	}
	if d := m.oracle.Dim(); d != m.dim {
		return zero, wrapOracle(&OraclePointDimensionError{Expected: m.dim, Found: d})
	}
	switch m.strategy {
	case Naive:
		return m.naive(z), nil
	default:
		return zero, &NotImplementedError{Strategy: m.strategy}
	}
}

// naive accumulates f(b)*eq(b, z) over all oracle entries. The vector
// 1-z is precomputed once; the eq weight of entry i is then the product
// of z_j or 1-z_j selected by bit j of i.
func (m *MultilinearExtension[E]) naive(z []E) E {
	one := m.f.One()
	oneMinusZ := make([]E, len(z))
	for j := range z {
		oneMinusZ[j] = m.f.Sub(one, z[j])
	}

	acc := m.f.Zero()
	for i, v := range m.oracle.Entries() {
		chi := one
		for j := 0; j < m.dim; j++ {
			if i>>j&1 == 1 {
				chi = m.f.Mul(chi, z[j])
			} else {
				chi = m.f.Mul(chi, oneMinusZ[j])
			}
		}
		acc = m.f.Add(acc, m.f.Mul(v, chi))
	}
	return acc
}
