package mle

import (
	"iter"

	"github.com/Praz314159/sumcheck/field"
)

// Dense is an oracle backed by a table of exactly 2^dim values, the point
// with index i stored at entry i. It is the preferred representation:
// indices make the per-point key vectors of the sparse form redundant.
type Dense[E any] struct {
	dim    int
	values []E
}

// NewDense wraps a value table as a dimension-dim oracle. The table must
// hold exactly 2^dim entries. The oracle takes ownership of the slice;
// the caller must not modify it afterwards.
func NewDense[E any](dim int, values []E) (*Dense[E], error) {
	size, err := HypercubeSize(dim)
	if err != nil {
		return nil, err
	}
	if len(values) != size {
		return nil, ErrIncorrectOracleSize
	}
	return &Dense[E]{dim: dim, values: values}, nil
}

// NewRandomDense builds a dimension-dim oracle holding 2^dim
// independently uniform values drawn from s.
func NewRandomDense[E any](dim int, s field.Sampler[E]) (*Dense[E], error) {
	size, err := HypercubeSize(dim)
	if err != nil {
		return nil, err
	}
	values := make([]E, size)
	for i := range values {
		values[i] = s.Draw()
	}
	return &Dense[E]{dim: dim, values: values}, nil
}

// Dim returns the hypercube dimension.
func (o *Dense[E]) Dim() int { return o.dim }

// Query returns the value at the point with index i.
func (o *Dense[E]) Query(i int) (E, error) {
	if i < 0 || i >= len(o.values) {
		var zero E
		return zero, ErrPointNotFound
	}
	return o.values[i], nil
}

// Entries yields the table in index order.
func (o *Dense[E]) Entries() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range o.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

var _ Oracle[uint64] = (*Dense[uint64])(nil)
