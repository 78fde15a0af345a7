package mle

import (
	"iter"

	"github.com/Praz314159/sumcheck/field"
)

// Sparse is an oracle backed by an explicit point-to-value map. The
// boolean key vectors are validated once at construction and collapsed to
// indices, so lookups never touch per-point vectors again.
type Sparse[E any] struct {
	f      field.Arith[E]
	dim    int
	values map[int]E
}

// NewSparse validates assignments as one total mapping over the
// hypercube: the assignment count must be 2^dim, every point must have
// length dim with all coordinates in {0, 1}, and no point may repeat.
// Entries are checked one at a time; construction stops at the first
// violation.
func NewSparse[E any](f field.Arith[E], dim int, assignments []Assignment[E]) (*Sparse[E], error) {
	size, err := HypercubeSize(dim)
	if err != nil {
		return nil, err
	}
	if len(assignments) != size {
		return nil, ErrIncorrectOracleSize
	}
	values := make(map[int]E, size)
	for _, a := range assignments {
		i, err := pointIndex(f, dim, a.Point)
		if err != nil {
			return nil, err
		}
		if _, dup := values[i]; dup {
			// a repeated point leaves fewer than 2^dim distinct keys
			return nil, ErrIncorrectOracleSize
		}
		values[i] = a.Value
	}
	return &Sparse[E]{f: f, dim: dim, values: values}, nil
}

// NewRandomSparse enumerates all 2^dim points through their index bit
// decomposition and pairs each with an independently uniform value drawn
// from s, so the shape invariants hold by construction.
func NewRandomSparse[E any](f field.Arith[E], dim int, s field.Sampler[E]) (*Sparse[E], error) {
	size, err := HypercubeSize(dim)
	if err != nil {
		return nil, err
	}
	values := make(map[int]E, size)
	for i := 0; i < size; i++ {
		values[i] = s.Draw()
	}
	return &Sparse[E]{f: f, dim: dim, values: values}, nil
}

// Dim returns the hypercube dimension.
func (o *Sparse[E]) Dim() int { return o.dim }

// Query returns the value at the point with index i.
func (o *Sparse[E]) Query(i int) (E, error) {
	v, ok := o.values[i]
	if !ok {
		var zero E
		return zero, ErrPointNotFound
	}
	return v, nil
}

// QueryPoint looks a value up by explicit point. Malformed points are
// rejected: wrong length first, then non-boolean coordinates.
func (o *Sparse[E]) QueryPoint(point []E) (E, error) {
	i, err := pointIndex(o.f, o.dim, point)
	if err != nil {
		var zero E
		return zero, err
	}
	return o.Query(i)
}

// Entries yields the map in storage order, which is unspecified.
func (o *Sparse[E]) Entries() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range o.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

var _ Oracle[uint64] = (*Sparse[uint64])(nil)
