package mle

import (
	"iter"
	"math/bits"

	"github.com/Praz314159/sumcheck/field"
)

// Oracle is a read-only mapping from the boolean hypercube {0,1}^dim to a
// field, addressed by index: bit j of the index, least significant first,
// is coordinate j of the point.
type Oracle[E any] interface {
	// Dim returns the dimension of the hypercube.
	Dim() int

	// Query returns the value stored at the point with the given index.
	Query(i int) (E, error)

	// Entries yields every stored (index, value) pair exactly once, in
	// whatever order the backing storage finds natural. Each call starts
	// a fresh traversal.
	Entries() iter.Seq2[int, E]
}

// Assignment pairs one explicit hypercube point with its value.
type Assignment[E any] struct {
	Point []E
	Value E
}

// HypercubeSize returns the number of points of {0,1}^dim, that is 2^dim,
// or ErrInvalidDimension when dim is negative or 2^dim does not fit in an
// int. Callers holding an untrusted dimension can use it to validate
// before allocating.
func HypercubeSize(dim int) (int, error) {
	if dim < 0 || dim > bits.UintSize-2 {
		return 0, ErrInvalidDimension
	}
	return 1 << dim, nil
}

// BooleanPoint expands index i into the corresponding point of {0,1}^dim:
// coordinate j is One when bit j of i is set, Zero otherwise.
func BooleanPoint[E any](f field.Arith[E], dim, i int) []E {
	point := make([]E, dim)
	for j := range point {
		if i>>j&1 == 1 {
			point[j] = f.One()
		} else {
			point[j] = f.Zero()
		}
	}
	return point
}

// pointIndex folds an explicit boolean point back into its index. Points
// of the wrong length are rejected before their coordinates are read.
func pointIndex[E any](f field.Arith[E], dim int, point []E) (int, error) {
	if len(point) != dim {
		return 0, &OraclePointDimensionError{Expected: dim, Found: len(point)}
	}
	zero, one := f.Zero(), f.One()
	index := 0
	for j, c := range point {
		switch {
		case f.Equal(c, one):
			index |= 1 << j
		case f.Equal(c, zero):
		default:
			return 0, ErrNonBooleanOraclePoint
		}
	}
	return index, nil
}
