package mle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned for dimensions that cannot index a
	// boolean hypercube: negative, or so large that 2^dim overflows an int.
	ErrInvalidDimension = errors.New("dimension must be non-negative and 2^dim must fit in an int")

	// ErrIncorrectOracleSize is returned when an oracle does not hold
	// exactly one value per hypercube point.
	ErrIncorrectOracleSize = errors.New("oracle size must be 2^dim")

	// ErrNonBooleanOraclePoint is returned when a hypercube point carries
	// a coordinate outside {0, 1}.
	ErrNonBooleanOraclePoint = errors.New("non-boolean value encountered: all coordinates must be in {0, 1}")

	// ErrPointNotFound is returned when querying a point the oracle does
	// not store.
	ErrPointNotFound = errors.New("point not found in boolean hypercube map")

	// ErrOracle tags oracle failures surfaced while evaluating an
	// extension. Test for it with errors.Is; the underlying oracle error
	// stays reachable through errors.Is and errors.As.
	ErrOracle = errors.New("oracle error")
)

// OraclePointDimensionError reports a hypercube point whose length does
// not match the oracle dimension.
type OraclePointDimensionError struct {
	Expected, Found int
}

func (e *OraclePointDimensionError) Error() string {
	return fmt.Sprintf("point dimension mismatch: expected dimension %d, but found dimension %d", e.Expected, e.Found)
}

// WrongDimensionError reports an evaluation point whose length does not
// match the extension dimension.
type WrongDimensionError struct {
	Expected, Found int
}

func (e *WrongDimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected dimension %d, but found dimension %d", e.Expected, e.Found)
}

// InconsistentDimensionsError reports an eq weight requested for vectors
// of different lengths.
type InconsistentDimensionsError struct {
	BDim, ZDim int
}

func (e *InconsistentDimensionsError) Error() string {
	return fmt.Sprintf("b and z must have consistent dimensions: b has %d, z has %d", e.BDim, e.ZDim)
}

// NotImplementedError reports an evaluation strategy whose algorithm is
// not implemented.
type NotImplementedError struct {
	Strategy Strategy
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("evaluation strategy %v is not implemented", e.Strategy)
}

// wrapOracle ties an oracle failure into the evaluation error family.
func wrapOracle(err error) error {
	return fmt.Errorf("%w: %w", ErrOracle, err)
}
