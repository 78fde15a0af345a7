// Package field declares the scalar contracts the evaluation engine is
// generic over: arithmetic on an opaque field element type, and uniform
// sampling of elements from an external randomness source.
package field

// Arith performs the arithmetic of a finite field on elements of type E.
// Zero and One are the additive and multiplicative identities, Equal
// compares by value. Elements are immutable: every operation returns a
// fresh value and never modifies its operands.
type Arith[E any] interface {
	Zero() E
	One() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Equal(a, b E) bool
}

// Sampler draws independently uniform field elements. Randomness stays
// outside the evaluation engine; only the random-oracle constructors and
// the binaries consume it.
type Sampler[E any] interface {
	Draw() E
}
