// Package modp implements the field contracts over the integers modulo a
// prime. Arithmetic is exact on uint64 residues, which keeps small test
// scenarios hand-checkable; production code wants field/bn254 instead.
package modp

import (
	"errors"
	"math/big"
	"math/bits"
	"math/rand"

	"github.com/Praz314159/sumcheck/field"
)

const maxModulusBits = 63

var (
	// ErrNotPrime rejects composite moduli.
	ErrNotPrime = errors.New("modulus must be prime")
	// ErrModulusTooLarge rejects moduli at or above 2^63.
	ErrModulusTooLarge = errors.New("modulus must fit in 63 bits")
)

// Field performs arithmetic modulo a prime p. Elements are canonical
// residues in [0, p); use Reduce to canonicalize external values before
// operating on them.
type Field struct {
	p uint64
}

// New returns the field of integers modulo p. The modulus must be a
// prime below 2^63 so that sums of residues cannot overflow a uint64.
func New(p uint64) (Field, error) {
	if p >= 1<<maxModulusBits {
		return Field{}, ErrModulusTooLarge
	}
	// ProbablyPrime is exact for inputs below 2^64.
	if !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return Field{}, ErrNotPrime
	}
	return Field{p: p}, nil
}

// Modulus returns p.
func (f Field) Modulus() uint64 { return f.p }

// Reduce maps an arbitrary value to its canonical residue.
func (f Field) Reduce(a uint64) uint64 { return a % f.p }

func (f Field) Zero() uint64 { return 0 }

func (f Field) One() uint64 { return 1 }

func (f Field) Add(a, b uint64) uint64 {
	s := a + b // no overflow, both operands below 2^63
	if s >= f.p {
		s -= f.p
	}
	return s
}

func (f Field) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.p - b
}

func (f Field) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, f.p)
	return rem
}

func (f Field) Equal(a, b uint64) bool { return a == b }

var _ field.Arith[uint64] = Field{}

// Rand draws uniform residues of f from rng.
type Rand struct {
	f   Field
	rng *rand.Rand
}

// NewRand wraps rng as a sampler over f. The sampler is not safe for
// concurrent use.
func NewRand(f Field, rng *rand.Rand) Rand {
	return Rand{f: f, rng: rng}
}

func (r Rand) Draw() uint64 {
	return uint64(r.rng.Int63n(int64(r.f.p)))
}

var _ field.Sampler[uint64] = Rand{}
