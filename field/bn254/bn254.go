// Package bn254 implements the field contracts over the scalar field of
// the BN254 curve, the engine's production field.
package bn254

import (
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Praz314159/sumcheck/common"
	"github.com/Praz314159/sumcheck/field"
)

// Field performs fr arithmetic. The zero value is ready to use.
type Field struct{}

func (Field) Zero() fr.Element { return fr.Element{} }

func (Field) One() fr.Element { return fr.One() }

func (Field) Add(a, b fr.Element) fr.Element {
	var res fr.Element
	res.Add(&a, &b)
	return res
}

func (Field) Sub(a, b fr.Element) fr.Element {
	var res fr.Element
	res.Sub(&a, &b)
	return res
}

func (Field) Mul(a, b fr.Element) fr.Element {
	var res fr.Element
	res.Mul(&a, &b)
	return res
}

func (Field) Equal(a, b fr.Element) bool { return a.Equal(&b) }

var _ field.Arith[fr.Element] = Field{}

// Rand draws uniform elements from crypto/rand.
type Rand struct{}

func (Rand) Draw() fr.Element {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		panic(err) // entropy source failure
	}
	return e
}

var _ field.Sampler[fr.Element] = Rand{}

// RandomVector returns n independently uniform elements, drawn on all
// available cores.
func RandomVector(n int) []fr.Element {
	res := make([]fr.Element, n)
	common.Parallelize(n, func(start, stop int) {
		for i := start; i < stop; i++ {
			if _, err := res[i].SetRandom(); err != nil {
				panic(err)
			}
		}
	})
	return res
}

// PseudoRandomVector returns a deterministic vector, for tests and
// benchmarks that need stable fixtures.
func PseudoRandomVector(n int) []fr.Element {
	res := make([]fr.Element, n)
	for i := range res {
		res[i].SetUint64(uint64(i)*uint64(i) ^ 0x9e3779b97f4a7c15)
	}
	return res
}

// VectorString pretty prints a vector of elements to ease debugging.
func VectorString(v []fr.Element) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}
