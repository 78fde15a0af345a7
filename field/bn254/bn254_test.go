package bn254

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
)

func TestFieldOpsMatchFr(t *testing.T) {
	f := Field{}
	v := PseudoRandomVector(2)
	a, b := v[0], v[1]

	var want fr.Element
	want.Add(&a, &b)
	got := f.Add(a, b)
	assert.True(t, want.Equal(&got))

	want.Sub(&a, &b)
	got = f.Sub(a, b)
	assert.True(t, want.Equal(&got))

	want.Mul(&a, &b)
	got = f.Mul(a, b)
	assert.True(t, want.Equal(&got))

	assert.True(t, f.Equal(f.Mul(a, f.One()), a))
	assert.True(t, f.Equal(f.Add(a, f.Zero()), a))
	assert.False(t, f.Equal(a, b))
}

func TestRandomVector(t *testing.T) {
	v := RandomVector(1000)
	assert.Equal(t, 1000, len(v))
	// a collision would mean the entropy source is broken
	assert.False(t, v[0].Equal(&v[1]))
}

func TestPseudoRandomVectorIsDeterministic(t *testing.T) {
	a := PseudoRandomVector(32)
	b := PseudoRandomVector(32)
	for i := range a {
		assert.True(t, a[i].Equal(&b[i]), "index %v", i)
	}
}

func TestVectorString(t *testing.T) {
	var x, y fr.Element
	x.SetUint64(1)
	y.SetUint64(2)
	assert.Equal(t, "[1, 2]", VectorString([]fr.Element{x, y}))
	assert.Equal(t, "[]", VectorString(nil))
}
