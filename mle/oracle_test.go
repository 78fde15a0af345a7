package mle

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHypercubeSize(t *testing.T) {
	size, err := HypercubeSize(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, size)

	size, err = HypercubeSize(10)
	assert.NoError(t, err)
	assert.Equal(t, 1024, size)

	size, err = HypercubeSize(bits.UintSize - 2)
	assert.NoError(t, err)
	assert.Equal(t, 1<<(bits.UintSize-2), size)

	_, err = HypercubeSize(-1)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = HypercubeSize(bits.UintSize - 1)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
