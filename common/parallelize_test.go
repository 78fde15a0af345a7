package common

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1000} {
		hits := make([]int32, n)
		Parallelize(n, func(start, stop int) {
			for i := start; i < stop; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i := range hits {
			assert.Equal(t, int32(1), hits[i], "n %v index %v", n, i)
		}
	}
}
