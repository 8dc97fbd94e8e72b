package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseSampler_Deterministic(t *testing.T) {
	a := NewNoiseSampler(42, 10).Samples(32)
	b := NewNoiseSampler(42, 10).Samples(32)
	require.Len(t, a, 32)
	assert.Equal(t, a, b, "одинаковый сид должен давать одинаковые векторы")

	assert.Equal(t, a[5], NewNoiseSampler(42, 10).Sample(5))
}

func TestNoiseSampler_Range(t *testing.T) {
	s := NewNoiseSampler(7, 10)
	nonZero := 0
	for i, v := range s.Samples(64) {
		for _, c := range v {
			f := float64(c)
			require.False(t, math.IsNaN(f) || math.IsInf(f, 0), "образец %d: %v", i, v)
			assert.LessOrEqual(t, math.Abs(f), 20.0, "образец %d вне диапазона: %v", i, v)
			if c != 0 {
				nonZero++
			}
		}
	}
	assert.Greater(t, nonZero, 0, "шум не должен быть тождественно нулевым")
}

func TestNoiseSampler_Empty(t *testing.T) {
	assert.Empty(t, NewNoiseSampler(1, 1).Samples(0))
}
