package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactors_Examples(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{12, []int{2, 2, 3}},
		{60, []int{2, 2, 3, 5}},
		{100, []int{2, 2, 5, 5}},
		{315, []int{3, 3, 5, 7}},
		{1001, []int{7, 11, 13}},
		{97, []int{97}},
		{2, []int{2}},
		{4, []int{2, 2}},
		{9, []int{3, 3}},
		{1, []int{}},
		{0, []int{}},
		{-12, []int{}},
	}

	for _, tt := range tests {
		got := Factors(tt.n)
		require.NotNil(t, got)
		assert.Equal(t, tt.want, got, "Factors(%d)", tt.n)
	}
}

func TestFactors_Wide(t *testing.T) {
	assert.Equal(t, []int64{71, 839, 1471, 6857}, Factors(int64(600851475143)))
	assert.Equal(t, []int64{2, 9999991}, Factors(int64(19999982)))
	assert.Equal(t, []int64{2, 3, 3, 5, 3607, 3803}, Factors(int64(1234567890)))
}

func TestFactors_32BitBoundary(t *testing.T) {
	assert.Equal(t, []int32{math.MaxInt32}, Factors(int32(math.MaxInt32)))
	assert.Equal(t, []int32{2, 3, 3, 7, 11, 31, 151, 331}, Factors(int32(math.MaxInt32-1)))
}

func TestFactors_RoundTrip(t *testing.T) {
	for n := 2; n <= 5000; n++ {
		factors := Factors(n)
		require.NotEmpty(t, factors, "n=%d", n)

		product := 1
		for i, f := range factors {
			require.True(t, IsPrime(f), "factor %d of %d is not prime", f, n)
			if i > 0 {
				require.LessOrEqual(t, factors[i-1], f, "factors of %d not ascending", n)
			}
			product *= f
		}
		require.Equal(t, n, product, "product of factors of %d", n)
	}
}

func TestFactors_PrimeInputIsItsOwnFactor(t *testing.T) {
	for _, p := range Sieve(2000) {
		assert.Equal(t, []int{p}, Factors(p))
	}
}
