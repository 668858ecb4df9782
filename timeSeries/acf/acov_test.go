package acf_test

import (
	"math"
	"math/rand"
	"testing"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/timeSeries/acf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCovLinearSeries(t *testing.T) {
	series := []float64{1, 2, 3, 4, 5}
	got, err := acf.AutoCov(series)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.0, 0.8, -0.2, -0.8, -0.8}, got, 1e-12)
	// 入参不变
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, series)
}

func TestAutoCovTooShort(t *testing.T) {
	for _, s := range [][]float64{nil, {}, {1}} {
		_, err := acf.AutoCov(s)
		assert.True(t, errorx.Is(err, errCode.INVALID_INPUT))
		_, err = acf.AutoCovFFT(s)
		assert.True(t, errorx.Is(err, errCode.INVALID_INPUT))
	}
}

func TestAutoCovNotFinite(t *testing.T) {
	_, err := acf.AutoCov([]float64{1, math.NaN(), 3})
	assert.True(t, errorx.Is(err, errCode.INVALID_INPUT))
}

func TestAutoCovLagZeroNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(60)
		s := make([]float64, n)
		for i := range s {
			s[i] = r.NormFloat64()*10 - 5
		}
		got, err := acf.AutoCov(s)
		require.NoError(t, err)
		require.Len(t, got, n)
		assert.GreaterOrEqual(t, got[0], 0.0)
	}
}

func TestAutoCovFFTMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, n := range []int{2, 3, 17, 64, 100} {
		s := make([]float64, n)
		for i := range s {
			s[i] = r.NormFloat64()
		}
		naive, err := acf.AutoCov(s)
		require.NoError(t, err)
		fast, err := acf.AutoCovFFT(s)
		require.NoError(t, err)
		assert.InDeltaSlice(t, naive, fast, 1e-9, "n=%d", n)
	}
}

func TestAutoCovIdempotent(t *testing.T) {
	s := []float64{0.3, -1.2, 2.5, 0.7, -0.1, 1.9}
	a, err := acf.AutoCov(s)
	require.NoError(t, err)
	b, err := acf.AutoCov(s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func benchSeries(n int) []float64 {
	r := rand.New(rand.NewSource(1))
	s := make([]float64, n)
	for i := range s {
		s[i] = r.NormFloat64()
	}
	return s
}

func BenchmarkAutoCov(b *testing.B) {
	s := benchSeries(2048)
	for i := 0; i < b.N; i++ {
		_, _ = acf.AutoCov(s)
	}
}

func BenchmarkAutoCovFFT(b *testing.B) {
	s := benchSeries(2048)
	for i := 0; i < b.N; i++ {
		_, _ = acf.AutoCovFFT(s)
	}
}
