package lrv_test

import (
	"math/rand"
	"testing"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/timeSeries/lrv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linear = []float64{1, 2, 3, 4, 5}

func TestLongRunVarianceManualBartlett(t *testing.T) {
	got, err := lrv.LongRunVariance(linear, lrv.KERNEL_BARTLETT, lrv.Manual(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.9333333333333336, got, 1e-12)
}

func TestEstimateManualZeroBandwidth(t *testing.T) {
	for _, kind := range []lrv.KernelKind{lrv.KERNEL_BARTLETT, lrv.KERNEL_QS} {
		res, err := lrv.Estimate(linear, kind, lrv.Manual(0))
		require.NoError(t, err)
		// 只剩 lag 0
		assert.InDelta(t, 2.0, res.LRV, 1e-12)
		assert.Equal(t, 0.0, res.Bandwidth)
	}
}

func TestEstimateAutomatic(t *testing.T) {
	res, err := lrv.Estimate(linear, lrv.KERNEL_BARTLETT, lrv.Automatic(3))
	require.NoError(t, err)
	assert.False(t, res.Clamped)
	assert.Equal(t, 3.0, res.Bandwidth)
	assert.InDelta(t, 2.6, res.LRV, 1e-12)
	assert.InDeltaSlice(t, []float64{2.0, 0.8, -0.2, -0.8, -0.8}, res.Acov, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.75, 0.5, 0.25, 0}, res.Weights, 1e-12)

	res, err = lrv.Estimate(linear, lrv.KERNEL_QS, lrv.Automatic(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Bandwidth)
	assert.InDelta(t, 2.0, res.LRV, 1e-12)
}

func TestEstimateAutomaticClamped(t *testing.T) {
	// seed+1 > T: 带宽直接取 T
	res, err := lrv.Estimate(linear, lrv.KERNEL_BARTLETT, lrv.Automatic(5))
	require.NoError(t, err)
	assert.True(t, res.Clamped)
	assert.Equal(t, 5.0, res.Bandwidth)
	assert.InDelta(t, 1.7333333333333334, res.LRV, 1e-12)
}

func TestEstimateFFTMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	x := make([]float64, 256)
	for i := range x {
		x[i] = r.NormFloat64()
		if i > 0 {
			x[i] += 0.4 * x[i-1]
		}
	}
	for _, kind := range []lrv.KernelKind{lrv.KERNEL_BARTLETT, lrv.KERNEL_QS} {
		naive, err := lrv.Estimate(x, kind, lrv.Automatic(6))
		require.NoError(t, err)
		fast, err := lrv.Estimate(x, kind, lrv.Automatic(6), lrv.WithFFT(true))
		require.NoError(t, err)
		assert.InDelta(t, naive.LRV, fast.LRV, 1e-8)
		assert.Positive(t, naive.LRV)
	}
}

func TestEstimateIdempotent(t *testing.T) {
	a, err := lrv.LongRunVariance(linear, lrv.KERNEL_QS, lrv.Manual(1.7))
	require.NoError(t, err)
	b, err := lrv.LongRunVariance(linear, lrv.KERNEL_QS, lrv.Manual(1.7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEstimateErrors(t *testing.T) {
	_, err := lrv.Estimate([]float64{1}, lrv.KERNEL_BARTLETT, lrv.Manual(1))
	assert.True(t, errorx.Is(err, errCode.INVALID_INPUT))

	_, err = lrv.Estimate(linear, lrv.KERNEL_ERROR, lrv.Manual(1))
	assert.True(t, errorx.Is(err, errCode.INVALID_KERNEL))

	_, err = lrv.Estimate(linear, lrv.KERNEL_BARTLETT, lrv.Manual(-2))
	assert.True(t, errorx.Is(err, errCode.INVALID_BANDWIDTH))

	_, err = lrv.Estimate(linear, lrv.KERNEL_QS, lrv.Automatic(-1))
	assert.True(t, errorx.Is(err, errCode.INVALID_BANDWIDTH_SEED))

	_, err = lrv.Estimate(linear, lrv.KERNEL_QS, lrv.BandwidthPolicy{Mode: lrv.BW_ERROR})
	assert.True(t, errorx.Is(err, errCode.INVALID_VALUE))
}
