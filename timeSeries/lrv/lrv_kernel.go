package lrv

import (
	"math"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
)

// KernelWeights 返回长度 T 的核权重, w[0] = 1
//
//	Bartlett: w[j] = max(0, 1 - j/(m+1))
//	QS:       w[j] = 25/(12π²x²)·(sin(1.2πx)/(1.2πx) - cos(1.2πx)),  x = j/m
//
// QS 不截断, 整个 T 长度都计算; m = 0 时退化为只保留 lag 0
func KernelWeights(T int, bandwidth float64, kind KernelKind) ([]float64, error) {
	if T < 1 {
		return nil, errorx.Newf(errCode.INVALID_INPUT, "sample size T must be >= 1, got %d", T)
	}
	if !kind.valid() {
		return nil, errorx.Newf(errCode.INVALID_KERNEL, "unknown kernel %d", int(kind))
	}
	if bandwidth < 0 || math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return nil, errorx.Newf(errCode.INVALID_BANDWIDTH, "bandwidth must be finite and >= 0, got %v", bandwidth)
	}

	w := make([]float64, T)
	w[0] = 1
	switch kind {
	case KERNEL_BARTLETT:
		for j := 1; j < T; j++ {
			w[j] = math.Max(0, 1-float64(j)/(bandwidth+1))
		}
	case KERNEL_QS:
		if bandwidth == 0 {
			return w, nil
		}
		for j := 1; j < T; j++ {
			w[j] = qsWeight(float64(j) / bandwidth)
		}
	}
	return w, nil
}

func qsWeight(x float64) float64 {
	if x == 0 {
		return 1
	}
	z := 1.2 * math.Pi * x
	return 25 / (12 * math.Pi * math.Pi * x * x) * (math.Sin(z)/z - math.Cos(z))
}
