package lrv

import (
	"math"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/infra/observe/log/staticLog"
)

// SelectBandwidth Newey-West (1994) 自动带宽, 不做预白化
// acov 为 lag 0..T-1 的自协方差, n 为初始滞后数
//
//	s0 = acov[0] + 2Σ_{j=1}^{n} acov[j]
//	Bartlett: s1 = 2Σ j⋅acov[j],  γ = 1.1447⋅((s1/s0)²)^(1/3), m = min(T, trunc(γ⋅T^(1/3)))
//	QS:       s2 = 2Σ j²⋅acov[j], γ = 1.3221⋅((s2/s0)²)^(1/5), m = min(T, γ⋅T^(1/5))
func SelectBandwidth(kind KernelKind, acov []float64, n int) (float64, error) {
	if !kind.valid() {
		return 0, errorx.Newf(errCode.INVALID_KERNEL, "unknown kernel %d", int(kind))
	}
	if n < 0 {
		return 0, errorx.Newf(errCode.INVALID_BANDWIDTH_SEED, "seed lag count must be >= 0, got %d", n)
	}
	if n == 0 {
		return 0, nil
	}
	if len(acov) < n+1 {
		return 0, errorx.Newf(errCode.INSUFFICIENT_LAGS, "seed %d needs %d autocovariances, have %d", n, n+1, len(acov))
	}

	T := float64(len(acov))
	s0 := acov[0]
	sj := 0.0
	for j := 1; j <= n; j++ {
		s0 += 2 * acov[j]
		lag := float64(j)
		if kind == KERNEL_BARTLETT {
			sj += 2 * lag * acov[j]
		} else {
			sj += 2 * lag * lag * acov[j]
		}
	}

	// 常数序列, 自协方差全为 0
	if s0 == 0 {
		staticLog.Log.WithField("kernel", kind.String()).Debug("flat autocovariance, bandwidth set to 0")
		return 0, nil
	}

	ratio2 := (sj / s0) * (sj / s0)
	switch kind {
	case KERNEL_BARTLETT:
		gamma := 1.1447 * math.Pow(ratio2, 1.0/3.0)
		return math.Min(T, math.Trunc(gamma*math.Cbrt(T))), nil
	default:
		gamma := 1.3221 * math.Pow(ratio2, 1.0/5.0)
		return math.Min(T, gamma*math.Pow(T, 1.0/5.0)), nil
	}
}
