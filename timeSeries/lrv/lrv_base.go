// Package lrv 长期方差 (long-run variance) 估计
//
// 核估计: 自协方差 × 核权重 (Bartlett / Quadratic Spectral), 带宽手动给定或 Newey-West 自动选择
// AR 谱估计: 按 AIC/BIC 选 AR 阶数, s2/(1-Σβ)²
// 所有函数都是纯函数, 不保存任何跨调用状态
package lrv

import (
	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/infra/observe/log/staticLog"
	"longrun/timeSeries/acf"

	"github.com/sirupsen/logrus"
)

type LRVResult struct {
	LRV       float64
	Bandwidth float64 // 实际使用的带宽
	Kernel    KernelKind
	Clamped   bool      // 自动带宽因自协方差不足被截到 T
	Acov      []float64 // lag 0..T-1
	Weights   []float64 // 核权重 lag 0..T-1
}

// LongRunVariance 见 Estimate
func LongRunVariance(series []float64, kind KernelKind, policy BandwidthPolicy, opts ...Option) (float64, error) {
	res, err := Estimate(series, kind, policy, opts...)
	if err != nil {
		return 0, err
	}
	return res.LRV, nil
}

// Estimate 核估计长期方差
//
//	lrv = Σ_j k[j]⋅acov[j]⋅w[j],  k[0] = 1, k[j≥1] = 2
//
// 自动带宽时若 seed+1 > T 直接取 T, 不调用 SelectBandwidth
func Estimate(series []float64, kind KernelKind, policy BandwidthPolicy, opts ...Option) (LRVResult, error) {
	if !kind.valid() {
		return LRVResult{}, errorx.Newf(errCode.INVALID_KERNEL, "unknown kernel %d", int(kind))
	}
	o := applyOptions(opts)

	autoCov := acf.AutoCov
	if o.fft {
		autoCov = acf.AutoCovFFT
	}
	acov, err := autoCov(series)
	if err != nil {
		return LRVResult{}, err
	}
	T := len(acov)

	res := LRVResult{Kernel: kind, Acov: acov}
	switch policy.Mode {
	case BW_MANUAL:
		res.Bandwidth = policy.Bandwidth
	case BW_AUTOMATIC:
		if policy.Seed < 0 {
			return LRVResult{}, errorx.Newf(errCode.INVALID_BANDWIDTH_SEED, "seed lag count must be >= 0, got %d", policy.Seed)
		}
		if policy.Seed+1 > T {
			res.Bandwidth = float64(T)
			res.Clamped = true
			staticLog.Log.WithFields(logrus.Fields{
				"seed": policy.Seed,
				"T":    T,
			}).Debug("seed exceeds available lags, bandwidth clamped to T")
			break
		}
		bw, err := SelectBandwidth(kind, acov, policy.Seed)
		if err != nil {
			return LRVResult{}, err
		}
		res.Bandwidth = bw
	default:
		return LRVResult{}, errorx.Newf(errCode.INVALID_VALUE, "unknown bandwidth mode %d", int(policy.Mode))
	}

	kern, err := KernelWeights(T, res.Bandwidth, kind)
	if err != nil {
		return LRVResult{}, err
	}
	res.Weights = kern

	lrv := acov[0] * kern[0]
	for j := 1; j < T; j++ {
		lrv += 2 * acov[j] * kern[j]
	}
	res.LRV = lrv
	return res, nil
}
