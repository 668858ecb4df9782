package acf

import (
	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/numpy/npCorr"
	"longrun/pkg/utils/myTools"
)

// 样本自协方差 (有偏, 分母固定为 T)
//
//	acov[j] = Σ_{i=j}^{T-1} em[i]⋅em[i-j] / T,  j = 0..T-1
//
// em 为去均值序列, 入参不会被修改
func AutoCov(series []float64) ([]float64, error) {
	u, err := demeanChecked(series)
	if err != nil {
		return nil, err
	}
	n := len(u)

	// full correlate, 取非负 lag
	full, err := npCorr.Correlate(u, u, npCorr.FULL_MODE)
	if err != nil {
		return nil, err
	}
	acov := full[n-1:]

	for k := range acov {
		acov[k] /= float64(n)
	}
	return acov, nil
}

func demeanChecked(series []float64) ([]float64, error) {
	n := len(series)
	if n < 2 {
		return nil, errorx.Newf(errCode.INVALID_INPUT, "series needs at least 2 observations, got %d", n)
	}
	if idx, ok := myTools.AllFinite(series); !ok {
		return nil, errorx.Newf(errCode.INVALID_INPUT, "series[%d] is not finite", idx)
	}
	return myTools.Demean(series), nil
}
