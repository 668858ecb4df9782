package lrv

import (
	"math"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
)

// 与数据无关的带宽/初始滞后数, 只依赖 T, 结果向 0 截断

func BartlettAutoSeed(x float64, T int) (int, error) {
	return growthRate(x, T, 2.0/9.0)
}

func QSAutoSeed(x float64, T int) (int, error) {
	return growthRate(x, T, 2.0/25.0)
}

func BartlettManualBandwidth(x float64, T int) (int, error) {
	return growthRate(x, T, 1.0/4.0)
}

func QSManualBandwidth(x float64, T int) (int, error) {
	return growthRate(2.0/3.0*x, T, 1.0/4.0)
}

func BandwidthByRule(rule BandwidthRule, x float64, T int) (int, error) {
	switch rule {
	case RULE_BARTLETT_AUTO:
		return BartlettAutoSeed(x, T)
	case RULE_QS_AUTO:
		return QSAutoSeed(x, T)
	case RULE_BARTLETT_MANUAL:
		return BartlettManualBandwidth(x, T)
	case RULE_QS_MANUAL:
		return QSManualBandwidth(x, T)
	default:
		return 0, errorx.Newf(errCode.INVALID_VALUE, "unknown bandwidth rule %d", int(rule))
	}
}

func growthRate(x float64, T int, power float64) (int, error) {
	if T <= 0 {
		return 0, errorx.Newf(errCode.INVALID_INPUT, "sample size T must be > 0, got %d", T)
	}
	return int(math.Trunc(x * math.Pow(float64(T)/100, power))), nil
}
