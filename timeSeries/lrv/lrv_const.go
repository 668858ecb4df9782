package lrv

import "strings"

// 核函数类型
type KernelKind int

const (
	KERNEL_BARTLETT KernelKind = iota // "bartlett"
	KERNEL_QS                         // "qs" Quadratic Spectral
	KERNEL_ERROR                      // "ERROR"
)

func (k KernelKind) String() string {
	switch k {
	case KERNEL_BARTLETT:
		return "bartlett"
	case KERNEL_QS:
		return "qs"
	default:
		return "ERROR"
	}
}

func (k KernelKind) valid() bool {
	return k == KERNEL_BARTLETT || k == KERNEL_QS
}

func GetMyKernel(s string) KernelKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bartlett":
		return KERNEL_BARTLETT
	case "qs", "quadratic-spectral", "quadratic_spectral":
		return KERNEL_QS
	default:
		return KERNEL_ERROR
	}
}

// AR 定阶的信息准则
type Criterion int

const (
	IC_AIC   Criterion = iota // "AIC"
	IC_BIC                    // "BIC"
	IC_ERROR                  // "ERROR"
)

func (c Criterion) String() string {
	switch c {
	case IC_AIC:
		return "AIC"
	case IC_BIC:
		return "BIC"
	default:
		return "ERROR"
	}
}

func GetMyCriterion(s string) Criterion {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AIC":
		return IC_AIC
	case "BIC":
		return IC_BIC
	default:
		return IC_ERROR
	}
}

// 带宽经验公式 (Newey-West 1994 增长率序列)
type BandwidthRule int

const (
	RULE_BARTLETT_AUTO   BandwidthRule = iota // "bartlett-auto"   n = x(T/100)^(2/9)
	RULE_QS_AUTO                              // "qs-auto"         n = x(T/100)^(2/25)
	RULE_BARTLETT_MANUAL                      // "bartlett-manual" m = x(T/100)^(1/4)
	RULE_QS_MANUAL                            // "qs-manual"       m = 2/3·x(T/100)^(1/4)
	RULE_ERROR
)

func (r BandwidthRule) String() string {
	switch r {
	case RULE_BARTLETT_AUTO:
		return "bartlett-auto"
	case RULE_QS_AUTO:
		return "qs-auto"
	case RULE_BARTLETT_MANUAL:
		return "bartlett-manual"
	case RULE_QS_MANUAL:
		return "qs-manual"
	default:
		return "ERROR"
	}
}

func GetMyBandwidthRule(s string) BandwidthRule {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bartlett-auto":
		return RULE_BARTLETT_AUTO
	case "qs-auto":
		return RULE_QS_AUTO
	case "bartlett-manual":
		return RULE_BARTLETT_MANUAL
	case "qs-manual":
		return RULE_QS_MANUAL
	default:
		return RULE_ERROR
	}
}

// 带宽的确定方式
type BandwidthMode int

const (
	BW_MANUAL    BandwidthMode = iota // 直接给定带宽
	BW_AUTOMATIC                      // Newey-West 自动选择, 给定初始滞后数
	BW_ERROR
)

func (m BandwidthMode) String() string {
	switch m {
	case BW_MANUAL:
		return "manual"
	case BW_AUTOMATIC:
		return "automatic"
	default:
		return "ERROR"
	}
}

func GetMyBandwidthMode(s string) BandwidthMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return BW_MANUAL
	case "automatic", "auto":
		return BW_AUTOMATIC
	default:
		return BW_ERROR
	}
}

type BandwidthPolicy struct {
	Mode      BandwidthMode
	Bandwidth float64 // BW_MANUAL 使用
	Seed      int     // BW_AUTOMATIC 使用, 初始滞后数 n
}

func Manual(bandwidth float64) BandwidthPolicy {
	return BandwidthPolicy{Mode: BW_MANUAL, Bandwidth: bandwidth}
}

func Automatic(seed int) BandwidthPolicy {
	return BandwidthPolicy{Mode: BW_AUTOMATIC, Seed: seed}
}
