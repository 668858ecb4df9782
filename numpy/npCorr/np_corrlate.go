package npCorr

import (
	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
)

// 互相关, 与 np.correlate(a, v, mode) 一致 (实数序列)
// full 模式: out[k+m-1] = Σj a[j+k]·v[j], k = -(m-1) .. n-1
// 自协方差取 Correlate(u, u, FULL_MODE)[n-1:]
func Correlate(a, v []float64, mode CORRELATE_MODE) ([]float64, error) {
	n, m := len(a), len(v)
	if n == 0 || m == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "input series empty")
	}
	if mode != FULL_MODE && mode != VALID_MODE && mode != SAME_MODE {
		return nil, errorx.New(errCode.INVALID_VALUE, "invalid mode, expected 'full', 'same' or 'valid'")
	}
	if mode == VALID_MODE && m > n {
		return nil, errorx.New(errCode.INVALID_VALUE, "valid mode needs len(v) <= len(a)")
	}

	var outLen, start int
	switch mode {
	case FULL_MODE:
		outLen = n + m - 1
	case VALID_MODE:
		outLen = n - m + 1
		start = m - 1
	case SAME_MODE:
		outLen = n
		start = (m - 1) / 2
	}

	out := make([]float64, outLen)
	for i := 0; i < outLen; i++ {
		// 在 full 序列里的位置 i+start, 对应位移 k = i+start-(m-1)
		shift := i + start - (m - 1)
		sum := 0.0
		for j := 0; j < m; j++ {
			ai := j + shift
			if ai >= 0 && ai < n {
				sum += a[ai] * v[j]
			}
		}
		out[i] = sum
	}

	return out, nil
}

type CORRELATE_MODE uint

const (
	FULL_MODE CORRELATE_MODE = iota
	VALID_MODE
	SAME_MODE
)

func (m CORRELATE_MODE) String() string {
	switch m {
	case FULL_MODE:
		return "full"
	case VALID_MODE:
		return "valid"
	case SAME_MODE:
		return "same"
	default:
		return "ERROR"
	}
}
