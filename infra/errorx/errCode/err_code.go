package errCode

// 错误码
type Code int

const (
	OK                     Code = iota
	INVALID_VALUE               // 参数值非法
	EMPTY_VALUE                 // 输入为空
	INVALID_INPUT               // 序列长度不足等退化输入
	INVALID_BANDWIDTH           // 带宽为负或非法
	INVALID_BANDWIDTH_SEED      // 自动带宽的初始滞后数非法
	INVALID_KERNEL              // 未知核函数
	INVALID_CRITERION           // 未知信息准则
	INSUFFICIENT_LAGS           // 自协方差长度不足
	INVALID_ORDER               // AR阶数上限非法
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_INPUT:
		return "INVALID_INPUT"
	case INVALID_BANDWIDTH:
		return "INVALID_BANDWIDTH"
	case INVALID_BANDWIDTH_SEED:
		return "INVALID_BANDWIDTH_SEED"
	case INVALID_KERNEL:
		return "INVALID_KERNEL"
	case INVALID_CRITERION:
		return "INVALID_CRITERION"
	case INSUFFICIENT_LAGS:
		return "INSUFFICIENT_LAGS"
	case INVALID_ORDER:
		return "INVALID_ORDER"
	default:
		return "UNKNOWN"
	}
}
