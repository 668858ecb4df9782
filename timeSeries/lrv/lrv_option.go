package lrv

type options struct {
	fft      bool
	parallel bool
}

type Option func(*options)

// WithFFT 自协方差走 FFT, 大样本时更快, 结果只差浮点舍入
func WithFFT(on bool) Option {
	return func(o *options) {
		o.fft = on
	}
}

// WithParallel AR 各阶数并发拟合, 结果与串行一致
func WithParallel(on bool) Option {
	return func(o *options) {
		o.parallel = on
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
