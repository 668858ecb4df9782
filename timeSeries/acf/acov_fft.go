// FFT 加速的自协方差:
// 1) 去均值后零填充到 >= 2T 的 2 的幂, 避免循环卷积 wrap-around
// 2) FFT 得到 X, X⋅conj(X) = |X|^2
// 3) IFFT 得到 Σt em[t]⋅em[t+k]
// 复杂度 O(T²) => O(T log T), 结果与 AutoCov 只差浮点舍入
package acf

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

func AutoCovFFT(series []float64) ([]float64, error) {
	u, err := demeanChecked(series)
	if err != nil {
		return nil, err
	}
	T := len(u)

	L := nextPow2(2 * T)
	seq := make([]float64, L)
	copy(seq, u)

	fft := fourier.NewFFT(L)
	coeff := fft.Coefficients(nil, seq) // len = L/2 + 1
	for i, c := range coeff {
		re, im := real(c), imag(c)
		coeff[i] = complex(re*re+im*im, 0)
	}

	// Coefficients 再 Sequence 会乘以 L
	acTime := fft.Sequence(nil, coeff)
	scale := 1.0 / (float64(L) * float64(T))

	acov := make([]float64, T)
	for k := 0; k < T; k++ {
		acov[k] = acTime[k] * scale
	}
	return acov, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
