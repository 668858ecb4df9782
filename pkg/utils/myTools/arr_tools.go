package myTools

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/gonum/stat"
	"gonum.org/v1/gonum/floats"
)

// 算术平均, 空序列返回 NaN
func ArrMean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

func ArrSum(x []float64) float64 {
	return floats.Sum(x)
}

// 点积, 长度不一致 panic (与 floats.Dot 一致)
func DotProduct(x, y []float64) float64 {
	return floats.Dot(x, y)
}

// 有限值(非 NaN / 非 Inf)位置的 bitset
func FiniteMask(x []float64) *bitset.BitSet {
	mask := bitset.New(uint(len(x)))
	for i, v := range x {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			mask.Set(uint(i))
		}
	}
	return mask
}

// 序列是否全部为有限值, 否则返回第一个非法位置
func AllFinite(x []float64) (int, bool) {
	mask := FiniteMask(x)
	if mask.Count() == uint(len(x)) {
		return -1, true
	}
	first, _ := mask.Complement().NextSet(0)
	return int(first), false
}

// 去均值后的拷贝, 不修改入参
func Demean(x []float64) []float64 {
	mean := ArrMean(x)
	u := make([]float64, len(x))
	for i := range x {
		u[i] = x[i] - mean
	}
	return u
}
