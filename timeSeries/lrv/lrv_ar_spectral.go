package lrv

import (
	"math"
	"runtime"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/infra/observe/log/staticLog"
	"longrun/ml/ols"
	"longrun/pkg/utils/myTools"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// |1-Σβ| 小于该值视为接近单位根, 只告警不处理
const nearUnitRootTol = 1e-8

// 信息准则表的一行
type ICRow struct {
	Order  int
	Score  float64   // ln(s2) + k⋅penalty
	LRV    float64   // s2 / (1-Σβ)²
	Sigma2 float64   // 残差方差
	Coeffs []float64 // AR 系数 β1..βk
}

type ARSpectralResult struct {
	LRV       float64
	Order     int
	Criterion Criterion
	Table     []ICRow // Order 0..kmax
}

// 选中阶数对应的行
func (r ARSpectralResult) Selected() ICRow {
	return r.Table[r.Order]
}

// EstimateARSpectral 见 ARSpectral
func EstimateARSpectral(series []float64, criterion Criterion, kmax int, opts ...Option) (float64, int, error) {
	res, err := ARSpectral(series, criterion, kmax, opts...)
	if err != nil {
		return 0, 0, err
	}
	return res.LRV, res.Order, nil
}

// ARSpectral AR 谱密度法估计长期方差
// 对 k = 0..kmax 拟合 AR(k) (不含常数项), 按 AIC/BIC 选阶, 返回 s2/(1-Σβ)²
// k = 0 为白噪声基准 s2 = Σx²/T; 得分相同时取较小的阶数
// 序列不会在内部去均值, 需要时由调用方处理
func ARSpectral(series []float64, criterion Criterion, kmax int, opts ...Option) (ARSpectralResult, error) {
	if kmax < 0 {
		return ARSpectralResult{}, errorx.Newf(errCode.INVALID_ORDER, "kmax must be >= 0, got %d", kmax)
	}
	if criterion != IC_AIC && criterion != IC_BIC {
		return ARSpectralResult{}, errorx.Newf(errCode.INVALID_CRITERION, "unknown criterion %d", int(criterion))
	}
	T := len(series)
	if T < 2 {
		return ARSpectralResult{}, errorx.Newf(errCode.INVALID_INPUT, "series needs at least 2 observations, got %d", T)
	}
	if idx, ok := myTools.AllFinite(series); !ok {
		return ARSpectralResult{}, errorx.Newf(errCode.INVALID_INPUT, "series[%d] is not finite", idx)
	}
	// 最大阶数的回归需要 T-kmax 行 > kmax 列
	if kmax > 0 && T-kmax <= kmax {
		return ARSpectralResult{}, errorx.Newf(errCode.INVALID_ORDER, "kmax %d too large for %d observations", kmax, T)
	}

	o := applyOptions(opts)
	penalty := 2 / float64(T)
	if criterion == IC_BIC {
		penalty = math.Log(float64(T)) / float64(T)
	}

	table := make([]ICRow, kmax+1)
	s2 := myTools.DotProduct(series, series) / float64(T)
	table[0] = ICRow{Order: 0, Score: icScore(s2, 0, penalty), LRV: s2, Sigma2: s2}

	if o.parallel && kmax > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for k := 1; k <= kmax; k++ {
			k := k
			g.Go(func() error {
				row, err := fitAROrder(series, k, penalty)
				table[k] = row
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return ARSpectralResult{}, err
		}
	} else {
		for k := kmax; k >= 1; k-- {
			row, err := fitAROrder(series, k, penalty)
			if err != nil {
				return ARSpectralResult{}, err
			}
			table[k] = row
		}
	}

	// 从 k=0 向上扫描, 严格小于才替换
	best := 0
	for k := 1; k <= kmax; k++ {
		if table[k].Score < table[best].Score {
			best = k
		}
	}

	staticLog.Log.WithFields(logrus.Fields{
		"criterion": criterion.String(),
		"kmax":      kmax,
		"order":     best,
	}).Debug("ar spectral order selected")

	return ARSpectralResult{
		LRV:       table[best].LRV,
		Order:     best,
		Criterion: criterion,
		Table:     table,
	}, nil
}

// ln(s2) + k⋅penalty, 完美拟合 s2 = 0 时取最小正数, 得分保持有限
func icScore(s2 float64, k int, penalty float64) float64 {
	return math.Log(math.Max(s2, math.SmallestNonzeroFloat64)) + float64(k)*penalty
}

// x[t] 对 x[t-1..t-k] 回归, t = k..T-1
func fitAROrder(series []float64, k int, penalty float64) (ICRow, error) {
	T := len(series)
	rows := T - k
	matX := mat.NewDense(rows, k, nil)
	matY := mat.NewVecDense(rows, nil)
	for t := k; t < T; t++ {
		for j := 0; j < k; j++ {
			matX.Set(t-k, j, series[t-j-1])
		}
		matY.SetVec(t-k, series[t])
	}

	model, err := ols.FitMat(matX, matY)
	if err != nil {
		return ICRow{}, errorx.Wrap(errCode.INVALID_ORDER, err, "AR fit failed")
	}

	// 自由度修正 RSS/(rows-cols)
	s2 := model.Sigma2
	sumBeta := floats.Sum(model.Coeffs)
	den := (1 - sumBeta) * (1 - sumBeta)
	if math.Abs(1-sumBeta) < nearUnitRootTol {
		staticLog.Log.WithFields(logrus.Fields{
			"order":   k,
			"sumBeta": sumBeta,
		}).Warn("AR coefficients near unit root, long-run variance unstable")
	}
	// 精确单位根 den = 0 (含 0/0) 和溢出一律记为最大有限值
	lrv := s2 / den
	if den == 0 || math.IsNaN(lrv) || math.IsInf(lrv, 1) {
		lrv = math.MaxFloat64
	}

	return ICRow{
		Order:  k,
		Score:  icScore(s2, k, penalty),
		LRV:    lrv,
		Sigma2: s2,
		Coeffs: model.Coeffs,
	}, nil
}
