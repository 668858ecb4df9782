package ols

import (
	"math"

	"longrun/infra/errorx"
	"longrun/infra/errorx/errCode"
	"longrun/infra/observe/log/staticLog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

type MultiLinearModel struct {
	Coeffs      []float64 // 回归系数
	SE          []float64 // 标准误
	TStats      []float64 // t统计量
	PValues     []float64 // p值（双尾）
	Resids      []float64 // 残差
	RSS         float64   // 残差平方和
	AIC         float64
	BIC         float64
	Sigma2      float64 // 残差方差 RSS/(n-k)
	RSquared    float64
	AdjRSquared float64
}

// 最小二乘核心结果, 推断统计量在 MultiRegressionMat 中补齐
type lsFit struct {
	beta   mat.VecDense
	invXTX mat.Dense
	resid  *mat.VecDense
	rss    float64
	n, k   int
}

func solveLS(matX *mat.Dense, matY *mat.VecDense) (*lsFit, error) {
	n, k := matX.Dims()
	if n == 0 || k == 0 {
		return nil, errorx.New(errCode.EMPTY_VALUE, "design matrix is empty")
	}
	if matY.Len() != n {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "rows mismatch: X has %d, y has %d", n, matY.Len())
	}
	if n <= k {
		return nil, errorx.Newf(errCode.INVALID_VALUE, "df=%d: rows n must be greater than columns k", n-k)
	}
	f := &lsFit{n: n, k: k}

	// (X'X)
	var XTX mat.Dense
	XTX.Mul(matX.T(), matX)

	// (X'X)^(-1), 奇异时退化为 SVD 广义逆
	if err := f.invXTX.Inverse(&XTX); err != nil {
		staticLog.Log.Infof("warning XTX矩阵不可逆 %s", err)
		pinv, errSVD := pseudoInverse(&XTX)
		if errSVD != nil {
			return nil, errSVD
		}
		f.invXTX.CloneFrom(pinv)
	}

	// (X'Y)
	var XTY mat.VecDense
	XTY.MulVec(matX.T(), matY)

	// β = (X'X)^(-1) * (X'Y)
	f.beta.MulVec(&f.invXTX, &XTY)

	// 预测值 & 残差
	Yhat := mat.NewVecDense(n, nil)
	Yhat.MulVec(matX, &f.beta)
	f.resid = mat.NewVecDense(n, nil)
	f.resid.SubVec(matY, Yhat)

	f.rss = mat.Dot(f.resid, f.resid)
	return f, nil
}

func (f *lsFit) coeffs() []float64 {
	coeffs := make([]float64, f.k)
	for i := 0; i < f.k; i++ {
		coeffs[i] = f.beta.AtVec(i)
	}
	return coeffs
}

// FitMat 只做最小二乘: Coeffs, Resids, RSS, Sigma2; 推断统计量字段为零值
func FitMat(matX *mat.Dense, matY *mat.VecDense) (MultiLinearModel, error) {
	f, err := solveLS(matX, matY)
	if err != nil {
		return MultiLinearModel{}, err
	}
	return MultiLinearModel{
		Coeffs: f.coeffs(),
		Resids: f.resid.RawVector().Data,
		RSS:    f.rss,
		Sigma2: f.rss / float64(f.n-f.k),
	}, nil
}

// MultiRegressionMat 最小二乘 y = Xβ + ε, X 不自动加常数列
func MultiRegressionMat(matX *mat.Dense, matY *mat.VecDense) (MultiLinearModel, error) {
	f, err := solveLS(matX, matY)
	if err != nil {
		return MultiLinearModel{}, err
	}
	n, k := f.n, f.k
	RSS := f.rss
	sigma2 := RSS / float64(n-k)

	// SE = sqrt( diag(σ² * (X'X)^(-1)) )
	SE := make([]float64, k)
	tStats := make([]float64, k)
	pValues := make([]float64, k)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - k)}
	for i := 0; i < k; i++ {
		SE[i] = math.Sqrt(sigma2 * f.invXTX.At(i, i))
		tStats[i] = f.beta.AtVec(i) / SE[i]
		pValues[i] = 2 * tdist.Survival(math.Abs(tStats[i]))
	}

	// R² & 调整后R²
	Ymean := mat.Sum(matY) / float64(n)
	TSS := 0.0
	for i := 0; i < n; i++ {
		diff := matY.AtVec(i) - Ymean
		TSS += diff * diff
	}
	RSq, AdjRSq := math.NaN(), math.NaN()
	if TSS > 0 {
		RSq = 1 - RSS/TSS
		AdjRSq = 1 - (1-RSq)*float64(n-1)/float64(n-k)
	}

	// AIC / BIC (高斯似然)
	logLik := -0.5 * float64(n) * (1 + math.Log(2*math.Pi*RSS/float64(n)))
	AIC := -2*logLik + 2*float64(k)
	BIC := -2*logLik + float64(k)*math.Log(float64(n))

	return MultiLinearModel{
		Coeffs:      f.coeffs(),
		SE:          SE,
		TStats:      tStats,
		PValues:     pValues,
		Resids:      f.resid.RawVector().Data,
		RSS:         RSS,
		AIC:         AIC,
		BIC:         BIC,
		Sigma2:      sigma2,
		RSquared:    RSq,
		AdjRSquared: AdjRSq,
	}, nil
}

// MultiRegression 行切片输入, withConst 时在第一列加常数项
func MultiRegression(X [][]float64, Y []float64, withConst bool) (MultiLinearModel, error) {
	n := len(Y)
	if n == 0 || len(X) == 0 {
		return MultiLinearModel{}, errorx.New(errCode.EMPTY_VALUE, "输入数据为空")
	}
	if n != len(X) {
		return MultiLinearModel{}, errorx.New(errCode.INVALID_VALUE, "数据长度不匹配")
	}

	for i := range X {
		if len(X[i]) != len(X[0]) {
			return MultiLinearModel{}, errorx.Newf(errCode.INVALID_VALUE, "row %d has %d columns, want %d", i, len(X[i]), len(X[0]))
		}
	}

	if withConst {
		X = addConstantColumn(X)
	}
	k := len(X[0])

	dataX := make([]float64, n*k)
	for i := 0; i < n; i++ {
		copy(dataX[i*k:(i+1)*k], X[i])
	}
	yCopy := make([]float64, n)
	copy(yCopy, Y)

	return MultiRegressionMat(mat.NewDense(n, k, dataX), mat.NewVecDense(n, yCopy))
}

// 用SVD 求解广义逆矩阵
func pseudoInverse(A *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, errorx.New(errCode.INVALID_VALUE, "SVD分解失败")
	}

	// 提取 U, Σ, Vᵀ
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// 取 Σ 的倒数, 小奇异值截断
	sigma := svd.Values(nil)
	m, n := A.Dims()
	sInv := mat.NewDense(n, m, nil)
	tol := 1e-12
	for i, val := range sigma {
		if val > tol {
			sInv.Set(i, i, 1.0/val)
		}
	}

	// A⁺ = V * Σ⁺ * Uᵀ
	var temp mat.Dense
	temp.Mul(&v, sInv)
	var pinv mat.Dense
	pinv.Mul(&temp, u.T())

	return &pinv, nil
}

// 添加常数项
func addConstantColumn(X [][]float64) [][]float64 {
	n := len(X)
	if n == 0 {
		return X
	}
	k := len(X[0])

	newX := make([][]float64, n)
	for i := 0; i < n; i++ {
		newRow := make([]float64, k+1)
		newRow[0] = 1.0
		copy(newRow[1:], X[i])
		newX[i] = newRow
	}
	return newX
}
