package stdatm

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

// Point は1高度分の標準大気の状態量です。
type Point struct {
	Z     float64 `csv:"z" yaml:"z"`         // 幾何高度 [m]
	H     float64 `csv:"h" yaml:"h"`         // ジオポテンシャル高度 [m']
	Layer int     `csv:"layer" yaml:"layer"` // 層番号
	T     float64 `csv:"t" yaml:"t"`         // 気温 [K]
	P     float64 `csv:"p" yaml:"p"`         // 気圧 [Pa]
	Rho   float64 `csv:"rho" yaml:"rho"`     // 密度 [kg/m³]
}

// 気圧 [mbar]
func (pt Point) Mbar() float64 {
	return pt.P / 100
}

type Points []Point

// Evaluate は幾何高度 z [m] の状態量を計算します。
func Evaluate(z float64) (Point, error) {
	r, err := Table4(z)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Z:     z,
		H:     r.H,
		Layer: r.Index,
		T:     r.Temperature(),
		P:     r.Pressure(),
		Rho:   r.Density(),
	}, nil
}

// EvaluateAll は与えられた高度を順に計算します。最初のエラーで中断します。
func EvaluateAll(zs []float64) (Points, error) {
	ret := make(Points, len(zs))
	for i, z := range zs {
		pt, err := Evaluate(z)
		if err != nil {
			return nil, err
		}
		ret[i] = pt
	}
	return ret, nil
}

// Profile は zmin から zmax まで n 点等間隔の鉛直分布を計算します。
func Profile(zmin, zmax float64, n int) (Points, error) {
	if n < 2 {
		return nil, fmt.Errorf("stdatm: Profile needs at least 2 points, got %d", n)
	}
	logger := logging.GetLogger("stdatm")
	logger.Debugf("鉛直分布 %g - %g m (%d点)", zmin, zmax, n)

	zs := floats.Span(make([]float64, n), zmin, zmax)
	zs[n-1] = zmax // 丸め誤差で定義域を超えないように
	return EvaluateAll(zs)
}

//--------------------------------------
// 標準大気表との照合
//--------------------------------------

// ReferenceCase は幾何高度と標準大気表の気圧の組です。
type ReferenceCase struct {
	Z    float64 // 幾何高度 [m]
	Mbar float64 // 表の気圧 [mbar]
}

// 52000 m は表の値 62.21 Pa による。
var ReferenceCases = []ReferenceCase{
	{0, 1013.25},
	{5000, 540.48},
	{12000, 193.99},
	{21500, 43.745},
	{33000, 7.673},
	{49000, 0.903},
	{52000, 0.622},
	{65000, 0.109},
	{76500, 0.01875},
}

// DefaultTolerance は照合の許容差 [mbar] です。
const DefaultTolerance = 0.01

type CheckResult struct {
	Case  ReferenceCase
	Point Point
	Diff  float64 // 計算値と表の値の差 [mbar]
	OK    bool
}

// Check は ReferenceCases の各高度を計算し、表の値との差を返します。
func Check(tol float64) ([]CheckResult, error) {
	ret := make([]CheckResult, len(ReferenceCases))
	for i, c := range ReferenceCases {
		pt, err := Evaluate(c.Z)
		if err != nil {
			return nil, err
		}
		diff := pt.Mbar() - c.Mbar
		ret[i] = CheckResult{
			Case:  c,
			Point: pt,
			Diff:  diff,
			OK:    math.Abs(diff) <= tol,
		}
	}
	return ret, nil
}
