package stdatm

import (
	"math"
	"strconv"
	"strings"
)

//--------------------------------------
// 標準大気の層テーブル (U.S. Standard Atmosphere 1976 Table 4)
//--------------------------------------

const (
	R0 = 6356766.0 // 地球の有効半径 [m]

	ZMin = -5000.0 // 定義域の下限(幾何高度) [m]
	ZMax = 86000.0 // 定義域の上限(幾何高度) [m]
)

// Layer は標準大気の1層の基底値です。
type Layer struct {
	Index int     // 層番号 b
	Lapse float64 // 気温減率 Lmb [K/m']
	Tb    float64 // 基底気温 Tmb [K]
	Hb    float64 // 基底ジオポテンシャル高度 [m']
	Pb    float64 // 基底気圧 [Pa]
	Zb    float64 // 基底幾何高度 [m]
}

// 層 7 はモデルの上端(84.852 km')で、減率は持たない。
// 層 1 以降の Tb, Pb は下の層の上端値から計算する。
var layers = newLayers(288.15, 101325.0, [...]struct{ Hb, Lapse float64 }{
	{0.0, -0.0065},
	{11000.0, 0.0},
	{20000.0, 0.0010},
	{32000.0, 0.0028},
	{47000.0, 0.0},
	{51000.0, -0.0028},
	{71000.0, -0.0020},
	{84852.0, 0.0},
})

func newLayers(T0, P0 float64, rows [8]struct{ Hb, Lapse float64 }) [8]Layer {
	var ret [8]Layer
	for b, row := range rows {
		ret[b] = Layer{Index: b, Lapse: row.Lapse, Hb: row.Hb, Tb: T0, Pb: P0, Zb: GeometricHeight(row.Hb)}
		if b > 0 {
			below := Lookup{Layer: ret[b-1], H: row.Hb}
			ret[b].Tb = below.Temperature()
			ret[b].Pb = below.Pressure()
		}
	}
	return ret
}

// Layers は層テーブルのコピーを返します。
func Layers() []Layer {
	ret := make([]Layer, len(layers))
	copy(ret, layers[:])
	return ret
}

// Lookup は Table4 の結果です。
type Lookup struct {
	Layer
	H float64 // 入力高度のジオポテンシャル高度 [m']
}

// Values は (b, Lmb, Tmb, Hb, H, Pb) の順に値を返します。
func (r Lookup) Values() (b int, Lmb, Tmb, Hb, H, Pb float64) {
	return r.Index, r.Lapse, r.Tb, r.Hb, r.H, r.Pb
}

// 幾何高度 z [m] をジオポテンシャル高度 [m'] に変換します。
func GeopotentialHeight(z float64) float64 {
	return R0 * z / (R0 + z)
}

// ジオポテンシャル高度 h [m'] を幾何高度 [m] に変換します。
// h >= R0 は対応する幾何高度が存在しないため NaN を返します。
func GeometricHeight(h float64) float64 {
	if h >= R0 {
		return math.NaN()
	}
	return R0 * h / (R0 - h)
}

// Table4 は幾何高度 z [m] が属する層を求めます。
// 定義域外は ErrOutOfRange, NaN/Inf は ErrNotNumeric を返します。
func Table4(z float64) (Lookup, error) {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return Lookup{}, notNumeric("Table4", formatFloat(z))
	}
	if z < ZMin || z > ZMax {
		return Lookup{}, outOfRange("Table4", z)
	}
	// 層は幾何高度で判定する。H に戻すと境界で1ulp下の層になることがある。
	b := 0
	for i := len(layers) - 1; i > 0; i-- {
		if layers[i].Zb <= z {
			b = i
			break
		}
	}
	return Lookup{Layer: layers[b], H: GeopotentialHeight(z)}, nil
}

// Table4H はジオポテンシャル高度 h [m'] をキーに層を求めます。
func Table4H(h float64) (Lookup, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return Lookup{}, notNumeric("Table4H", formatFloat(h))
	}
	if h < GeopotentialHeight(ZMin) || h > GeopotentialHeight(ZMax) {
		return Lookup{}, outOfRange("Table4H", h)
	}
	return find(h), nil
}

// 基底高度が h 以下となる最上位の層。境界上ではその層自身を返す。
func find(h float64) Lookup {
	b := 0
	for i := len(layers) - 1; i > 0; i-- {
		if layers[i].Hb <= h {
			b = i
			break
		}
	}
	return Lookup{Layer: layers[b], H: h}
}

// ParseAltitude はコマンドライン等から受け取った文字列を高度 [m] に変換します。
func ParseAltitude(s string) (float64, error) {
	s = strings.TrimSpace(s)
	z, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, notNumeric("ParseAltitude", strconv.Quote(s))
	}
	return z, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
