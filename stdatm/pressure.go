package stdatm

import "math"

//気圧に関するモジュール

const (
	G0 = 9.80665   // 標準重力加速度 [m/s²]
	R  = 287.05287 // 乾燥空気の気体定数 [J/kgK]
)

// 層の基底値から高度 H の気圧を計算します。
// 引数:
// Tb: 基底気温 [K]
// Lb: 気温減率 [K/m']
// H: ジオポテンシャル高度 [m']
// Hb: 基底ジオポテンシャル高度 [m']
// Pb: 基底気圧 [Pa]
// 戻り値:
// 気圧 [Pa]
// 減率が0の層は等温の式、それ以外はポリトロープの式を用いる。入力は検証しない。
func Pressure(Tb, Lb, H, Hb, Pb float64) float64 {
	if Lb == 0 {
		return Pb * math.Exp(-G0*(H-Hb)/(R*Tb))
	}
	return Pb * math.Pow(Tb/(Tb+Lb*(H-Hb)), G0/(R*Lb))
}

// 気圧 [Pa]
func (r Lookup) Pressure() float64 {
	return Pressure(r.Tb, r.Lapse, r.H, r.Hb, r.Pb)
}

// 気温 [K]
func (r Lookup) Temperature() float64 {
	return r.Tb + r.Lapse*(r.H-r.Hb)
}

// 密度 [kg/m³]
func (r Lookup) Density() float64 {
	return r.Pressure() / (R * r.Temperature())
}

//--------------------------------------
// 標高補正 (対流圏, 層 0)
//--------------------------------------

// 気圧の標高補正を行います。
// 引数:
// P: 補正前の気圧 [Pa]
// eleGap: 標高差 [m']
// T: 補正前の気温 [K]
// 戻り値:
// 標高補正後の気圧 [Pa]
// 気温減率は層 0 の値 (0.0065 K/m') とする。
func CorrectPressure(P float64, eleGap float64, T float64) float64 {
	return Pressure(T, layers[0].Lapse, eleGap, 0, P)
}

// 気温の標高補正をおこないます。基準値の気温を T [K] とし、
// 標高差が eleGap [m'] ある地点の気温を計算します。
func CorrectTemperature(T float64, eleGap float64) float64 {
	return T + eleGap*layers[0].Lapse
}
