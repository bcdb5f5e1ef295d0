package stdatm

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// テキスト形式
// H は m' 単位に丸め、気圧は mbar で小数点以下3桁まで出力します。
func (pts Points) ToTXT(buf *bytes.Buffer) {
	buf.WriteString(fmt.Sprintf("%10s %10s %2s %8s %12s %12s\n", "z[m]", "H[m']", "b", "T[K]", "p[mbar]", "rho[kg/m3]"))
	for _, pt := range pts {
		buf.WriteString(fmt.Sprintf("%10g %10.0f %2d %8.3f %12.3f %12.6g\n",
			pt.Z, math.Round(pt.H), pt.Layer, pt.T, pt.Mbar(), pt.Rho))
	}
}

// CSV形式
func (pts Points) ToCSV(buf *bytes.Buffer) error {
	return gocsv.Marshal(pts, buf)
}

// YAML形式
func (pts Points) ToYAML(buf *bytes.Buffer) error {
	b, err := yaml.Marshal([]Point(pts))
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// 照合結果のテキスト形式
func CheckToTXT(res []CheckResult, buf *bytes.Buffer) {
	for i, r := range res {
		status := "OK"
		if !r.OK {
			status = "NG"
		}
		buf.WriteString(fmt.Sprintf("Test #%d %s\n", i+1, status))
		buf.WriteString(fmt.Sprintf("  z = %g [m], H = %.0f [m']\n", r.Case.Z, math.Round(r.Point.H)))
		buf.WriteString(fmt.Sprintf("  p = %.3f [mbar], table = %g [mbar], diff = %.4f\n", r.Point.Mbar(), r.Case.Mbar, r.Diff))
	}
}
