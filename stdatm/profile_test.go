package stdatm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Evaluate(t *testing.T) {
	pt, err := Evaluate(0)
	require.NoError(t, err)
	assert.Equal(t, Point{Z: 0, H: 0, Layer: 0, T: 288.15, P: 101325, Rho: pt.Rho}, pt)
	assert.InDelta(t, 1013.25, pt.Mbar(), 1.0e-9)

	_, err = Evaluate(90000)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// 高度が上がるほど気圧は減少する(単調非増加)
func Test_Profile_Monotonic(t *testing.T) {
	pts, err := Profile(ZMin, ZMax, 2001)
	require.NoError(t, err)
	require.Len(t, pts, 2001)

	assert.Equal(t, ZMin, pts[0].Z)
	assert.Equal(t, ZMax, pts[len(pts)-1].Z)
	assert.Equal(t, 7, pts[len(pts)-1].Layer)

	for i := 1; i < len(pts); i++ {
		assert.Less(t, pts[i-1].Z, pts[i].Z)
		assert.GreaterOrEqual(t, pts[i-1].P, pts[i].P, "z=%g", pts[i].Z)
		assert.Greater(t, pts[i].P, 0.0)
		assert.GreaterOrEqual(t, pts[i].Layer, pts[i-1].Layer)
	}
}

// 層の境界をまたいでも単調
func Test_Profile_AcrossBoundaries(t *testing.T) {
	for _, l := range Layers()[1:] {
		z := GeometricHeight(l.Hb)
		pts, err := Profile(z-1, math.Min(z+1, ZMax), 201)
		require.NoError(t, err)
		for i := 1; i < len(pts); i++ {
			assert.GreaterOrEqual(t, pts[i-1].P, pts[i].P)
		}
	}
}

func Test_Profile_Errors(t *testing.T) {
	_, err := Profile(0, 1000, 1)
	assert.Error(t, err)

	// 途中で定義域を超える
	_, err = Profile(0, 90000, 10)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func Test_EvaluateAll(t *testing.T) {
	// 幾何高度 11000 m は H = 10981 m' で層 0
	pts, err := EvaluateAll([]float64{0, 11000, GeometricHeight(11000), 12000, 21500})
	require.NoError(t, err)
	got := make([]int, len(pts))
	for i, pt := range pts {
		got[i] = pt.Layer
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2}, got)

	_, err = EvaluateAll([]float64{0, 90000, 1000})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// 標準大気表との照合はすべて許容差内
func Test_Check(t *testing.T) {
	res, err := Check(DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, res, len(ReferenceCases))
	for _, r := range res {
		assert.True(t, r.OK, "z=%g p=%g table=%g", r.Case.Z, r.Point.Mbar(), r.Case.Mbar)
		assert.InDelta(t, r.Point.Mbar()-r.Case.Mbar, r.Diff, 1.0e-12)
	}

	// 許容差0ではすべて一致とはならない
	res, err = Check(0)
	require.NoError(t, err)
	ng := 0
	for _, r := range res {
		if !r.OK {
			ng++
		}
	}
	assert.Greater(t, ng, 0)
}
