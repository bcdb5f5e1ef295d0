package stdatm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testPoints(t *testing.T) Points {
	pts, err := EvaluateAll([]float64{0, 5000, 12000})
	require.NoError(t, err)
	return pts
}

func Test_ToTXT(t *testing.T) {
	var buf bytes.Buffer
	testPoints(t).ToTXT(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "p[mbar]")
	assert.Contains(t, lines[1], "1013.250")
	assert.Contains(t, lines[2], "4996")
	assert.Contains(t, lines[2], "540.483")
	assert.Contains(t, lines[3], "11977")
}

func Test_ToCSV(t *testing.T) {
	pts := testPoints(t)

	var buf bytes.Buffer
	require.NoError(t, pts.ToCSV(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "z,h,layer,t,p,rho\n"))

	var got []Point
	require.NoError(t, gocsv.UnmarshalString(buf.String(), &got))
	assert.Equal(t, []Point(pts), got)
}

func Test_ToYAML(t *testing.T) {
	pts := testPoints(t)

	var buf bytes.Buffer
	require.NoError(t, pts.ToYAML(&buf))
	assert.Contains(t, buf.String(), "layer: 1")

	var got []Point
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []Point(pts), got)
}

func Test_CheckToTXT(t *testing.T) {
	res, err := Check(DefaultTolerance)
	require.NoError(t, err)

	var buf bytes.Buffer
	CheckToTXT(res, &buf)
	assert.Contains(t, buf.String(), "Test #1 OK")
	assert.Contains(t, buf.String(), "Test #9 OK")
	assert.NotContains(t, buf.String(), "NG")
}
