// stdatm
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/stdatm-go/stdatm"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("stdatm", "Evaluates the International Standard Atmosphere (1976, table 4)")

	altitudes := parser.StringList("z", "altitude", &argparse.Options{
		Help: "幾何高度 [m] (複数指定可)"})

	start := parser.Float("", "start", &argparse.Options{
		Default: stdatm.ZMin,
		Help:    "鉛直分布の開始高度 [m]"})

	end := parser.Float("", "end", &argparse.Options{
		Default: stdatm.ZMax,
		Help:    "鉛直分布の終了高度 [m]"})

	points := parser.Int("n", "points", &argparse.Options{
		Default: 0,
		Help:    "鉛直分布の点数 (2以上で鉛直分布を出力)"})

	check := parser.Flag("", "check", &argparse.Options{
		Help: "標準大気表との照合を行う"})

	tol := parser.Float("", "tolerance", &argparse.Options{
		Default: stdatm.DefaultTolerance,
		Help:    "照合の許容差 [mbar]"})

	format := parser.Selector("f", "file", []string{"TXT", "CSV", "YAML"}, &argparse.Options{
		Default: "TXT",
		Help:    "出力形式 TXT, CSV or YAML"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定
	logger := logging.GetLogger("stdatm")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	failed := false

	// 標準大気表との照合
	if *check {
		res, err := stdatm.Check(*tol)
		if err != nil {
			fail(logger, err)
		}
		stdatm.CheckToTXT(res, buf)
		for _, r := range res {
			if !r.OK {
				logger.Errorf("照合失敗: z=%g [m] p=%.4f [mbar] table=%g [mbar]", r.Case.Z, r.Point.Mbar(), r.Case.Mbar)
				failed = true
			}
		}
	}

	// 指定高度の計算
	var pts stdatm.Points
	if len(*altitudes) > 0 {
		zs := make([]float64, len(*altitudes))
		for i, s := range *altitudes {
			zs[i], err = stdatm.ParseAltitude(s)
			if err != nil {
				fail(logger, err)
			}
		}
		pts, err = stdatm.EvaluateAll(zs)
		if err != nil {
			fail(logger, err)
		}
	}

	// 鉛直分布
	if *points > 0 {
		prof, err := stdatm.Profile(*start, *end, *points)
		if err != nil {
			fail(logger, err)
		}
		pts = append(pts, prof...)
	}

	if len(pts) == 0 && !*check {
		fmt.Print(parser.Usage(nil))
		os.Exit(2)
	}

	// 保存
	if len(pts) > 0 {
		if *format == "TXT" {
			pts.ToTXT(buf)
		} else if *format == "CSV" {
			err = pts.ToCSV(buf)
		} else if *format == "YAML" {
			err = pts.ToYAML(buf)
		}
		if err != nil {
			fail(logger, err)
		}
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0o644)
		if err != nil {
			fail(logger, err)
		}
	}

	if failed {
		os.Exit(1)
	}
	logger.Infof("計算が終了しました")
}

// エラーの種別を表示して終了する
func fail(logger logging.Logger, err error) {
	kind := "Error"
	if errors.Is(err, stdatm.ErrOutOfRange) {
		kind = "RangeError"
	} else if errors.Is(err, stdatm.ErrNotNumeric) {
		kind = "TypeError"
	}
	logger.Errorf("%s: %v", kind, err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", kind, err)
	os.Exit(1)
}
