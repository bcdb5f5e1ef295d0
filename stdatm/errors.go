package stdatm

import (
	"errors"
	"fmt"
)

// 入力高度の検証エラーの種別
var (
	// ErrOutOfRange は標準大気の定義域 [-5000, 86000] m 外の高度です。
	ErrOutOfRange = errors.New("altitude out of range")

	// ErrNotNumeric は数値として解釈できない入力(NaN, ±Inf, 文字列)です。
	ErrNotNumeric = errors.New("altitude is not numeric")
)

// AltitudeError は高度の検証に失敗した操作と入力値を保持します。
// errors.Is で ErrOutOfRange / ErrNotNumeric と照合できます。
type AltitudeError struct {
	Op    string // 失敗した操作 (Table4, Table4H, ParseAltitude)
	Input string // 入力値の文字列表現
	Err   error
}

func (e *AltitudeError) Error() string {
	return fmt.Sprintf("stdatm: %s(%s): %v", e.Op, e.Input, e.Err)
}

func (e *AltitudeError) Unwrap() error { return e.Err }

func outOfRange(op string, v float64) error {
	return &AltitudeError{Op: op, Input: formatFloat(v), Err: ErrOutOfRange}
}

func notNumeric(op string, input string) error {
	return &AltitudeError{Op: op, Input: input, Err: ErrNotNumeric}
}
