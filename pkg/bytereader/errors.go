package bytereader

import "errors"

// ErrOutOfRange はバッファの範囲外を読み取ろうとした場合のエラー
var ErrOutOfRange = errors.New("バッファの範囲外を読み取ろうとしました")
