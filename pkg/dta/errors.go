package dta

import "errors"

// ErrDecodeText は DTA テキストの文字コード変換に失敗した場合のエラー
var ErrDecodeText = errors.New("DTA テキストの文字コード変換に失敗しました")
