package dta

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText は DTA ファイルのバイト列を文字列に変換します。
// 先頭の UTF-8 BOM は取り除きます。UTF-8 として不正な場合は
// 古い DTA で使われている Windows-1252 として読み直します。
func DecodeText(data []byte) (string, error) {
	dec := charmap.Windows1252.NewDecoder()
	if utf8.Valid(data) {
		dec = unicode.UTF8BOM.NewDecoder()
	}
	text, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodeText, err)
	}
	return string(text), nil
}
