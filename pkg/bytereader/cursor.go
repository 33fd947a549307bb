// Package bytereader はバイト列を先頭から順に読み進めるカーソルを提供します。
//
// Rock Band のセーブファイルやキャッシュファイルのように可変長フィールドが
// 続くバイナリは、直前の読み取り位置に依存して次のフィールド位置が決まります。
// Cursor は読み取りごとにオフセットを幅の分だけ進め、進める前の位置の値を返します。
package bytereader

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Cursor はバイト列上の読み取り位置を保持します。
// バッファはコピーせず参照のみを保持します。
type Cursor struct {
	data   []byte
	offset int
	err    error
}

// New は data の先頭を指す Cursor を作成します。
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset は現在のオフセットを返します。
func (c *Cursor) Offset() int {
	return c.offset
}

// Len はバッファ全体の長さを返します。
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining は現在位置から末尾までのバイト数を返します。
func (c *Cursor) Remaining() int {
	if c.offset >= len(c.data) {
		return 0
	}
	return len(c.data) - c.offset
}

// Err は最初に発生した範囲外読み取りのエラーを返します。
func (c *Cursor) Err() error {
	return c.err
}

// Seek はオフセットを明示的に移動します。
func (c *Cursor) Seek(offset int) {
	c.offset = offset
}

// Skip は n バイト読み飛ばし、進める前のオフセットを返します。
// 負の n やバッファ末尾を越える移動はエラーとして記録します。
func (c *Cursor) Skip(n int) int {
	if n < 0 {
		c.fail(c.offset, n)
		return c.offset
	}
	start := c.advance(n)
	if c.offset > len(c.data) {
		c.fail(start, n)
	}
	return start
}

// advance はオフセットを n 進め、進める前のオフセットを返します。
func (c *Cursor) advance(n int) int {
	current := c.offset
	c.offset += n
	return current
}

// window は読み取り範囲を返します。範囲外の場合はエラーを記録して nil を返します。
func (c *Cursor) window(n int) []byte {
	if n < 0 {
		c.fail(c.offset, n)
		return nil
	}
	start := c.advance(n)
	if start < 0 || start+n > len(c.data) {
		c.fail(start, n)
		return nil
	}
	return c.data[start : start+n]
}

// fail は最初の範囲外読み取りだけを記録します。
func (c *Cursor) fail(offset, width int) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: offset=%d width=%d len=%d", ErrOutOfRange, offset, width, len(c.data))
	}
}

// Uint8 は符号なし8ビット整数を読み込みます。
func (c *Cursor) Uint8() uint8 {
	b := c.window(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Int8 は符号付き8ビット整数を読み込みます。
func (c *Cursor) Int8() int8 {
	return int8(c.Uint8())
}

// Uint16 はリトルエンディアンの符号なし16ビット整数を読み込みます。
func (c *Cursor) Uint16() uint16 {
	b := c.window(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int16 はリトルエンディアンの符号付き16ビット整数を読み込みます。
func (c *Cursor) Int16() int16 {
	return int16(c.Uint16())
}

// Uint32 はリトルエンディアンの符号なし32ビット整数を読み込みます。
func (c *Cursor) Uint32() uint32 {
	b := c.window(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Int32 はリトルエンディアンの符号付き32ビット整数を読み込みます。
func (c *Cursor) Int32() int32 {
	return int32(c.Uint32())
}

// Float32 はリトルエンディアンの32ビット浮動小数点数を読み込みます。
func (c *Cursor) Float32() float32 {
	return math.Float32frombits(c.Uint32())
}

// IntFromFloat は float32 として格納された値を0方向に切り捨てて整数で返します。
// ミリ秒やスクロール速度など、意味的には整数の値が float で格納されています。
func (c *Cursor) IntFromFloat() int64 {
	return TruncToInt64(float64(c.Float32()))
}

// Uint16FromFloat は float32 として格納された値を切り捨て、下位16ビットを返します。
func (c *Cursor) Uint16FromFloat() uint16 {
	return uint16(TruncToInt64(float64(c.Float32())) & 0xffff)
}

// Bytes は n バイトをそのまま返します。返すスライスはバッファを共有します。
func (c *Cursor) Bytes(n int) []byte {
	return c.window(n)
}

// UTF8String は n バイトを UTF-8 文字列として読み込みます。
// 不正なバイト列は U+FFFD に置き換えます。
func (c *Cursor) UTF8String(n int) string {
	b := c.window(n)
	if b == nil {
		return ""
	}
	if utf8.Valid(b) {
		return string(b)
	}
	runes := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		runes = append(runes, r)
		b = b[size:]
	}
	return string(runes)
}

// TruncToInt64 は f を0方向に切り捨てた整数を返します。
// NaN と無限大は0、int64 に収まらない値は範囲の端に丸めます。
func TruncToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Trunc(f))
}
