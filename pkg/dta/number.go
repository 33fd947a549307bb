package dta

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber は数値リテラルとして解釈できる場合にその値を返します。
// 10進数 (指数表記を含む)、符号なしの 0x / 0o / 0b 整数、Infinity を受け付けます。
// 前後の空白は無視します。
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return parseRadix(s[2:], 16)
		case 'o', 'O':
			return parseRadix(s[2:], 8)
		case 'b', 'B':
			return parseRadix(s[2:], 2)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	// 範囲外は ±Inf または0に丸められた値をそのまま使う
	return f, true
}

// parseRadix は接頭辞を除いた整数部を base 進数として読みます。
// 64ビットを越える値も浮動小数点数として近似します。
func parseRadix(digits string, base int) (float64, bool) {
	var v float64
	for _, r := range digits {
		d, ok := digitValue(r)
		if !ok || d >= base {
			return 0, false
		}
		v = v*float64(base) + float64(d)
	}
	return v, digits != ""
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	default:
		return 0, false
	}
}

// formatNumber は数値を ID などの文字列として表示する形式に変換します。
func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
