package codetable

import (
	"fmt"
	"math"
)

// FormatMilliseconds はミリ秒を mm:ss 形式に変換します。
// 分と秒はどちらも下2桁だけを表示します。0以下と NaN は "00:00" です。
func FormatMilliseconds(ms float64) string {
	if math.IsNaN(ms) || ms <= 0 {
		return "00:00"
	}
	seconds := ms / 1000
	minutes := math.Floor(seconds / 60)
	rest := math.Floor(seconds) - 60*minutes
	return fmt.Sprintf("%02d:%02d", int64(minutes)%100, int64(rest)%100)
}
