package rb3cache

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shiroemons/go-setlist/pkg/bytereader"
)

// WiiHeaderSize は Wii の VFF 形式のヘッダー長です。
const WiiHeaderSize = 21024

const (
	sniffMaxNameLength = 100
	sniffAcceptValid   = 5
	sniffRejectInvalid = 5

	// Xbox の CON パッケージ名に付く接尾辞
	rb3conMarker = "_rb3con"
)

// Wii の短縮名は sZAE/001 の形式
var wiiShortName = regexp.MustCompile(`^sZAE/\d{3}$`)

// IsWiiCache はファイル名から Wii のキャッシュファイルかどうかを判定します。
// 拡張子 (最後のドット以降) が vff の場合に true を返します。
func IsWiiCache(name string) bool {
	parts := strings.Split(filepath.Base(name), ".")
	return parts[len(parts)-1] == "vff"
}

// Sniff は data がキャッシュファイルらしいかどうかを判定します。
//
// キャッシュファイルにはマジックナンバーがないため、先頭から
// 「8バイトの不明領域 + 長さ + 文字列」のブロックを読み、文字列が
// 表示可能な Latin-1 の範囲に収まっているかで判断します。
func Sniff(data []byte, isWii bool) bool {
	c := bytereader.New(data)
	if isWii {
		c.Skip(WiiHeaderSize)
	}

	valid, invalid := 0, 0
	foundRb3con, foundWiiName := false, false

	for c.Offset() <= c.Len() {
		c.Skip(8)
		n := int(c.Int32())
		if n <= 0 || n > sniffMaxNameLength {
			return false
		}
		if c.Offset()+n > c.Len() {
			return false
		}
		s := c.UTF8String(n)

		if isPrintableLatin1(s) {
			valid++
		} else {
			invalid++
		}
		if strings.Contains(s, rb3conMarker) {
			foundRb3con = true
		}
		if wiiShortName.MatchString(s) {
			foundWiiName = true
		}

		if valid >= sniffAcceptValid || foundRb3con || foundWiiName {
			return true
		}
		if invalid > sniffRejectInvalid {
			return false
		}
	}

	if isWii {
		return valid >= 1 && foundWiiName
	}
	return valid >= 1 || foundRb3con
}

// isPrintableLatin1 は全ての文字が表示可能な ASCII か Latin-1 補助の範囲かを返します。
func isPrintableLatin1(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 0x20 || r > 0x7E) && (r < 0xA0 || r > 0xFF) {
			return false
		}
	}
	return true
}
