package rb3save

import "bytes"

// ConsoleType はセーブデータを作成したコンソールです。
// セーブデータにはマジックナンバーがないため、ファイルサイズで判定します。
type ConsoleType int

const (
	Unknown ConsoleType = iota
	Wii
	Xbox
	PS3
)

const (
	wiiSaveSize  = 0xC00000
	xboxSaveSize = 0x43A929
	ps3SaveSize  = 0x43A99D

	xboxStartOffset = 0x2C7123
	ps3StartOffset  = 0x2C7197
)

// WiiProfiles は Wii のセーブデータに含まれるプロフィール数です。
const WiiProfiles = 4

var wiiProfileOffsets = [WiiProfiles]int{0x540000, 0x6C0000, 0x840000, 0x9C0000}

// stfsMagics は Xbox 360 の STFS パッケージ先頭のマジックです。
var stfsMagics = [][]byte{[]byte("CON "), []byte("LIVE"), []byte("PIRS")}

// DetectConsole はファイルサイズからコンソールを判定します。
func DetectConsole(size int) ConsoleType {
	switch size {
	case wiiSaveSize:
		return Wii
	case xboxSaveSize:
		return Xbox
	case ps3SaveSize:
		return PS3
	default:
		return Unknown
	}
}

// String はコンソール名を返します。
func (c ConsoleType) String() string {
	switch c {
	case Wii:
		return "Wii"
	case Xbox:
		return "Xbox"
	case PS3:
		return "PS3"
	default:
		return "Unknown"
	}
}

// StartOffset は楽曲データの開始オフセットを返します。
// profile は Wii でのみ使われ、範囲外の場合は先頭のプロフィールになります。
// 未知のサイズでは0を返します。
func StartOffset(size, profile int) int {
	switch DetectConsole(size) {
	case Wii:
		if profile < 0 || profile >= WiiProfiles {
			profile = 0
		}
		return wiiProfileOffsets[profile]
	case Xbox:
		return xboxStartOffset
	case PS3:
		return ps3StartOffset
	default:
		return 0
	}
}

// isPackagedContainer は data が STFS パッケージかどうかを返します。
func isPackagedContainer(data []byte) bool {
	for _, magic := range stfsMagics {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	return false
}
