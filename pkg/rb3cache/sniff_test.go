package rb3cache

import (
	"bytes"
	"testing"
)

// sniffBlocks は「8バイト + 長さ + 文字列」のブロックを並べたデータを作成します。
func sniffBlocks(isWii bool, names ...string) []byte {
	b := &cacheBuilder{}
	if isWii {
		b.zeros(WiiHeaderSize)
	}
	for _, n := range names {
		b.zeros(8)
		b.str(n)
	}
	return b.bytes()
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		isWii bool
		want  bool
	}{
		{"rb3conを含む", sniffBlocks(false, "custompack_rb3con"), false, true},
		{"有効なブロックが5つ", sniffBlocks(false, "a", "b", "c", "d", "e"), false, true},
		{"Latin-1の文字", sniffBlocks(false, "björk", "b", "c", "d", "e"), false, true},
		{"Wiiの短縮名", sniffBlocks(true, "sZAE/042"), true, true},
		{"Wiiで短縮名以外", sniffBlocks(true, "a", "b"), true, false},
		{"上位ビットのみ", bytes.Repeat([]byte{0xFF}, 4096), false, false},
		{"長さが0", sniffBlocks(false, ""), false, false},
		{"長さが101", sniffBlocks(false, string(bytes.Repeat([]byte{'a'}, 101))), false, false},
		{"長さが末尾を越える", append(make([]byte, 8), 0x10, 0, 0, 0, 'a'), false, false},
		{"制御文字のブロックが6つ", sniffBlocks(false, "\x01", "\x02", "\x03", "\x04", "\x05", "\x06"), false, false},
		{"空", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sniff(tt.data, tt.isWii); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSniff_RealLayout(t *testing.T) {
	if !Sniff(buildCache(false, defaultSong(1, "x")), false) {
		t.Error("Xbox 形式のキャッシュを認識しません")
	}
	if !Sniff(buildCache(true, defaultSong(1, "x")), true) {
		t.Error("Wii 形式のキャッシュを認識しません")
	}
}

func TestIsWiiCache(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"songcache.vff", true},
		{"/path/to/cache.vff", true},
		{"songcache.bin", false},
		{"songcache", false},
		{"songcache.VFF", false},
		{"archive.vff.bin", false},
	}
	for _, tt := range tests {
		if got := IsWiiCache(tt.name); got != tt.want {
			t.Errorf("IsWiiCache(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
