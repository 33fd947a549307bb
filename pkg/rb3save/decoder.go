// Package rb3save は Rock Band 3 のセーブデータ (save.dat / band3.dat) から
// 楽曲ごとの成績を読み出します。
//
// Xbox と PS3 のセーブデータは楽曲領域がストリーム暗号化されており、
// 先頭の楽曲数に応じた長さだけ復号します。Wii は暗号化されておらず
// 楽曲数も持たないため、固定長の領域を ID が0のレコードまで読みます。
package rb3save

import (
	"encoding/binary"
	"fmt"

	"github.com/shiroemons/go-setlist/pkg/crypto"
)

const (
	// MaxSongCount はセーブデータが保持できる楽曲数の上限です。
	MaxSongCount = 3000

	wiiRegionSize = 0x72BF0
	wiiMaxSongs   = 999

	// 暗号化領域は シード(4) + 楽曲数(4) + (重複ID(4) + レコード(470)) × 楽曲数 だが、
	// 最後のレコードは末尾6バイトが省略されている。
	encryptedHeaderSize = 8
	encryptedFirstSize  = 476
	encryptedStride     = 474
	duplicateIDSize     = 4
)

// corruptSong は解析済みレコードが不正かどうかを判定します。
// 判定基準はまだ集まっていないため常に false を返します。
var corruptSong = func(SongScore) bool { return false }

// Decode は先頭のプロフィールの楽曲成績を読み出します。
func Decode(data []byte) ([]SongScore, error) {
	return DecodeProfile(data, 0)
}

// DecodeProfile は指定したプロフィールの楽曲成績を読み出します。
// profile は Wii のセーブデータでのみ意味を持ちます。
// エラーが発生した場合も、それまでに読み出したレコードを返します。
func DecodeProfile(data []byte, profile int) ([]SongScore, error) {
	console := DetectConsole(len(data))
	if console == Unknown {
		if isPackagedContainer(data) {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, ErrPackagedContainer)
		}
		return nil, fmt.Errorf("%w: size=%d", ErrUnsupportedFormat, len(data))
	}

	offset := StartOffset(len(data), profile)
	if data[offset-1] != 0x00 {
		return nil, fmt.Errorf("%w: console=%s offset=0x%X", ErrOffsetMismatch, console, offset)
	}

	if console == Wii {
		end := min(offset+wiiRegionSize, len(data))
		return decodeRecords(data[offset:end], wiiMaxSongs, 0)
	}
	return decodeEncrypted(data, offset)
}

// decodeEncrypted は Xbox / PS3 の暗号化された楽曲領域を復号して読み出します。
func decodeEncrypted(data []byte, offset int) ([]SongScore, error) {
	if offset+encryptedHeaderSize > len(data) {
		return nil, fmt.Errorf("%w: 楽曲数を読み取れません", ErrTruncated)
	}
	header, err := crypto.StreamDecrypt(data[offset : offset+encryptedHeaderSize])
	if err != nil {
		return nil, err
	}
	count := int32(binary.LittleEndian.Uint32(header))
	switch {
	case count > MaxSongCount || count < 0:
		return nil, fmt.Errorf("%w: count=%d", ErrImplausibleSongCount, count)
	case count == 0:
		return nil, ErrEmptySave
	}

	length := encryptedFirstSize + int(count-1)*encryptedStride
	end := offset + length
	truncated := end > len(data)
	if truncated {
		end = len(data)
	}
	plain, err := crypto.StreamDecrypt(data[offset:end])
	if err != nil {
		return nil, err
	}
	// 楽曲数はすでに読んだので取り除く
	songs, err := decodeRecords(plain[4:], int(count), duplicateIDSize)
	if err == nil && truncated {
		err = fmt.Errorf("%w: declared=%d actual=%d", ErrTruncated, length, len(data)-offset)
	}
	return songs, err
}

// decodeRecords は region から最大 count 件のレコードを読みます。
// gap は各レコードの前に置かれた読み飛ばすバイト数です。
// ID が0のレコードに達した時点で終了します。
func decodeRecords(region []byte, count, gap int) ([]SongScore, error) {
	songs := make([]SongScore, 0, min(count, MaxSongCount))
	rec := make([]byte, RecordSize)
	for i := range count {
		start := gap*(i+1) + RecordSize*i
		if start >= len(region) {
			return songs, fmt.Errorf("%w: record=%d", ErrTruncated, i)
		}
		// 最後のレコードは末尾が省略されていることがあるため0で埋める
		n := copy(rec, region[start:min(start+RecordSize, len(region))])
		clear(rec[n:])

		song := parseRecord(rec)
		if song.SongID == 0 {
			break
		}
		if corruptSong(song) {
			return songs, fmt.Errorf("%w: record=%d song_id=%d", ErrCorruptSong, i, song.SongID)
		}
		songs = append(songs, song)
	}
	return songs, nil
}
