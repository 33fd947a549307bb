// Package rb3cache は Rock Band 3 の楽曲キャッシュファイル (songcache.bin / .vff)
// と DTA カタログから楽曲メタ情報を読み出します。
//
// キャッシュファイルのレコードは可変長で、各フィールドの位置は直前に読んだ
// 長さに依存します。未解明の領域は読み飛ばし、表示に必要な項目だけを取り出します。
package rb3cache

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shiroemons/go-setlist/pkg/bytereader"
	"github.com/shiroemons/go-setlist/pkg/codetable"
)

const (
	yearBase = 1900

	// レーティングの有効範囲外はこの値として扱う
	defaultRatingCode = 4

	// isMaster がこの値のとき偽
	notMasterCode = 1
)

// Decode はキャッシュファイルを解析して楽曲の一覧を返します。
// isWii が true の場合は先頭の VFF ヘッダーを読み飛ばします。
// 途中でデータが途切れた場合は、それまでに読んだ楽曲と ErrTruncated を返します。
func Decode(data []byte, isWii bool) ([]SongRow, error) {
	if !Sniff(data, isWii) {
		return nil, ErrUnsupportedFormat
	}

	c := bytereader.New(data)
	if isWii {
		c.Skip(WiiHeaderSize)
	}
	skipPackageIndex(c)
	count := int(c.Int32())
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("%w: 楽曲数を読み取れません: %w", ErrTruncated, err)
	}

	var rows []SongRow
	for i := range max(count, 0) {
		row := decodeSong(c, isWii)
		if err := c.Err(); err != nil {
			return rows, fmt.Errorf("%w: record=%d: %w", ErrTruncated, i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// skipPackageIndex はパッケージと楽曲 ID の対応表を読み飛ばします。
func skipPackageIndex(c *bytereader.Cursor) {
	c.Skip(4)
	packages := int(c.Int32())
	for i := 0; i < packages && c.Err() == nil; i++ {
		c.Skip(int(c.Int32())) // パッケージ名
		c.Skip(int(c.Int32()) * 4)
	}
}

// decodeSong は楽曲レコード1件を読みます。
// 読み取り順はファイル上の並びそのものなので入れ替えてはいけません。
func decodeSong(c *bytereader.Cursor, isWii bool) SongRow {
	var row SongRow

	row.SongID = c.Int32()
	c.Skip(8)
	row.GameVersion = c.Uint16()
	c.Skip(5) // 重複した ID と不明な1バイト

	rawSource := lengthPrefixed(c)
	row.PreviewStart = codetable.FormatMilliseconds(float64(c.IntFromFloat()))
	row.PreviewEnd = codetable.FormatMilliseconds(float64(c.IntFromFloat()))

	shortNameLength := int(c.Int32())
	row.ShortName = c.UTF8String(shortNameLength)
	c.Skip(8)
	c.Skip(4 + shortNameLength) // 短縮名の複製

	row.FilePath = lengthPrefixed(c)
	c.Skip(4)
	row.VocalParts = c.Int32()
	c.Skip(12)

	// pans, vols, cores と不明な1つ
	for range 4 {
		c.Skip(int(c.Int32()) * 4)
	}
	// drum_solo, drum_freestyle
	skipRepeatedBlocks(c)
	skipRepeatedBlocks(c)
	skipTaggedBlocks(c)
	c.Skip(4)

	row.SongName = lengthPrefixed(c)
	row.Artist = lengthPrefixed(c)

	if albumLength := int(c.Int32()); albumLength == 0 {
		// アルバムがない場合はトラック番号の代わりに埋め草がある
		c.Skip(4)
	} else {
		row.AlbumName = c.UTF8String(albumLength)
		row.TrackNumber = c.Int32()
	}
	c.Skip(3)
	row.YearRecorded = yearBase + int(c.Int32())
	c.Skip(2)
	row.YearReleased = yearBase + int(c.Uint8())

	row.Genre = codetable.Genre(lengthPrefixed(c))
	c.Skip(8)

	row.Difficulty = decodeDifficulties(c)

	rating := int(c.Int32())
	if rating <= 0 || rating >= 5 {
		rating = defaultRatingCode
	}
	row.Rating = codetable.Rating(rating)
	c.Skip(2)
	row.ScrollSpeed = c.Uint16FromFloat()
	c.Skip(4)

	row.VocalPercussionBank = lengthPrefixed(c)
	row.DrumBank = lengthPrefixed(c)

	row.TonicNote, _ = codetable.TonicNote(int(c.Int32()))
	c.Skip(4)
	row.Tonality, _ = codetable.Tonality(int(c.Int32()))
	row.SongLength = codetable.FormatMilliseconds(float64(c.Int32()))

	// 1 が偽、それ以外 (257 や 256) が真という反転した符号化。
	// 逆に解釈すると既知の正しいファイルと食い違うことを実データで確認している。
	row.IsMaster = c.Uint16() != notMasterCode

	if isWii {
		c.Skip(6)
	} else {
		c.Skip(5)
	}

	row.VocalGender = vocalGender(lengthPrefixed(c))
	c.Skip(24) // ギターのチューニング
	c.Skip(16) // ベースのチューニング
	c.Skip(1)
	skipRepeatedBlocks(c)

	// 収録元は他のフィールドに依存するため最後に判定する
	row.Source = codetable.Source(codetable.SourceInput{
		SongID:    int64(row.SongID),
		Source:    rawSource,
		ShortName: row.ShortName,
		Artist:    row.Artist,
	})
	return row
}

// decodeDifficulties はパート名と難易度値の組を読みます。未知のパート名は無視します。
func decodeDifficulties(c *bytereader.Cursor) map[codetable.Instrument]string {
	diffs := make(map[codetable.Instrument]string)
	count := int(c.Int32())
	for i := 0; i < count && c.Err() == nil; i++ {
		name := lengthPrefixed(c)
		raw := c.Uint16FromFloat()
		if inst, ok := codetable.InstrumentFromName(name); ok {
			diffs[inst] = codetable.Difficulty(inst, int(raw))
		}
	}
	return diffs
}

// lengthPrefixed は32ビットの長さに続く UTF-8 文字列を読みます。
func lengthPrefixed(c *bytereader.Cursor) string {
	return c.UTF8String(int(c.Int32()))
}

// skipRepeatedBlocks は「件数 + (長さ + 本体) × 件数」を読み飛ばします。
func skipRepeatedBlocks(c *bytereader.Cursor) {
	count := int(c.Int32())
	for i := 0; i < count && c.Err() == nil; i++ {
		c.Skip(int(c.Int32()))
	}
}

// skipTaggedBlocks は「件数 + (4バイトのタグ + 長さ + 長さ×4バイト) × 件数」を読み飛ばします。
func skipTaggedBlocks(c *bytereader.Cursor) {
	count := int(c.Int32())
	for i := 0; i < count && c.Err() == nil; i++ {
		c.Skip(4)
		c.Skip(int(c.Int32()) * 4)
	}
}

// vocalGender は "female" を含む場合に Female、それ以外は Male を返します。
func vocalGender(raw string) string {
	if strings.Contains(cases.Lower(language.Und).String(raw), "female") {
		return "Female"
	}
	return "Male"
}
