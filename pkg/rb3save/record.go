package rb3save

import "github.com/shiroemons/go-setlist/pkg/bytereader"

// RecordSize は楽曲レコード1件のバイト数です。
const RecordSize = 470

// Part はスコアを記録するパートです。
type Part int

const (
	Drums Part = iota
	Bass
	Guitar
	Vocals
	Harmonies
	Keys
	ProDrums
	ProGuitar
	ProBass
	ProKeys
	Band

	PartCount
)

// partOffsets はレコード内の各パートの先頭位置です。
var partOffsets = [PartCount]int{
	Drums:     63,
	Bass:      100,
	Guitar:    137,
	Vocals:    174,
	Harmonies: 211,
	Keys:      248,
	ProDrums:  285,
	ProGuitar: 322,
	ProBass:   359,
	ProKeys:   396,
	Band:      433,
}

// 難易度ごとの星と達成率の位置。パート先頭からの相対位置で、それぞれ +1 が達成率です。
var starOffsets = [4]int{5, 13, 21, 29}

// String はパートの表示名を返します。
func (p Part) String() string {
	switch p {
	case Drums:
		return "Drums"
	case Bass:
		return "Bass"
	case Guitar:
		return "Guitar"
	case Vocals:
		return "Vocals"
	case Harmonies:
		return "Harmonies"
	case Keys:
		return "Keys"
	case ProDrums:
		return "Pro Drums"
	case ProGuitar:
		return "Pro Guitar"
	case ProBass:
		return "Pro Bass"
	case ProKeys:
		return "Pro Keys"
	case Band:
		return "Band"
	default:
		return "Unknown"
	}
}

// PartScore はパートごとの成績です。
// Stars と Percent は Easy, Medium, Hard, Expert の順です。
type PartScore struct {
	TopScore      int32
	TopDifficulty uint8
	Stars         [4]uint8
	Percent       [4]uint8
}

// SongScore はセーブデータ内の楽曲1件分の成績です。
type SongScore struct {
	SongID        uint32
	LighterRating uint8
	PlayCount     int32
	Parts         [PartCount]PartScore
}

// parseRecord は RecordSize バイトのレコードを解析します。
// rec は呼び出し側で RecordSize まで0埋めされている必要があります。
func parseRecord(rec []byte) SongScore {
	c := bytereader.New(rec)
	song := SongScore{
		SongID: c.Uint32(),
	}
	c.Seek(6)
	song.LighterRating = c.Uint8()
	c.Seek(11)
	song.PlayCount = c.Int32()

	for p, base := range partOffsets {
		c.Seek(base)
		part := PartScore{
			TopScore:      c.Int32(),
			TopDifficulty: c.Uint8(),
		}
		for d, off := range starOffsets {
			c.Seek(base + off)
			part.Stars[d] = c.Uint8()
			part.Percent[d] = c.Uint8()
		}
		song.Parts[p] = part
	}
	return song
}
