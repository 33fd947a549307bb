package loader

import (
	"github.com/shiroemons/go-setlist/internal/setlist/models"
	"github.com/shiroemons/go-setlist/pkg/codetable"
	"github.com/shiroemons/go-setlist/pkg/rb3cache"
)

// DefaultValue は表示用の値が空の場合に入れる文字列です
const DefaultValue = "-"

// MergeByID は primary の各行に、同じ曲 ID を持つ secondary の行を重ねます
// secondary 側にあるデータが優先され、primary の並び順と件数は変わりません。
// 同じ ID が secondary に複数ある場合は最後の行を使います
func MergeByID(primary, secondary []models.SongRow) []models.SongRow {
	byID := make(map[int64]models.SongRow, len(secondary))
	for _, row := range secondary {
		byID[row.SongID] = row
	}

	merged := make([]models.SongRow, len(primary))
	for i, base := range primary {
		if match, ok := byID[base.SongID]; ok {
			if match.Score != nil {
				base.Score = match.Score
			}
			if match.Cache != nil {
				base.Cache = match.Cache
			}
		}
		merged[i] = base
	}
	return merged
}

// ApplyDefaults はキャッシュ由来の表示項目のうち空のものを DefaultValue で埋めた行を返します
// 元の行は変更しません
func ApplyDefaults(rows []models.SongRow) []models.SongRow {
	out := make([]models.SongRow, len(rows))
	for i, row := range rows {
		if row.Cache != nil {
			filled := row.Cache.Clone()
			fillDefaults(&filled)
			row.Cache = &filled
		}
		out[i] = row
	}
	return out
}

func fillDefaults(song *rb3cache.SongRow) {
	for _, field := range []*string{
		&song.Source,
		&song.PreviewStart,
		&song.PreviewEnd,
		&song.ShortName,
		&song.FilePath,
		&song.SongName,
		&song.Artist,
		&song.AlbumName,
		&song.Genre,
		&song.SubGenre,
		&song.Rating,
		&song.VocalPercussionBank,
		&song.DrumBank,
		&song.TonicNote,
		&song.Tonality,
		&song.SongLength,
		&song.VocalGender,
	} {
		if *field == "" {
			*field = DefaultValue
		}
	}

	if song.Difficulty == nil {
		song.Difficulty = make(map[codetable.Instrument]string, len(codetable.Instruments))
	}
	for _, inst := range codetable.Instruments {
		if song.Difficulty[inst] == "" {
			song.Difficulty[inst] = DefaultValue
		}
	}
}
