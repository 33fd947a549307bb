package rb3cache

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shiroemons/go-setlist/pkg/codetable"
	"github.com/shiroemons/go-setlist/pkg/dta"
)

// catalogRankNames は DTA の rank ブロックで使われるパート名です。
var catalogRankNames = []string{
	"guitar", "drum", "bass", "vocals", "band", "keys", "real_keys", "real_guitar", "real_bass",
}

// FromCatalog は DTA カタログをキャッシュファイルと同じ形の楽曲一覧に変換します。
// 並び順はカタログの ID 順です。
func FromCatalog(catalog *dta.Catalog) []SongRow {
	rows := make([]SongRow, 0, catalog.Len())
	for id, e := range catalog.All() {
		rows = append(rows, fromEntry(id, e))
	}
	return rows
}

func fromEntry(id string, e dta.Entry) SongRow {
	row := SongRow{
		SongID:              int32(number(e, "song_id")),
		GameVersion:         uint16(number(e, "version")),
		ShortName:           id,
		FilePath:            text(e, "song", "name"),
		VocalParts:          int32(number(e, "song", "vocal_parts")),
		SongName:            text(e, "name"),
		Artist:              text(e, "artist"),
		AlbumName:           text(e, "album_name"),
		TrackNumber:         int32(number(e, "album_track_number")),
		YearRecorded:        int(number(e, "year_recorded")),
		YearReleased:        int(number(e, "year_released")),
		Genre:               codetable.Genre(text(e, "genre")),
		SubGenre:            codetable.SubGenre(text(e, "sub_genre")),
		Rating:              codetable.Rating(int(number(e, "rating"))),
		ScrollSpeed:         uint16(number(e, "song_scroll_speed")),
		VocalPercussionBank: text(e, "bank"),
		DrumBank:            text(e, "drum_bank"),
		SongLength:          codetable.FormatMilliseconds(number(e, "song_length")),
		IsMaster:            isNumber(e, 1, "master"),
		VocalGender:         upperFirstRune(text(e, "vocal_gender")),
	}

	if preview, ok := e.Array("preview"); ok {
		row.PreviewStart = codetable.FormatMilliseconds(arrayNumber(preview, 0))
		row.PreviewEnd = codetable.FormatMilliseconds(arrayNumber(preview, 1))
	} else {
		row.PreviewStart = codetable.FormatMilliseconds(0)
		row.PreviewEnd = codetable.FormatMilliseconds(0)
	}
	if v, ok := e.Number("vocal_tonic_note"); ok {
		row.TonicNote, _ = codetable.TonicNote(int(v))
	}
	if v, ok := e.Number("song_tonality"); ok {
		row.Tonality, _ = codetable.Tonality(int(v))
	}

	row.Difficulty = make(map[codetable.Instrument]string, len(catalogRankNames))
	for _, name := range catalogRankNames {
		inst, _ := codetable.InstrumentFromName(name)
		row.Difficulty[inst] = codetable.Difficulty(inst, int(number(e, "rank", name)))
	}

	// ディスク収録曲には year_recorded がないものがある
	if row.YearRecorded == 0 {
		row.YearRecorded = row.YearReleased
	}

	row.Source = codetable.Source(codetable.SourceInput{
		SongID:    int64(row.SongID),
		Source:    text(e, "game_origin"),
		ShortName: row.ShortName,
		Artist:    row.Artist,
	})
	return row
}

func text(e dta.Entry, path ...string) string {
	s, _ := e.Text(path...)
	return s
}

func number(e dta.Entry, path ...string) float64 {
	f, _ := e.Number(path...)
	return f
}

func isNumber(e dta.Entry, want float64, path ...string) bool {
	f, ok := e.Number(path...)
	return ok && f == want
}

func arrayNumber(arr []dta.Value, i int) float64 {
	if i >= len(arr) {
		return 0
	}
	f, _ := dta.AsNumber(arr[i])
	return f
}

// upperFirstRune は先頭の1文字だけを大文字にします。
func upperFirstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
