package rb3cache

import (
	"maps"

	"github.com/shiroemons/go-setlist/pkg/codetable"
)

// SongRow はキャッシュファイルまたは DTA カタログの楽曲1件分のメタ情報です。
// ラベル類は codetable で変換済みの表示用文字列です。
type SongRow struct {
	SongID       int32
	GameVersion  uint16
	Source       string
	PreviewStart string
	PreviewEnd   string
	ShortName    string
	FilePath     string
	VocalParts   int32
	SongName     string
	Artist       string
	AlbumName    string
	TrackNumber  int32
	YearRecorded int
	YearReleased int
	Genre        string
	SubGenre     string

	// Difficulty はパートごとの難易度帯ラベルです。キャッシュに含まれないパートはキーがありません。
	Difficulty map[codetable.Instrument]string

	Rating              string
	ScrollSpeed         uint16
	VocalPercussionBank string
	DrumBank            string
	TonicNote           string
	Tonality            string
	SongLength          string
	IsMaster            bool
	VocalGender         string
}

// DifficultyOf はパートの難易度帯ラベルを返します。
func (r SongRow) DifficultyOf(inst codetable.Instrument) string {
	return r.Difficulty[inst]
}

// Clone は Difficulty を含めて複製した SongRow を返します。
func (r SongRow) Clone() SongRow {
	r.Difficulty = maps.Clone(r.Difficulty)
	return r
}
