// Package report は結合済みの楽曲一覧をタブ区切りテキストに変換します
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiroemons/go-setlist/internal/setlist/models"
	"github.com/shiroemons/go-setlist/pkg/codetable"
	"github.com/shiroemons/go-setlist/pkg/rb3cache"
	"github.com/shiroemons/go-setlist/pkg/rb3save"
)

// View は出力する一覧の種類です
type View int

const (
	// SaveView はセーブデータの成績を中心にした一覧です
	SaveView View = iota
	// CacheView はキャッシュの楽曲情報を中心にした一覧です
	CacheView
)

// String は出力ファイル名に使う名前を返します
func (v View) String() string {
	if v == CacheView {
		return "cache"
	}
	return "save"
}

// missing は該当するデータがない列の表示です
const missing = "-"

type column struct {
	header string
	value  func(models.SongRow) string
}

func metaColumn(header string, value func(*rb3cache.SongRow) string) column {
	return column{header, func(r models.SongRow) string {
		if r.Cache == nil {
			return missing
		}
		return value(r.Cache)
	}}
}

func scoreColumn(header string, value func(*rb3save.SongScore) string) column {
	return column{header, func(r models.SongRow) string {
		if r.Score == nil {
			return missing
		}
		return value(r.Score)
	}}
}

func itoa[T ~int | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

var (
	idColumn     = column{"Song ID", func(r models.SongRow) string { return itoa(r.SongID) }}
	nameColumn   = metaColumn("Song", func(s *rb3cache.SongRow) string { return s.SongName })
	artistColumn = metaColumn("Artist", func(s *rb3cache.SongRow) string { return s.Artist })
	sourceColumn = metaColumn("Source", func(s *rb3cache.SongRow) string { return s.Source })
	genreColumn  = metaColumn("Genre", func(s *rb3cache.SongRow) string { return s.Genre })
	yearColumn   = metaColumn("Year Released", func(s *rb3cache.SongRow) string { return itoa(s.YearReleased) })
	lengthColumn = metaColumn("Length", func(s *rb3cache.SongRow) string { return s.SongLength })
	playsColumn  = scoreColumn("Play Count", func(s *rb3save.SongScore) string { return itoa(s.PlayCount) })
)

func saveColumns() []column {
	cols := []column{
		idColumn, nameColumn, artistColumn, sourceColumn, genreColumn, yearColumn, lengthColumn, playsColumn,
		scoreColumn("Lighter Rating", func(s *rb3save.SongScore) string { return itoa(s.LighterRating) }),
	}
	for p := range rb3save.PartCount {
		cols = append(cols,
			scoreColumn(p.String()+" Score", func(s *rb3save.SongScore) string { return itoa(s.Parts[p].TopScore) }),
			scoreColumn(p.String()+" Difficulty", func(s *rb3save.SongScore) string {
				return codetable.PlayDifficulty(int(s.Parts[p].TopDifficulty))
			}),
			scoreColumn(p.String()+" Stars", func(s *rb3save.SongScore) string { return topStars(s.Parts[p]) }),
			scoreColumn(p.String()+" Percent", func(s *rb3save.SongScore) string { return topPercent(s.Parts[p]) }),
		)
	}
	return cols
}

func cacheColumns() []column {
	cols := []column{
		idColumn,
		metaColumn("Short Name", func(s *rb3cache.SongRow) string { return s.ShortName }),
		nameColumn, artistColumn,
		metaColumn("Album", func(s *rb3cache.SongRow) string { return s.AlbumName }),
		metaColumn("Track", func(s *rb3cache.SongRow) string { return itoa(s.TrackNumber) }),
		yearColumn,
		metaColumn("Year Recorded", func(s *rb3cache.SongRow) string { return itoa(s.YearRecorded) }),
		genreColumn,
		metaColumn("Sub-Genre", func(s *rb3cache.SongRow) string { return s.SubGenre }),
		sourceColumn, lengthColumn,
		metaColumn("Preview", func(s *rb3cache.SongRow) string { return s.PreviewStart + "-" + s.PreviewEnd }),
		metaColumn("Rating", func(s *rb3cache.SongRow) string { return s.Rating }),
		metaColumn("Tonic", func(s *rb3cache.SongRow) string { return s.TonicNote }),
		metaColumn("Tonality", func(s *rb3cache.SongRow) string { return s.Tonality }),
		metaColumn("Vocal Gender", func(s *rb3cache.SongRow) string { return s.VocalGender }),
		metaColumn("Vocal Parts", func(s *rb3cache.SongRow) string { return itoa(s.VocalParts) }),
		metaColumn("Master", func(s *rb3cache.SongRow) string { return strconv.FormatBool(s.IsMaster) }),
		metaColumn("Scroll Speed", func(s *rb3cache.SongRow) string { return itoa(s.ScrollSpeed) }),
	}
	for _, inst := range codetable.Instruments {
		cols = append(cols, metaColumn(inst.String(), func(s *rb3cache.SongRow) string { return s.DifficultyOf(inst) }))
	}
	return append(cols, playsColumn)
}

// topStars は最高スコアを出した難易度の星の数を返します
func topStars(p rb3save.PartScore) string {
	return itoa(p.Stars[min(int(p.TopDifficulty), len(p.Stars)-1)])
}

// topPercent は最高スコアを出した難易度の達成率を返します
func topPercent(p rb3save.PartScore) string {
	return itoa(p.Percent[min(int(p.TopDifficulty), len(p.Percent)-1)]) + "%"
}

// Render は rows をヘッダー付きのタブ区切りテキストに変換します
func Render(rows []models.SongRow, view View) string {
	cols := saveColumns()
	if view == CacheView {
		cols = cacheColumns()
	}

	var builder strings.Builder
	fields := make([]string, len(cols))
	for i, c := range cols {
		fields[i] = c.header
	}
	builder.WriteString(strings.Join(fields, "\t") + "\n")

	for _, row := range rows {
		for i, c := range cols {
			fields[i] = sanitize(c.value(row))
		}
		builder.WriteString(strings.Join(fields, "\t") + "\n")
	}
	return builder.String()
}

// RenderSummary は読み込んだファイルの一覧をコメント行として返します
func RenderSummary(files []models.FileSummary) string {
	var builder strings.Builder
	for _, f := range files {
		builder.WriteString(fmt.Sprintf("#%s\t%d bytes\t%s\t%d songs", f.Name, f.Size, f.LastModified.Format(time.DateTime), f.RowCount))
		if f.Error != "" {
			builder.WriteString("\t" + f.Error)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// fieldSeparators はタブ区切りを崩す文字を空白に置き換えます
var fieldSeparators = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func sanitize(s string) string {
	return fieldSeparators.Replace(s)
}
