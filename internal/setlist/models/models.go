// Package models はsetlistコマンドで使用するデータモデルを定義します
package models

import (
	"time"

	"github.com/shiroemons/go-setlist/pkg/rb3cache"
	"github.com/shiroemons/go-setlist/pkg/rb3save"
)

// FileMeta は読み込んだファイルの情報を表します
type FileMeta struct {
	Name         string
	Size         int64
	LastModified time.Time
}

// ReadResult は1つのファイルを解析した結果を表します
// Error が空でない場合も、解析できたところまでの Rows を保持します
type ReadResult[T any] struct {
	Rows  []T
	Meta  *FileMeta
	Error string
}

// SongRow はセーブデータの成績とキャッシュのメタ情報を曲 ID でまとめた1行を表します
// どちらか一方しかない場合、もう一方は nil です
type SongRow struct {
	SongID int64
	Score  *rb3save.SongScore
	Cache  *rb3cache.SongRow
}

// FileSummary は読み込み結果の一覧に表示するファイルごとの情報を表します
type FileSummary struct {
	FileMeta
	RowCount int
	Error    string
}

// LoadResult はセーブファイルとキャッシュファイルを読み込んだ結果を表します
type LoadResult struct {
	SaveRows  []SongRow
	CacheRows []SongRow
	Files     []FileSummary
	TotalRows int
}
