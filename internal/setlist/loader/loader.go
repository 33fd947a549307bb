// Package loader はセーブファイルとキャッシュファイルを読み込み、曲 ID で結合します
package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	setlisterrors "github.com/shiroemons/go-setlist/internal/setlist/errors"
	"github.com/shiroemons/go-setlist/internal/setlist/fileutil"
	"github.com/shiroemons/go-setlist/internal/setlist/interfaces"
	"github.com/shiroemons/go-setlist/internal/setlist/models"
	"github.com/shiroemons/go-setlist/pkg/rb3cache"
	"github.com/shiroemons/go-setlist/pkg/rb3save"
)

// Loader はセーブファイルとキャッシュファイルを読み込みます
type Loader struct {
	fs          interfaces.FileSystem
	logger      interfaces.Logger
	wiiProfile  int
	discCatalog string
}

// Options はLoaderの設定オプション
type Options struct {
	// WiiProfile は Wii のセーブデータで読むプロフィール番号 (0-3) です
	WiiProfile int
	// DiscCatalogPath はディスク収録曲のカタログ (ゲームの songs.dta) のパスです。
	// 空の場合、キャッシュの楽曲にディスク収録曲を加えません
	DiscCatalogPath string
}

// New は新しいLoaderを作成します
func New(fs interfaces.FileSystem, logger interfaces.Logger, opts Options) *Loader {
	return &Loader{
		fs:          fs,
		logger:      logger,
		wiiProfile:  opts.WiiProfile,
		discCatalog: opts.DiscCatalogPath,
	}
}

// Load は2つのファイルを並行して読み込み、結合した結果を返します
// どちらのパスも省略できますが、両方が空の場合はエラーです。
// ファイルごとの読み込みエラーは結果の Files に記録し、もう一方の読み込みは続けます
func (l *Loader) Load(ctx context.Context, savePath, cachePath string) (*models.LoadResult, error) {
	if savePath == "" && cachePath == "" {
		return nil, setlisterrors.ErrNoInput
	}

	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var (
		wg    sync.WaitGroup
		save  *models.ReadResult[rb3save.SongScore]
		cache *models.ReadResult[rb3cache.SongRow]
	)
	if savePath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			save = l.readSave(savePath)
		}()
	}
	if cachePath != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache = l.readCache(cachePath)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &models.LoadResult{}
	if save != nil {
		result.SaveRows = scoreRows(save.Rows)
		result.Files = appendSummary(result.Files, save.Meta, len(save.Rows), save.Error)
	}
	if cache != nil {
		result.CacheRows = cacheRows(cache.Rows)
		result.Files = appendSummary(result.Files, cache.Meta, len(cache.Rows), cache.Error)
	}

	if len(result.SaveRows) > 0 && len(result.CacheRows) > 0 {
		saveRows, cacheRows := result.SaveRows, result.CacheRows
		result.SaveRows = MergeByID(saveRows, cacheRows)
		result.CacheRows = MergeByID(cacheRows, saveRows)
	}

	result.TotalRows = len(result.SaveRows)
	result.SaveRows = ApplyDefaults(result.SaveRows)
	result.CacheRows = ApplyDefaults(result.CacheRows)

	l.logger.Printf("セーブデータ %d 曲、キャッシュ %d 曲を読み込みました\n", len(result.SaveRows), len(result.CacheRows))
	return result, nil
}

// readSave はセーブファイルを読み込みます
func (l *Loader) readSave(path string) *models.ReadResult[rb3save.SongScore] {
	result := &models.ReadResult[rb3save.SongScore]{}

	data, meta, err := l.readFile(path)
	result.Meta = meta
	if err != nil {
		result.Error = setlisterrors.NewDecodeError("セーブファイルの読み込み", path, err).Error()
		return result
	}

	l.logger.Printf("セーブファイル %s (%d バイト, %s) を解析します\n", path, len(data), rb3save.DetectConsole(len(data)))
	rows, err := rb3save.DecodeProfile(data, l.wiiProfile)
	result.Rows = rows
	if err != nil {
		result.Error = setlisterrors.NewDecodeError("セーブファイルの解析", path, err).Error()
	}
	return result
}

// readCache はキャッシュファイルを読み込み、ディスク収録曲を先頭に加えます
func (l *Loader) readCache(path string) *models.ReadResult[rb3cache.SongRow] {
	result := &models.ReadResult[rb3cache.SongRow]{}

	data, meta, err := l.readFile(path)
	result.Meta = meta
	if err != nil {
		result.Error = setlisterrors.NewDecodeError("キャッシュファイルの読み込み", path, err).Error()
		return result
	}

	isWii := rb3cache.IsWiiCache(path)
	l.logger.Printf("キャッシュファイル %s (%d バイト, Wii=%v) を解析します\n", path, len(data), isWii)
	rows, err := rb3cache.Decode(data, isWii)
	if errors.Is(err, rb3cache.ErrUnsupportedFormat) {
		result.Error = setlisterrors.NewDecodeError("キャッシュファイルの解析", path, err).Error()
		return result
	}

	var msgs []string
	if err != nil {
		msgs = append(msgs, setlisterrors.NewDecodeError("キャッシュファイルの解析", path, err).Error())
	}

	// キャッシュにはディスク収録曲が含まれない
	disc, err := l.readDiscSongs()
	if err != nil {
		msgs = append(msgs, setlisterrors.NewDecodeError("ディスク収録曲の読み込み", l.discCatalog, err).Error())
	}
	result.Rows = append(disc, rows...)
	// 要約は1行なので改行を含めない
	result.Error = strings.Join(msgs, "; ")
	return result
}

// readDiscSongs はディスク収録曲のカタログを読み込みます。パスが空の場合は何もしません
func (l *Loader) readDiscSongs() ([]rb3cache.SongRow, error) {
	if l.discCatalog == "" {
		return nil, nil
	}
	data, _, err := l.readFile(l.discCatalog)
	if err != nil {
		return nil, err
	}
	songs, err := rb3cache.DiscSongs(data)
	if err != nil {
		return nil, err
	}
	l.logger.Printf("ディスク収録曲 %d 曲を %s から読み込みました\n", len(songs), l.discCatalog)
	return songs, nil
}

// readFile はファイルの情報と内容を読み込みます
// ファイルが存在しない場合もファイル名だけの情報を返し、一覧に載せられるようにします
func (l *Loader) readFile(path string) ([]byte, *models.FileMeta, error) {
	if !l.fs.FileExists(path) {
		return nil, &models.FileMeta{Name: filepath.Base(path)}, setlisterrors.ErrFileNotFound
	}
	meta, err := fileutil.ReadFileMeta(l.fs, path)
	if err != nil {
		return nil, nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, meta, fmt.Errorf("%w: %w", ErrReadFile, err)
	}
	return data, meta, nil
}

func scoreRows(scores []rb3save.SongScore) []models.SongRow {
	rows := make([]models.SongRow, len(scores))
	for i := range scores {
		rows[i] = models.SongRow{SongID: int64(scores[i].SongID), Score: &scores[i]}
	}
	return rows
}

func cacheRows(songs []rb3cache.SongRow) []models.SongRow {
	rows := make([]models.SongRow, len(songs))
	for i := range songs {
		rows[i] = models.SongRow{SongID: int64(songs[i].SongID), Cache: &songs[i]}
	}
	return rows
}

func appendSummary(files []models.FileSummary, meta *models.FileMeta, rowCount int, errMsg string) []models.FileSummary {
	if meta == nil {
		return files
	}
	return append(files, models.FileSummary{
		FileMeta: *meta,
		RowCount: rowCount,
		Error:    errMsg,
	})
}
