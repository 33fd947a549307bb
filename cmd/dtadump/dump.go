package main

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/shiroemons/go-setlist/internal/setlist/models"
	"github.com/shiroemons/go-setlist/internal/setlist/report"
	"github.com/shiroemons/go-setlist/pkg/dta"
	"github.com/shiroemons/go-setlist/pkg/rb3cache"
)

// dumpOptions は出力内容の設定です
type dumpOptions struct {
	meta bool
	tsv  bool
}

// 解析結果
type dumpResult struct {
	index  int
	path   string
	output string
	err    error
}

// readFile はファイルの読み込み関数です。テストで差し替えます
var readFile = os.ReadFile

// dumpFile は1つの DTA ファイルを解析して表示用の文字列を返します
func dumpFile(path string, opts dumpOptions) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	text, err := dta.DecodeText(data)
	if err != nil {
		return "", err
	}
	catalog := dta.ParseToMap(text)

	if opts.tsv {
		songs := rb3cache.FromCatalog(catalog)
		rows := make([]models.SongRow, len(songs))
		for i := range songs {
			rows[i] = models.SongRow{SongID: int64(songs[i].SongID), Cache: &songs[i]}
		}
		return report.Render(rows, report.CacheView), nil
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("# %s: %d entries\n", path, catalog.Len()))
	for id, e := range catalog.All() {
		name, _ := e.Text("name")
		artist, _ := e.Text("artist")
		builder.WriteString(fmt.Sprintf("%s\t%s\t%s\n", id, name, artist))
		if opts.meta && e.Meta != nil {
			builder.WriteString(indent(formatMeta(e.Meta)))
		}
	}
	return builder.String(), nil
}

// formatMeta はメタ情報をキー順に並べます
func formatMeta(meta map[string]dta.Value) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var builder strings.Builder
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("%s: %v\n", k, meta[k]))
	}
	return builder.String()
}

// 順次処理で解析
func dumpSequential(paths []string) []dumpResult {
	opts := currentOptions()
	results := make([]dumpResult, len(paths))
	for i, path := range paths {
		output, err := dumpFile(path, opts)
		results[i] = dumpResult{index: i, path: path, output: output, err: err}
	}
	return results
}

// 並列処理で解析。結果は引数の順に並べ直して返します
func dumpParallel(paths []string, numWorkers int) []dumpResult {
	if numWorkers <= 0 {
		numWorkers = 4 // デフォルトのワーカー数
	}
	opts := currentOptions()

	type dumpJob struct {
		index int
		path  string
	}
	jobs := make(chan dumpJob, numWorkers*2)
	results := make(chan dumpResult, numWorkers*2)

	// ワーカーを起動
	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				output, err := dumpFile(job.path, opts)
				results <- dumpResult{index: job.index, path: job.path, output: output, err: err}
			}
		}()
	}

	// 結果処理用のgoroutineを起動
	collected := make([]dumpResult, len(paths))
	resultDone := make(chan struct{})
	go func() {
		for r := range results {
			collected[r.index] = r
			if *debugFlag {
				fmt.Fprintf(os.Stderr, "完了: %s\n", r.path)
			}
		}
		close(resultDone)
	}()

	// ジョブを投入
	for i, path := range paths {
		jobs <- dumpJob{index: i, path: path}
	}
	close(jobs)

	// 全てのワーカーが終了するのを待つ
	wg.Wait()
	close(results)
	<-resultDone

	return collected
}
