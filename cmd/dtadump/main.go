package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	metaFlag     = flag.Bool("m", false, "show comment metadata of each entry")
	tsvFlag      = flag.Bool("tsv", false, "print songs as tab separated rows")
	debugFlag    = flag.Bool("d", false, "debug mode (show more info)")
	parallelFlag = flag.Bool("p", false, "parse files in parallel")
	workerCount  = flag.Int("w", 4, "number of worker threads for parallel parsing")
)

func main() {
	flag.Parse()

	// 引数チェック
	files := flag.Args()
	if len(files) < 1 {
		fmt.Println("使用方法: dtadump [オプション] <songs.dta> [songs2.dta ...]")
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var results []dumpResult
	if *parallelFlag {
		// 並列処理で解析
		results = dumpParallel(files, *workerCount)
	} else {
		// 順次処理で解析
		results = dumpSequential(files)
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "解析に失敗しました: %s - %v\n", r.path, r.err)
			failed++
			continue
		}
		fmt.Print(r.output)
	}

	if *debugFlag {
		fmt.Printf("\n%d 個のファイルを解析しました (失敗 %d)\n", len(results)-failed, failed)
	}
	if failed == len(results) {
		os.Exit(1)
	}
}

// currentOptions はフラグから出力設定を作ります
func currentOptions() dumpOptions {
	return dumpOptions{meta: *metaFlag, tsv: *tsvFlag}
}

// indent は複数行の文字列を字下げします
func indent(s string) string {
	return "  " + strings.ReplaceAll(strings.TrimSuffix(s, "\n"), "\n", "\n  ") + "\n"
}
