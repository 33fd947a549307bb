// Package config はsetlistコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"os"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	SavePath    string
	CachePath   string
	DiscDTAPath string
	OutputDir   string
	WiiProfile  int
	DebugMode   bool
	DryRun      bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --save string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to save file (save.dat for Xbox / PS3, band3.dat for Wii)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -s string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to save file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --cache string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to song cache file (songcache.bin or .vff for Wii)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -c string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to song cache file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --disc-dta string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to the game's songs.dta listing the on-disc songs")
		fmt.Fprintln(flag.CommandLine.Output(), "  --wii-profile int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tWii profile slot to read (0-3)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput directory for the generated files (default \".\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  --dry-run")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tperform a dry run without writing output files")
		fmt.Fprintln(flag.CommandLine.Output(), "  -n\tperform a dry run without writing output files (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 入力ファイル
	flag.StringVar(&config.SavePath, "save", "", "path to save file (save.dat for Xbox / PS3, band3.dat for Wii)")
	flag.StringVar(&config.SavePath, "s", "", "path to save file (shorthand)")
	flag.StringVar(&config.CachePath, "cache", "", "path to song cache file (songcache.bin or .vff for Wii)")
	flag.StringVar(&config.CachePath, "c", "", "path to song cache file (shorthand)")

	// ディスク収録曲のカタログ
	flag.StringVar(&config.DiscDTAPath, "disc-dta", "", "path to the game's songs.dta listing the on-disc songs")

	// Wii のプロフィール
	flag.IntVar(&config.WiiProfile, "wii-profile", 0, "Wii profile slot to read (0-3)")

	// 出力ディレクトリ
	flag.StringVar(&config.OutputDir, "o", ".", "output directory for the generated files")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// ドライランモード
	flag.BoolVar(&config.DryRun, "dry-run", false, "perform a dry run without writing output files")
	flag.BoolVar(&config.DryRun, "n", false, "perform a dry run without writing output files (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("setlist version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Printf(format, a...)
	}
}
