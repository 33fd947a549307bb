package config

import (
	"flag"
	"io"
	"os"
	"strings"
	"testing"
)

func parseArgs(t *testing.T, args ...string) *Config {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	// フラグをリセット
	flag.CommandLine = flag.NewFlagSet(args[0], flag.ContinueOnError)
	os.Args = args
	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "ロングオプション",
			args: []string{"cmd", "--save", "save.dat", "--cache", "songcache.bin", "--disc-dta", "songs.dta", "-o", "/tmp", "--debug", "--dry-run"},
			want: Config{SavePath: "save.dat", CachePath: "songcache.bin", DiscDTAPath: "songs.dta", OutputDir: "/tmp", DebugMode: true, DryRun: true},
		},
		{
			name: "短縮オプション",
			args: []string{"cmd", "-s", "band3.dat", "-c", "cache.vff", "-d", "-n", "--wii-profile", "2"},
			want: Config{SavePath: "band3.dat", CachePath: "cache.vff", OutputDir: ".", WiiProfile: 2, DebugMode: true, DryRun: true},
		},
		{
			name: "デフォルト値",
			args: []string{"cmd"},
			want: Config{OutputDir: "."},
		},
		{
			name: "バージョン",
			args: []string{"cmd", "-v"},
			want: Config{OutputDir: ".", ShowVersion: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseArgs(t, tt.args...)
			if *got != tt.want {
				t.Errorf("ParseFlags() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = oldStdout

	out, _ := io.ReadAll(r)
	return string(out)
}

func TestDebugLogger(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    bool
	}{
		{"有効", true, true},
		{"無効", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() {
				NewDebugLogger(tt.enabled).Printf("test message %d\n", 123)
			})
			if got := strings.Contains(output, "test message 123"); got != tt.want {
				t.Errorf("output = %q, want contains = %v", output, tt.want)
			}
		})
	}
}
