package main

import (
	"errors"
	"os"
	"strings"
	"testing"
)

const testDTA = `
(songa
   (name "Song A")
   (artist "Artist A")
   ;Karaoke=1
   (song_id 1))
(songb
   (name "Song B")
   (artist "Artist B")
   (song_id 2))
`

// stubReadFile は readFile をテスト用に差し替えます
func stubReadFile(t *testing.T, files map[string]string) {
	t.Helper()
	orig := readFile
	readFile = func(name string) ([]byte, error) {
		s, ok := files[name]
		if !ok {
			return nil, os.ErrNotExist
		}
		return []byte(s), nil
	}
	t.Cleanup(func() { readFile = orig })
}

func TestDumpFile(t *testing.T) {
	stubReadFile(t, map[string]string{"songs.dta": testDTA})

	tests := []struct {
		name string
		opts dumpOptions
		want []string
	}{
		{"一覧", dumpOptions{}, []string{"# songs.dta: 2 entries", "songa\tSong A\tArtist A", "songb\tSong B\tArtist B"}},
		{"メタ情報つき", dumpOptions{meta: true}, []string{"  karaoke: 1"}},
		{"TSV", dumpOptions{tsv: true}, []string{"Song A", "Artist B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dumpFile("songs.dta", tt.opts)
			if err != nil {
				t.Fatalf("dumpFile() error = %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("出力に %q が含まれません:\n%s", w, got)
				}
			}
		})
	}
}

func TestDumpFile_NotFound(t *testing.T) {
	stubReadFile(t, nil)

	if _, err := dumpFile("missing.dta", dumpOptions{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("dumpFile() error = %v, want os.ErrNotExist", err)
	}
}

func TestDumpParallel_KeepsOrder(t *testing.T) {
	files := map[string]string{}
	var paths []string
	for _, name := range []string{"a.dta", "b.dta", "c.dta", "d.dta", "e.dta"} {
		files[name] = testDTA
		paths = append(paths, name)
	}
	paths = append(paths, "missing.dta")
	stubReadFile(t, files)

	sequential := dumpSequential(paths)
	parallel := dumpParallel(paths, 3)
	if len(parallel) != len(paths) {
		t.Fatalf("len(results) = %d, want %d", len(parallel), len(paths))
	}
	for i := range paths {
		if parallel[i].path != paths[i] {
			t.Errorf("results[%d].path = %q, want %q", i, parallel[i].path, paths[i])
		}
		if parallel[i].output != sequential[i].output {
			t.Errorf("results[%d] の出力が順次処理と異なります", i)
		}
	}
	if parallel[len(paths)-1].err == nil {
		t.Error("存在しないファイルでエラーになりません")
	}
}
