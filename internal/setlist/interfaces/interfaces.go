// Package interfaces はsetlistコマンドで使用するインターフェースを定義します
package interfaces

import (
	"context"
	"time"

	"github.com/shiroemons/go-setlist/internal/setlist/models"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
	Stat(name string) (FileInfo, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	Size() int64
	ModTime() time.Time
	IsDir() bool
}

// Loader はセーブファイルとキャッシュファイルを読み込むインターフェースです
type Loader interface {
	Load(ctx context.Context, savePath, cachePath string) (*models.LoadResult, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
