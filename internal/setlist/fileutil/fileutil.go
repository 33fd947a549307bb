// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shiroemons/go-setlist/internal/setlist/interfaces"
	"github.com/shiroemons/go-setlist/internal/setlist/models"
)

// utf8BOM は表計算ソフトで文字化けしないよう出力の先頭に付けるBOMです
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteWithBOM は FileSystem を通してUTF-8 BOMありでファイルに保存します
func WriteWithBOM(fs interfaces.FileSystem, outputPath string, content string) error {
	if err := fs.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	data := make([]byte, 0, len(utf8BOM)+len(content))
	data = append(data, utf8BOM...)
	data = append(data, content...)
	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// ReadFileMeta はファイル名・サイズ・更新日時を取得します
func ReadFileMeta(fs interfaces.FileSystem, path string) (*models.FileMeta, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrStatFile, path, err)
	}
	return &models.FileMeta{
		Name:         filepath.Base(path),
		Size:         info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

// GenerateOutputFilename は入力ファイル名から出力ファイル名を生成します
// view には save か cache を指定します
func GenerateOutputFilename(inputPath, view string) string {
	// ファイル名の部分だけを取得（拡張子なし）
	baseName := filepath.Base(inputPath)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// setlist_XXX_view.tsv 形式の名前を生成
	return fmt.Sprintf("setlist_%s_%s.tsv", baseName, view)
}
