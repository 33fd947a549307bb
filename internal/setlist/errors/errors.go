// Package errors はカスタムエラータイプを提供します
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrFileNotFound はファイルが見つからない場合のエラー
	ErrFileNotFound = errors.New("ファイルが見つかりません")

	// ErrNoInput は入力ファイルが1つも指定されていない場合のエラー
	ErrNoInput = errors.New("セーブファイルかキャッシュファイルを指定してください")

	// ErrNoSongs はどちらのファイルからも楽曲を読み取れなかった場合のエラー
	ErrNoSongs = errors.New("楽曲データが見つかりません")
)

// DecodeError はファイルの解析に関するエラー
type DecodeError struct {
	Op   string // 実行していた操作
	Path string // ファイルパス
	Err  error  // 元のエラー
}

// Error はエラーメッセージを返します
func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap は元のエラーを返します
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError は新しいDecodeErrorを作成します
func NewDecodeError(op, path string, err error) *DecodeError {
	return &DecodeError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
