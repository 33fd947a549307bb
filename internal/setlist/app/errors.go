package app

import "errors"

var (
	// ErrLoad は入力ファイルの読み込みに失敗した場合のエラー
	ErrLoad = errors.New("入力ファイルの読み込みに失敗しました")

	// ErrSaveFile はファイルの保存に失敗した場合のエラー
	ErrSaveFile = errors.New("ファイルの保存に失敗しました")
)
