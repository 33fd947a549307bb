package rb3cache

import "errors"

var (
	// ErrUnsupportedFormat はキャッシュファイルとして認識できない場合のエラー
	ErrUnsupportedFormat = errors.New("キャッシュファイルの形式ではありません。STFS パッケージには対応していません")

	// ErrTruncated は長さ付きフィールドがファイル末尾を越えた場合のエラー
	ErrTruncated = errors.New("キャッシュファイルが途中で切れています")

	// ErrDiscCatalog はディスク収録曲のカタログを読めない場合のエラー
	ErrDiscCatalog = errors.New("ディスク収録曲のカタログを読み込めません")

	// ErrEmptyDiscCatalog はディスク収録曲のカタログに楽曲がない場合のエラー
	ErrEmptyDiscCatalog = errors.New("ディスク収録曲のカタログに楽曲がありません")
)
