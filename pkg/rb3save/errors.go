package rb3save

import "errors"

var (
	// ErrUnsupportedFormat はファイルサイズがどのコンソールのセーブデータにも一致しない場合のエラー
	ErrUnsupportedFormat = errors.New("セーブデータの形式ではありません。save.dat (Xbox / PS3) か band3.dat (Wii) を指定してください")

	// ErrPackagedContainer は STFS パッケージのままのセーブデータが渡された場合のエラー
	ErrPackagedContainer = errors.New("STFS パッケージには対応していません")

	// ErrOffsetMismatch は形式は一致したが開始オフセット直前のバイトが想定と異なる場合のエラー
	ErrOffsetMismatch = errors.New("形式は正しいようですが開始オフセットが一致しません。開発者に報告してください")

	// ErrImplausibleSongCount は楽曲数がありえない値の場合のエラー
	ErrImplausibleSongCount = errors.New("楽曲数がありえない値です (3000 を越えているか負の値)")

	// ErrEmptySave は楽曲数が0の場合のエラー
	ErrEmptySave = errors.New("楽曲数が0です。セーブデータに楽曲が見つかりません")

	// ErrCorruptSong は不正な楽曲レコードを検出して解析を打ち切った場合のエラー
	ErrCorruptSong = errors.New("不正な楽曲データを検出したため解析を中止しました")

	// ErrTruncated は宣言された長さよりデータが短い場合のエラー
	ErrTruncated = errors.New("セーブデータが途中で切れています")
)
