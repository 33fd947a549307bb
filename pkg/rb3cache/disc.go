package rb3cache

import (
	"fmt"

	"github.com/shiroemons/go-setlist/pkg/dta"
)

// DiscSongs はディスク収録曲のカタログ (ゲームの songs.dta) を楽曲一覧に変換します。
// ディスク収録曲はキャッシュファイルに含まれないため、キャッシュの楽曲の前に加えて使います。
// 楽曲が1つも定義されていない場合は ErrEmptyDiscCatalog を返します。
func DiscSongs(data []byte) ([]SongRow, error) {
	text, err := dta.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscCatalog, err)
	}
	catalog := dta.ParseToMap(text)
	if catalog.Len() == 0 {
		return nil, ErrEmptyDiscCatalog
	}
	return FromCatalog(catalog), nil
}
