package rb3save

import (
	"encoding/binary"

	"github.com/shiroemons/go-setlist/pkg/crypto"
)

// testRecord は ID とギターの成績だけを設定したレコードを作成します。
func testRecord(id uint32, playCount int32, guitarScore int32) []byte {
	rec := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(rec[0:], id)
	rec[6] = 3
	binary.LittleEndian.PutUint32(rec[11:], uint32(playCount))
	g := partOffsets[Guitar]
	binary.LittleEndian.PutUint32(rec[g:], uint32(guitarScore))
	rec[g+4] = 3    // Expert
	rec[g+5] = 6    // Easy の星
	rec[g+6] = 99   // Easy の達成率
	rec[g+29] = 5   // Expert の星
	rec[g+30] = 100 // Expert の達成率

	// バンドの Expert 達成率 (オフセット 463) は最後のレコードでも残る最終バイト
	rec[RecordSize-7] = 0x42
	return rec
}

// encrypt はシードを先頭に付けて plain を暗号化します。
func encrypt(seed uint32, plain []byte) []byte {
	out := make([]byte, crypto.SeedSize+len(plain))
	binary.LittleEndian.PutUint32(out, seed)
	rng := crypto.NewParkMiller(seed)
	crypto.XORKeystream(out[crypto.SeedSize:], plain, func() byte { return byte(rng.Next()) })
	return out
}

// encryptedSave は楽曲数 count を宣言した Xbox / PS3 形式のセーブデータを作成します。
// records が count より少ない場合、残りのレコードは0で埋まります。
func encryptedSave(size int, count int32, records ...[]byte) []byte {
	n := max(int(count), len(records), 1)
	plain := make([]byte, 4+n*(duplicateIDSize+RecordSize))
	binary.LittleEndian.PutUint32(plain, uint32(count))
	for i, rec := range records {
		start := 4 + i*(duplicateIDSize+RecordSize)
		copy(plain[start:], rec[:4])
		copy(plain[start+duplicateIDSize:], rec)
	}

	data := make([]byte, size)
	copy(data[StartOffset(size, 0):], encrypt(0x1234ABCD, plain))
	return data
}

// wiiSave は指定したプロフィールにレコードを平文で並べた Wii 形式のセーブデータを作成します。
func wiiSave(profile int, records ...[]byte) []byte {
	data := make([]byte, wiiSaveSize)
	offset := wiiProfileOffsets[profile]
	for i, rec := range records {
		copy(data[offset+i*RecordSize:], rec)
	}
	return data
}
