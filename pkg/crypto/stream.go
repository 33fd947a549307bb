package crypto

import (
	"encoding/binary"
	"errors"
)

// SeedSize は暗号化データ先頭のシード長です。
const SeedSize = 4

// ErrShortInput は入力がシードより短い場合のエラー
var ErrShortInput = errors.New("入力がシード長より短いです")

// StreamDecrypt はセーブデータのストリーム暗号を解除します。
// 先頭4バイトはリトルエンディアンのシードで、以降の各バイトを
// ParkMiller の状態を1つ進めた値の下位8ビットで XOR します。
// 戻り値の長さは len(data)-4 です。入力は変更しません。
func StreamDecrypt(data []byte) ([]byte, error) {
	if len(data) < SeedSize {
		return nil, ErrShortInput
	}

	rng := NewParkMiller(binary.LittleEndian.Uint32(data[:SeedSize]))
	out := make([]byte, len(data)-SeedSize)
	XORKeystream(out, data[SeedSize:], func() byte {
		return byte(rng.Next())
	})
	return out, nil
}
