package rb3cache

import (
	"encoding/binary"
	"math"
)

// cacheBuilder はテスト用のキャッシュファイルをリトルエンディアンで組み立てます。
type cacheBuilder struct {
	buf []byte
}

func (b *cacheBuilder) zeros(n int) {
	b.buf = append(b.buf, make([]byte, n)...)
}

func (b *cacheBuilder) u8(v uint8) {
	b.buf = append(b.buf, v)
}

func (b *cacheBuilder) u16(v uint16) {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
}

func (b *cacheBuilder) i32(v int32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(v))
}

func (b *cacheBuilder) f32(v float32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, math.Float32bits(v))
}

func (b *cacheBuilder) raw(s string) {
	b.buf = append(b.buf, s...)
}

// str は長さ付き文字列を書き込みます。
func (b *cacheBuilder) str(s string) {
	b.i32(int32(len(s)))
	b.raw(s)
}

func (b *cacheBuilder) bytes() []byte {
	return b.buf
}

// cacheSong はテスト用の楽曲レコードの内容です。
type cacheSong struct {
	id           int32
	gameVersion  uint16
	source       string
	previewStart float32
	previewEnd   float32
	shortName    string
	filePath     string
	vocalParts   int32
	songName     string
	artist       string
	albumName    string
	trackNumber  int32
	yearRecorded int32
	yearReleased uint8
	genre        string
	difficulties []cacheDifficulty
	rating       int32
	scrollSpeed  float32
	bank         string
	drumBank     string
	tonic        int32
	tonality     int32
	songLength   int32
	master       uint16
	vocalGender  string
}

type cacheDifficulty struct {
	name string
	raw  float32
}

// defaultSong は一通りのフィールドを埋めた楽曲を返します。
func defaultSong(id int32, shortName string) cacheSong {
	return cacheSong{
		id:           id,
		gameVersion:  30,
		source:       "rb3_dlc",
		previewStart: 65000,
		previewEnd:   95000,
		shortName:    shortName,
		filePath:     "songs/" + shortName + "/" + shortName,
		vocalParts:   3,
		songName:     "Song " + shortName,
		artist:       "Artist",
		albumName:    "Album",
		trackNumber:  4,
		yearRecorded: 110,
		yearReleased: 95,
		genre:        "classicrock",
		difficulties: []cacheDifficulty{
			{"guitar", 300},
			{"drum", 100},
			{"real_guitar", 0},
			{"tambourine", 200},
		},
		rating:      2,
		scrollSpeed: 2300.7,
		bank:        "sfx/tambourine_bank.milo",
		drumBank:    "sfx/kit01_bank.milo",
		tonic:       4,
		tonality:    1,
		songLength:  245000,
		master:      257,
		vocalGender: "female",
	}
}

// newCache はパッケージ索引を書き込んだビルダーを返します。
func newCache(isWii bool, packageName string) *cacheBuilder {
	b := &cacheBuilder{}
	if isWii {
		b.zeros(WiiHeaderSize)
	}
	b.zeros(4)
	b.i32(1)
	b.str(packageName)
	b.i32(2)
	b.i32(1001)
	b.i32(1002)
	return b
}

// writeSong は楽曲レコードを書き込みます。
func (b *cacheBuilder) writeSong(s cacheSong, isWii bool) {
	b.i32(s.id)
	b.zeros(8)
	b.u16(s.gameVersion)
	b.zeros(5)

	b.str(s.source)
	b.f32(s.previewStart)
	b.f32(s.previewEnd)

	b.str(s.shortName)
	b.zeros(8)
	b.str(s.shortName)

	b.str(s.filePath)
	b.zeros(4)
	b.i32(s.vocalParts)
	b.zeros(12)

	// pans は2要素、残りは空
	b.i32(2)
	b.f32(-1)
	b.f32(1)
	b.i32(0)
	b.i32(0)
	b.i32(0)

	// 繰り返しブロック
	b.i32(1)
	b.str("kick.cue")
	b.i32(0)

	// タグ付きブロック
	b.i32(1)
	b.raw("TAG0")
	b.i32(2)
	b.zeros(8)
	b.zeros(4)

	b.str(s.songName)
	b.str(s.artist)
	if s.albumName == "" {
		b.i32(0)
		b.zeros(4)
	} else {
		b.str(s.albumName)
		b.i32(s.trackNumber)
	}
	b.zeros(3)
	b.i32(s.yearRecorded)
	b.zeros(2)
	b.u8(s.yearReleased)

	b.str(s.genre)
	b.zeros(8)

	b.i32(int32(len(s.difficulties)))
	for _, d := range s.difficulties {
		b.str(d.name)
		b.f32(d.raw)
	}

	b.i32(s.rating)
	b.zeros(2)
	b.f32(s.scrollSpeed)
	b.zeros(4)

	b.str(s.bank)
	b.str(s.drumBank)

	b.i32(s.tonic)
	b.zeros(4)
	b.i32(s.tonality)
	b.i32(s.songLength)

	b.u16(s.master)
	if isWii {
		b.zeros(6)
	} else {
		b.zeros(5)
	}

	b.str(s.vocalGender)
	b.zeros(24 + 16 + 1)
	b.i32(0)
}

// buildCache は songs を並べたキャッシュファイルを作成します。
func buildCache(isWii bool, songs ...cacheSong) []byte {
	name := "mypack_rb3con"
	if isWii {
		name = "sZAE/001"
	}
	b := newCache(isWii, name)
	b.i32(int32(len(songs)))
	for _, s := range songs {
		b.writeSong(s, isWii)
	}
	return b.bytes()
}
