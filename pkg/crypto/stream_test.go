package crypto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestParkMiller_KnownSequence(t *testing.T) {
	// MINSTD の公開されている参照値
	rng := NewParkMiller(1)
	expected := []uint32{16807, 282475249, 1622650073, 984943658, 1144108930}
	for i, want := range expected {
		if got := rng.Next(); got != want {
			t.Errorf("index=%d: got=%d, want=%d", i, got, want)
		}
	}
}

func TestParkMiller_Edges(t *testing.T) {
	tests := []struct {
		name string
		seed uint32
		want uint32
	}{
		{"シード0は法に折り返す", 0, 2147483647},
		{"2^31以上のシード", 0xFFFFFFFF, 16807},
		{"法と同じシード", 2147483647, 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewParkMiller(tt.seed).Next(); got != tt.want {
				t.Errorf("Next() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParkMiller_TenThousandth(t *testing.T) {
	// Park と Miller の論文にある検証値
	rng := NewParkMiller(1)
	var v uint32
	for range 10000 {
		v = rng.Next()
	}
	if v != 1043618065 {
		t.Errorf("10000回目 = %d, want 1043618065", v)
	}
}

func TestStreamDecrypt(t *testing.T) {
	seed := uint32(1)
	plain := []byte("Rock Band 3")
	encrypted := make([]byte, SeedSize+len(plain))
	binary.LittleEndian.PutUint32(encrypted, seed)
	rng := NewParkMiller(seed)
	XORKeystream(encrypted[SeedSize:], plain, func() byte { return byte(rng.Next()) })

	// 最初の鍵バイトは 16807 & 0xFF
	if encrypted[SeedSize] != plain[0]^0xA7 {
		t.Fatalf("最初の暗号バイト = 0x%02X, want 0x%02X", encrypted[SeedSize], plain[0]^0xA7)
	}

	got, err := StreamDecrypt(encrypted)
	if err != nil {
		t.Fatalf("StreamDecrypt() error = %v", err)
	}
	if !bytes.Equal(got, plain) {
		t.Errorf("StreamDecrypt() = %q, want %q", got, plain)
	}
}

func TestStreamDecrypt_Lengths(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantLen int
		wantErr error
	}{
		{"シードのみ", []byte{1, 0, 0, 0}, 0, nil},
		{"シード未満", []byte{1, 0, 0}, 0, ErrShortInput},
		{"空入力", nil, 0, ErrShortInput},
		{"ペイロード付き", make([]byte, 10), 6, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StreamDecrypt(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StreamDecrypt() error = %v, want %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestStreamDecrypt_DoesNotModifyInput(t *testing.T) {
	input := []byte{0x10, 0x20, 0x30, 0x40, 0xAA, 0xBB}
	snapshot := bytes.Clone(input)
	if _, err := StreamDecrypt(input); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, snapshot) {
		t.Errorf("入力が変更された: % X", input)
	}
}
