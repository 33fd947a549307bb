package crypto

import (
	"bytes"
	"testing"
)

func TestXORKeystream(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		keys     []byte
		expected []byte
	}{
		{
			name:     "単一バイト",
			input:    []byte{0x00},
			keys:     []byte{0xFF},
			expected: []byte{0xFF},
		},
		{
			name:     "バイトごとに鍵が変わる",
			input:    []byte{0x00, 0xFF, 0xAA, 0x55},
			keys:     []byte{0x01, 0x02, 0x03, 0x04},
			expected: []byte{0x01, 0xFD, 0xA9, 0x51},
		},
		{
			name:     "空データ",
			input:    []byte{},
			keys:     []byte{},
			expected: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := 0
			next := func() byte {
				k := tt.keys[i]
				i++
				return k
			}
			got := make([]byte, len(tt.input))
			XORKeystream(got, tt.input, next)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("XORKeystream() = % X, want % X", got, tt.expected)
			}
		})
	}
}

func TestXORKeystream_InPlaceRoundTrip(t *testing.T) {
	// 同じ鍵列を2回適用すると元に戻ることを確認
	original := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	data := bytes.Clone(original)

	rng := NewParkMiller(42)
	XORKeystream(data, data, func() byte { return byte(rng.Next()) })
	rng = NewParkMiller(42)
	XORKeystream(data, data, func() byte { return byte(rng.Next()) })

	if !bytes.Equal(data, original) {
		t.Errorf("data = % X, want % X", data, original)
	}
}
