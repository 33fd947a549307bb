package dta

import "testing"

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"UTF-8", []byte("(s (name \"Beyoncé\"))"), "(s (name \"Beyoncé\"))"},
		{"BOM付きUTF-8", append([]byte{0xEF, 0xBB, 0xBF}, "(s)"...), "(s)"},
		{"Windows-1252", []byte{'M', 0xF6, 't', 'l', 'e', 'y', ' ', 0x93, 'x', 0x94}, "Mötley “x”"},
		{"空", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.input)
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeText_ParsesLatin1Catalog(t *testing.T) {
	text, err := DecodeText([]byte("(blue (artist \"Bj\xF6rk\"))"))
	if err != nil {
		t.Fatal(err)
	}
	e := Parse(text)[0]
	if got, _ := e.Text("artist"); got != "Björk" {
		t.Errorf("artist = %q, want Björk", got)
	}
}
