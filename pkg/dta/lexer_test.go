package dta

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "括弧とシンボル",
			input: "(name song)",
			want: []Token{
				{TokenOpen, "("},
				{TokenSymbol, "name"},
				{TokenSymbol, "song"},
				{TokenClose, ")"},
			},
		},
		{
			name:  "二重引用符とエスケープ",
			input: `"say \"hi\" \\"`,
			want:  []Token{{TokenQuoted, `say "hi" \`}},
		},
		{
			name:  "単一引用符はシンボル",
			input: "'song id'",
			want:  []Token{{TokenSymbol, "song id"}},
		},
		{
			name:  "空の単一引用符",
			input: "''",
			want:  []Token{{TokenSymbol, ""}},
		},
		{
			name:  "コメントは前後の空白を除く",
			input: ";  Song authored by Jane  \r\n(a)",
			want: []Token{
				{TokenComment, "Song authored by Jane"},
				{TokenOpen, "("},
				{TokenSymbol, "a"},
				{TokenClose, ")"},
			},
		},
		{
			name:  "行末のコメント",
			input: "x ;end",
			want:  []Token{{TokenSymbol, "x"}, {TokenComment, "end"}},
		},
		{
			name:  "語の途中のセミコロンはコメントにならない",
			input: "a;b",
			want:  []Token{{TokenSymbol, "a;b"}},
		},
		{
			name:  "閉じられていない引用符",
			input: `("abc`,
			want:  []Token{{TokenOpen, "("}, {TokenQuoted, "abc"}},
		},
		{
			name:  "引用符でシンボルが区切られる",
			input: `ab"cd"ef`,
			want:  []Token{{TokenSymbol, "ab"}, {TokenQuoted, "cd"}, {TokenSymbol, "ef"}},
		},
		{
			name:  "BOMとタブは空白",
			input: "\uFEFF\t(ü)",
			want:  []Token{{TokenOpen, "("}, {TokenSymbol, "ü"}, {TokenClose, ")"}},
		},
		{
			name:  "空入力",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"+3", 3, true},
		{"1.5", 1.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2E-1", 0.2, true},
		{"0x1F", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{" 12 ", 12, true},
		{"0x", 0, false},
		{"-0x10", 0, false},
		{"1_000", 0, false},
		{"Inf", 0, false},
		{"NaN", 0, false},
		{"kick.cue", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"1e", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseNumber(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("parseNumber(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}

	if got, ok := parseNumber("-Infinity"); !ok || got > 0 {
		t.Errorf("parseNumber(-Infinity) = (%v, %v)", got, ok)
	}
}

func TestParseTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "ノードの種類",
			input: `(a "b" 3 ;c` + "\n)",
			want: []Node{{Kind: NodeList, Children: []Node{
				{Kind: NodeSymbol, Text: "a"},
				{Kind: NodeString, Text: "b"},
				{Kind: NodeNumber, Text: "3", Number: 3},
				{Kind: NodeComment, Text: "c"},
			}}},
		},
		{
			name:  "引用符付きの数字は文字列",
			input: `"12"`,
			want:  []Node{{Kind: NodeString, Text: "12"}},
		},
		{
			name:  "単一引用符の数字は数値",
			input: `'12'`,
			want:  []Node{{Kind: NodeNumber, Text: "12", Number: 12}},
		},
		{
			name:  "余分な閉じ括弧は読み飛ばす",
			input: ") (a) )",
			want:  []Node{{Kind: NodeList, Children: []Node{{Kind: NodeSymbol, Text: "a"}}}},
		},
		{
			name:  "閉じられていないリスト",
			input: "(a (b",
			want: []Node{{Kind: NodeList, Children: []Node{
				{Kind: NodeSymbol, Text: "a"},
				{Kind: NodeList, Children: []Node{{Kind: NodeSymbol, Text: "b"}}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTokens(Tokenize(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTokens() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
