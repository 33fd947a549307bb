// Package dta は Harmonix の DTA (Data Array) 形式を解析します。
//
// DTA は括弧で囲んだリストを入れ子にした S 式で、Rock Band の楽曲カタログ
// (songs.dta) などに使われます。スキーマを持たないため、リストをレコードと
// 配列のどちらとして扱うかは要素の構成から推測します。
//
//	(key
//	   (name "Song")
//	   (rank (drum 100) (guitar 200))
//	)
//
// 行コメント (;) は捨てずに保持し、エントリのメタ情報として解析します。
package dta

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind はトークンの種類です。
type TokenKind int

const (
	TokenOpen TokenKind = iota
	TokenClose
	TokenQuoted
	TokenSymbol
	TokenComment
)

// Token は字句解析の結果です。
// Quoted は引用符を除いた内容、Comment は前後の空白を除いた本文を Text に持ちます。
type Token struct {
	Kind TokenKind
	Text string
}

// isSpace は空白文字かどうかを判定します。BOM も空白として扱います。
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// isWordBoundary はシンボルの終端になる文字かどうかを判定します。
func isWordBoundary(r rune) bool {
	return isSpace(r) || r == '(' || r == ')' || r == '\'' || r == '"'
}

// Tokenize は DTA テキストをトークン列に分割します。
// 閉じられていない引用符は入力の末尾までを内容とします。
func Tokenize(input string) []Token {
	var tokens []Token
	i := 0
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])

		switch {
		case isSpace(r):
			i += size

		case r == ';':
			end := strings.IndexByte(input[i+1:], '\n')
			if end < 0 {
				end = len(input)
			} else {
				end += i + 1
			}
			tokens = append(tokens, Token{Kind: TokenComment, Text: strings.TrimSpace(input[i+1 : end])})
			i = end

		case r == '(':
			tokens = append(tokens, Token{Kind: TokenOpen, Text: "("})
			i++

		case r == ')':
			tokens = append(tokens, Token{Kind: TokenClose, Text: ")"})
			i++

		case r == '"':
			var sb strings.Builder
			i++
			for i < len(input) && input[i] != '"' {
				// バックスラッシュは次の1文字をそのまま取り込む
				if input[i] == '\\' && i+1 < len(input) {
					_, n := utf8.DecodeRuneInString(input[i+1:])
					sb.WriteString(input[i+1 : i+1+n])
					i += 1 + n
					continue
				}
				sb.WriteByte(input[i])
				i++
			}
			i++
			tokens = append(tokens, Token{Kind: TokenQuoted, Text: sb.String()})

		case r == '\'':
			// 単一引用符で囲まれたシンボルは引用符を外して通常のシンボルとして扱う
			i++
			end := strings.IndexByte(input[i:], '\'')
			if end < 0 {
				end = len(input) - i
			}
			tokens = append(tokens, Token{Kind: TokenSymbol, Text: input[i : i+end]})
			i += end + 1

		default:
			start := i
			for i < len(input) {
				r, size := utf8.DecodeRuneInString(input[i:])
				if isWordBoundary(r) {
					break
				}
				i += size
			}
			tokens = append(tokens, Token{Kind: TokenSymbol, Text: input[start:i]})
		}
	}
	return tokens
}
