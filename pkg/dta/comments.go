package dta

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	doNotEditHeader = regexp.MustCompile(`(?i)^DO NOT EDIT`)
	nonKeyChars     = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	leadingCaps     = regexp.MustCompile(`^[A-Z]+`)
)

// parseComments はコメント行をメタ情報に変換します。
// 各行は "=", 最後の " by ", 最初の ":" の優先順で区切ります。
// どの区切りも含まない行は無視し、キーが1つもできなければ nil を返します。
func parseComments(lines []string) map[string]Value {
	var meta map[string]Value
	for _, line := range lines {
		if doNotEditHeader.MatchString(line) {
			continue
		}

		var key, raw string
		if i := strings.Index(line, "="); i >= 0 {
			key, raw = line[:i], line[i+1:]
		} else if i := strings.LastIndex(line, " by "); i >= 0 {
			// "Song authored by X" は songAuthored = X になる
			key, raw = line[:i], line[i+len(" by "):]
		} else if i := strings.Index(line, ":"); i >= 0 {
			key, raw = line[:i], line[i+1:]
		} else {
			continue
		}

		key = toCamelCase(key)
		if key == "" {
			continue
		}
		if meta == nil {
			meta = make(map[string]Value)
		}
		meta[key] = parseMetaValue(raw)
	}
	return meta
}

// toCamelCase はコメントのキーをキャメルケースに変換します。
// 英数字と空白以外は取り除きます。先頭の単語が2文字以上の大文字で始まる場合、
// 単語全体が大文字なら全て小文字にし、そうでなければ次の語の頭文字になる最後の大文字を残します。
// 例: "DIYStems" → "diyStems", "Language(s)" → "languages"
func toCamelCase(s string) string {
	cleaned := strings.TrimSpace(nonKeyChars.ReplaceAllString(s, ""))
	if cleaned == "" {
		return ""
	}

	var sb strings.Builder
	for i, w := range strings.Fields(cleaned) {
		if i > 0 {
			sb.WriteString(upperFirst(w))
			continue
		}
		caps := leadingCaps.FindString(w)
		switch {
		case len(caps) > 1 && len(caps) == len(w):
			sb.WriteString(strings.ToLower(w))
		case len(caps) > 1:
			sb.WriteString(strings.ToLower(caps[:len(caps)-1]))
			sb.WriteString(w[len(caps)-1:])
		default:
			sb.WriteString(lowerFirst(w))
		}
	}
	return sb.String()
}

// upperFirst と lowerFirst は ASCII のみを扱います。キーは英数字に限定済みです。
func upperFirst(w string) string {
	if w == "" {
		return w
	}
	return string(unicode.ToUpper(rune(w[0]))) + w[1:]
}

func lowerFirst(w string) string {
	if w == "" {
		return w
	}
	return string(unicode.ToLower(rune(w[0]))) + w[1:]
}

// parseMetaValue は値部分を数値、真偽値、文字列のいずれかに変換します。
// 末尾のカンマは取り除き、空の場合はフラグとして true になります。
func parseMetaValue(raw string) Value {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), ",")
	if trimmed == "" {
		return true
	}
	if f, ok := parseNumber(trimmed); ok {
		return f
	}
	return trimmed
}
