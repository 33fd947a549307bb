package codetable

// Rating はコンテンツレーティングのコードをラベルに変換します。
func Rating(code int) string {
	switch code {
	case 1:
		return "Family friendly"
	case 2:
		return "Supervision recommended"
	case 3:
		return "Mature"
	default:
		return "Not rated"
	}
}

var tonicNotes = [12]string{
	"C",
	"C# / Db",
	"D",
	"D# / Eb",
	"E",
	"F",
	"F# / Gb",
	"G",
	"G# / Ab",
	"A",
	"A# / Bb",
	"B",
}

// TonicNote はボーカルの主音コードを音名に変換します。
// 負の値は未定義として ok=false を返します。
func TonicNote(code int) (label string, ok bool) {
	if code < 0 {
		return "", false
	}
	if code >= len(tonicNotes) {
		return Unknown, true
	}
	return tonicNotes[code], true
}

// Tonality は調性コードを Major / Minor に変換します。
// 負の値は未定義として ok=false を返します。
func Tonality(code int) (label string, ok bool) {
	switch {
	case code < 0:
		return "", false
	case code == 0:
		return "Major", true
	case code == 1:
		return "Minor", true
	default:
		return Unknown, true
	}
}

var playDifficulties = [4]string{"Easy", "Medium", "Hard", "Expert"}

// PlayDifficulty はセーブデータの最高スコア難易度コードをラベルに変換します。
// 負の値は Easy として扱い、4以上は空文字列を返します。
func PlayDifficulty(code int) string {
	code = max(code, 0)
	if code >= len(playDifficulties) {
		return ""
	}
	return playDifficulties[code]
}
