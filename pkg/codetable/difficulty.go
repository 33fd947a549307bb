// Package codetable は Rock Band の楽曲データに含まれる数値コードや
// 短縮名を表示用のラベルへ変換する表を提供します。
//
// どの関数も入力範囲外の値に対してエラーを返さず、
// 「未設定」や「不明」を表すラベルに置き換えます。
package codetable

// Instrument はパートの種別です。
type Instrument int

const (
	InstrumentUnknown Instrument = iota
	Guitar
	Bass
	Drums
	Vocals
	Keys
	ProKeys
	ProGuitar
	ProBass
	Band
)

// DifficultyNotSet はパートが存在しない場合のラベルです。
const DifficultyNotSet = "No Part"

// Unknown はコードが表に存在しない場合のラベルです。
const Unknown = "Unknown"

// difficultyLabels は難易度帯のラベルです。thresholds[i] 以上で difficultyLabels[i+1] になります。
var difficultyLabels = [7]string{
	"Warmup",
	"Apprentice",
	"Solid",
	"Moderate",
	"Challenging",
	"Nightmare",
	"Impossible",
}

var thresholds = map[Instrument][6]int{
	Guitar:    {139, 176, 221, 267, 333, 409},
	Bass:      {135, 181, 228, 293, 364, 436},
	Drums:     {124, 151, 178, 242, 245, 448},
	Vocals:    {132, 175, 218, 279, 353, 427},
	Keys:      {153, 211, 269, 327, 385, 443},
	ProKeys:   {153, 211, 269, 327, 385, 443},
	ProGuitar: {150, 208, 267, 325, 384, 442},
	ProBass:   {150, 208, 267, 325, 384, 442},
	Band:      {165, 215, 243, 267, 292, 345},
}

// instrumentNames はキャッシュと DTA の rank ブロックで使われるパート名です。
var instrumentNames = map[string]Instrument{
	"guitar":      Guitar,
	"bass":        Bass,
	"drum":        Drums,
	"vocals":      Vocals,
	"keys":        Keys,
	"real_keys":   ProKeys,
	"real_guitar": ProGuitar,
	"real_bass":   ProBass,
	"band":        Band,
}

// Instruments はパートを表示順に並べたものです。
var Instruments = []Instrument{Guitar, Bass, Drums, Vocals, Keys, ProKeys, ProGuitar, ProBass, Band}

// InstrumentFromName はパート名から Instrument を返します。
// 名前は大文字小文字を区別します。未知の名前の場合は InstrumentUnknown と false を返します。
func InstrumentFromName(name string) (Instrument, bool) {
	inst, ok := instrumentNames[name]
	if !ok {
		return InstrumentUnknown, false
	}
	return inst, true
}

// String はパートの表示名を返します。
func (i Instrument) String() string {
	switch i {
	case Guitar:
		return "Guitar"
	case Bass:
		return "Bass"
	case Drums:
		return "Drums"
	case Vocals:
		return "Vocals"
	case Keys:
		return "Keys"
	case ProKeys:
		return "Pro Keys"
	case ProGuitar:
		return "Pro Guitar"
	case ProBass:
		return "Pro Bass"
	case Band:
		return "Band"
	default:
		return Unknown
	}
}

// Difficulty は生の難易度値をパートごとのしきい値で難易度帯ラベルに変換します。
// 各帯の下限は含みます。0以下はパートなしとして DifficultyNotSet を返します。
func Difficulty(inst Instrument, raw int) string {
	limits, ok := thresholds[inst]
	if !ok || raw <= 0 {
		return DifficultyNotSet
	}
	band := 0
	for _, limit := range limits {
		if raw < limit {
			break
		}
		band++
	}
	return difficultyLabels[band]
}
