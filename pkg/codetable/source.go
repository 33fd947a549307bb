package codetable

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ugcPlusCustomFloor より大きい曲 ID の ugc_plus はコミュニティ製の楽曲です。
const ugcPlusCustomFloor = 9999999

// SourceInput は収録元の判定に使うフィールドです。
type SourceInput struct {
	SongID    int64
	Source    string
	ShortName string
	Artist    string
}

// Source は収録元コードを表示名に変換します。
// 一部のコードは曲 ID や短縮名、アーティスト名を見て判定を分けます。
// コードが空の場合は空文字列を返します。
func Source(in SourceInput) string {
	if in.Source == "" {
		return ""
	}
	lower := cases.Lower(language.Und)
	shortName := lower.String(in.ShortName)

	switch lower.String(in.Source) {
	case "rb1":
		if isNetworkShortName(in.ShortName, shortName) {
			return "RBN1"
		}
		return "RB1"
	case "acdc":
		return "AC/DC"
	case "rb2":
		if isNetworkShortName(in.ShortName, shortName) {
			return "RBN1"
		}
		return "RB2"
	case "rb3":
		return "RB3"
	case "rb4":
		return "RB4"
	case "rb1_dlc":
		if strings.Contains(shortName, "_live") && in.Artist == "AC/DC" {
			return "AC/DC"
		}
		return "DLC"
	case "rb2_dlc", "rb3_dlc", "rb4_dlc":
		return "DLC"
	case "greenday", "gdrb":
		return "GD:RB"
	case "blitz":
		return "Blitz"
	case "lego":
		return "Lego"
	case "ugc", "rbn1":
		return "RBN1"
	case "custom":
		return "Custom"
	case "beatles", "tbrb":
		return "TB:RB"
	case "rbn2":
		return "RBN2"
	case "ugc_plus":
		if in.SongID > ugcPlusCustomFloor {
			if strings.Contains(shortName, "tbrb_") {
				return "TB:RB"
			}
			return "Custom"
		}
		return "RBN2"
	default:
		return "DLC"
	}
}

// isNetworkShortName は rb1/rb2 として登録された Rock Band Network 楽曲かを判定します。
// "##" を含む短縮名はディスク収録曲の別名なので除外します。
func isNetworkShortName(raw, lowered string) bool {
	return strings.Contains(lowered, "ugc") && !strings.Contains(raw, "##")
}
