package codetable

import "strings"

// subGenrePrefix は DTA の sub_genre 値に付く接頭辞です。
const subGenrePrefix = "subgenre_"

var genres = map[string]string{
	"alternative":        "Alternative",
	"blues":              "Blues",
	"classical":          "Classical",
	"classicrock":        "Classic Rock",
	"country":            "Country",
	"emo":                "Emo",
	"fusion":             "Fusion",
	"glam":               "Glam",
	"grunge":             "Grunge",
	"hiphoprap":          "Hip-Hop/Rap",
	"indierock":          "Indie Rock",
	"jazz":               "Jazz",
	"jrock":              "J-Rock",
	"latin":              "Latin",
	"metal":              "Metal",
	"new_wave":           "New Wave",
	"novelty":            "Novelty",
	"numetal":            "Nu-Metal",
	"other":              "Other",
	"poprock":            "Pop-Rock",
	"popdanceelectronic": "Pop/Dance/Electronic",
	"prog":               "Prog",
	"punk":               "Punk",
	"rbsoulfunk":         "R&B/Soul/Funk",
	"reggaeska":          "Reggae/Ska",
	"inspirational":      "Inspirational",
	"rock":               "Rock",
	"southernrock":       "Southern Rock",
	"urban":              "Urban",
	"world":              "World",
}

var subGenres = map[string]string{
	"alternative":      "Alternative",
	"college":          "College",
	"other":            "Other",
	"acoustic":         "Acoustic",
	"chicago":          "Chicago",
	"classic":          "Classic",
	"contemporary":     "Contemporary",
	"country":          "Country",
	"delta":            "Delta",
	"electric":         "Electric",
	"classicrock":      "Classic Rock",
	"bluegrass":        "Bluegrass",
	"honkytonk":        "Honky Tonk",
	"outlaw":           "Outlaw",
	"traditionalfolk":  "Traditional Folk",
	"emo":              "Emo",
	"fusion":           "Fusion",
	"glam":             "Glam",
	"goth":             "Goth",
	"acidjazz":         "Acid Jazz",
	"experimental":     "Experimental",
	"ragtime":          "Ragtime",
	"smooth":           "Smooth",
	"metal":            "Metal",
	"black":            "Black",
	"core":             "Core",
	"death":            "Death",
	"hair":             "Hair",
	"industrial":       "Industrial",
	"power":            "Power",
	"prog":             "Prog",
	"speed":            "Speed",
	"thrash":           "Thrash",
	"novelty":          "Novelty",
	"numetal":          "Nu-Metal",
	"disco":            "Disco",
	"motown":           "Motown",
	"pop":              "Pop",
	"rhythmandblues":   "Rhythm and Blues",
	"softrock":         "Soft Rock",
	"soul":             "Soul",
	"teen":             "Teen",
	"progrock":         "Prog Rock",
	"garage":           "Garage",
	"hardcore":         "Hardcore",
	"dancepunk":        "Dance Punk",
	"arena":            "Arena",
	"blues":            "Blues",
	"funk":             "Funk",
	"hardrock":         "Hard Rock",
	"psychadelic":      "Psychedelic",
	"rock":             "Rock",
	"rockandroll":      "Rock and Roll",
	"rockabilly":       "Rockabilly",
	"ska":              "Ska",
	"surf":             "Surf",
	"folkrock":         "Folk Rock",
	"reggae":           "Reggae",
	"southernrock":     "Southern Rock",
	"alternativerap":   "Alternative Rap",
	"dub":              "Dub",
	"downtempo":        "Downtempo",
	"electronica":      "Electronica",
	"gangsta":          "Gangsta",
	"hardcoredance":    "Hardcore Dance",
	"hardcorerap":      "Hardcore Rap",
	"hiphop":           "Hip Hop",
	"drumandbass":      "Drum and Bass",
	"oldschoolhiphop":  "Old School Hip Hop",
	"rap":              "Rap",
	"triphop":          "Trip Hop",
	"undergroundrap":   "Underground Rap",
	"acapella":         "A capella",
	"classical":        "Classical",
	"contemporaryfolk": "Contemporary Folk",
	"oldies":           "Oldies",
	"house":            "House",
	"techno":           "Techno",
	"breakbeat":        "Breakbeat",
	"ambient":          "Ambient",
	"trance":           "Trance",
	"chiptune":         "Chiptune",
	"dance":            "Dance",
	"new_wave":         "New Wave",
	"electroclash":     "Electroclash",
	"darkwave":         "Dark Wave",
	"synth":            "Synthpop",
	"indierock":        "Indie Rock",
	"mathrock":         "Math Rock",
	"lofi":             "Lo-fi",
	"shoegazing":       "Shoegazing",
	"postrock":         "Post Rock",
	"noise":            "Noise",
	"grunge":           "Grunge",
	"jrock":            "J-Rock",
	"latin":            "Latin",
	"inspirational":    "Inspirational",
	"world":            "World",
}

// Genre はジャンルの短縮名を表示名に変換します。
// 表にない名前は新しいコードの可能性があるためそのまま返します。
func Genre(code string) string {
	if label, ok := genres[code]; ok {
		return label
	}
	return code
}

// SubGenre はサブジャンルの短縮名を表示名に変換します。
// DTA では "subgenre_" 接頭辞付きで格納されるため、接頭辞は取り除いてから引きます。
func SubGenre(code string) string {
	if label, ok := subGenres[strings.TrimPrefix(code, subGenrePrefix)]; ok {
		return label
	}
	return code
}
