package textcleaner

import (
	"slices"
	"strings"
)

// accentTable maps accented Latin letters, ligatures and a few currency symbols to ASCII. It is fixed and not locale
// sensitive.
var accentTable = []string{
	// lowercase
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a", "ā", "a", "ă", "a", "ą", "a",
	"æ", "ae",
	"ç", "c", "ć", "c", "ĉ", "c", "ċ", "c", "č", "c",
	"ď", "d", "đ", "d", "ð", "d",
	"è", "e", "é", "e", "ê", "e", "ë", "e", "ē", "e", "ĕ", "e", "ė", "e", "ę", "e", "ě", "e",
	"ĝ", "g", "ğ", "g", "ġ", "g", "ģ", "g",
	"ĥ", "h", "ħ", "h",
	"ì", "i", "í", "i", "î", "i", "ï", "i", "ĩ", "i", "ī", "i", "ĭ", "i", "į", "i", "ı", "i",
	"ĳ", "ij",
	"ĵ", "j",
	"ķ", "k",
	"ĺ", "l", "ļ", "l", "ľ", "l", "ŀ", "l", "ł", "l",
	"ñ", "n", "ń", "n", "ņ", "n", "ň", "n",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o", "ø", "o", "ō", "o", "ŏ", "o", "ő", "o",
	"œ", "oe",
	"ŕ", "r", "ŗ", "r", "ř", "r",
	"ś", "s", "ŝ", "s", "ş", "s", "š", "s", "ß", "ss",
	"ţ", "t", "ť", "t", "ŧ", "t",
	"þ", "th",
	"ù", "u", "ú", "u", "û", "u", "ü", "u", "ũ", "u", "ū", "u", "ŭ", "u", "ů", "u", "ű", "u", "ų", "u",
	"ŵ", "w",
	"ý", "y", "ÿ", "y", "ŷ", "y",
	"ź", "z", "ż", "z", "ž", "z",

	// uppercase
	"À", "A", "Á", "A", "Â", "A", "Ã", "A", "Ä", "A", "Å", "A", "Ā", "A", "Ă", "A", "Ą", "A",
	"Æ", "AE",
	"Ç", "C", "Ć", "C", "Ĉ", "C", "Ċ", "C", "Č", "C",
	"Ď", "D", "Đ", "D", "Ð", "D",
	"È", "E", "É", "E", "Ê", "E", "Ë", "E", "Ē", "E", "Ĕ", "E", "Ė", "E", "Ę", "E", "Ě", "E",
	"Ĝ", "G", "Ğ", "G", "Ġ", "G", "Ģ", "G",
	"Ĥ", "H", "Ħ", "H",
	"Ì", "I", "Í", "I", "Î", "I", "Ï", "I", "Ĩ", "I", "Ī", "I", "Ĭ", "I", "Į", "I", "İ", "I",
	"Ĳ", "IJ",
	"Ĵ", "J",
	"Ķ", "K",
	"Ĺ", "L", "Ļ", "L", "Ľ", "L", "Ŀ", "L", "Ł", "L",
	"Ñ", "N", "Ń", "N", "Ņ", "N", "Ň", "N",
	"Ò", "O", "Ó", "O", "Ô", "O", "Õ", "O", "Ö", "O", "Ø", "O", "Ō", "O", "Ŏ", "O", "Ő", "O",
	"Œ", "OE",
	"Ŕ", "R", "Ŗ", "R", "Ř", "R",
	"Ś", "S", "Ŝ", "S", "Ş", "S", "Š", "S",
	"Ţ", "T", "Ť", "T", "Ŧ", "T",
	"Þ", "TH",
	"Ù", "U", "Ú", "U", "Û", "U", "Ü", "U", "Ũ", "U", "Ū", "U", "Ŭ", "U", "Ů", "U", "Ű", "U", "Ų", "U",
	"Ŵ", "W",
	"Ý", "Y", "Ÿ", "Y", "Ŷ", "Y",
	"Ź", "Z", "Ż", "Z", "Ž", "Z",

	// currency
	"€", "EUR", "£", "GBP", "¥", "JPY",
}

// combiningTable folds a base letter followed by a combining accent, as found in decomposed text. Only the listed
// sequences are touched; a combining mark elsewhere is left alone.
var combiningTable = slices.Concat(
	combiningPairs("aeiouyAEIOUY", "\u0300\u0301\u0302\u0303\u0308"),
	combiningPairs("nN", "\u0303"),
	combiningPairs("cC", "\u0327"),
)

var accentReplacer = strings.NewReplacer(slices.Concat(accentTable, combiningTable)...)

func combiningPairs(bases, marks string) []string {
	pairs := make([]string, 0, 2*len(bases)*len(marks))
	for _, b := range bases {
		for _, m := range marks {
			pairs = append(pairs, string(b)+string(m), string(b))
		}
	}

	return pairs
}
