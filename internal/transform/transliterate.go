package transform

import "strings"

// turkishToASCII maps each accented Turkish letter to its ASCII substitute,
// case-preserving. The mapping is total on this closed set; every other
// rune passes through Asciify unchanged.
var turkishToASCII = map[rune]rune{
	'ç': 'c',
	'Ç': 'C',
	'ğ': 'g',
	'Ğ': 'G',
	'ö': 'o',
	'Ö': 'O',
	'ü': 'u',
	'Ü': 'U',
	'ı': 'i',
	'İ': 'I',
	'ş': 's',
	'Ş': 'S',
}

// Asciify replaces Turkish accented letters with their ASCII equivalents.
func Asciify(name string) string {
	return strings.Map(func(r rune) rune {
		if sub, ok := turkishToASCII[r]; ok {
			return sub
		}
		return r
	}, name)
}
