// README: Location name normalization for fixed-route matching.
package pricing

import (
	"strings"
	"unicode"
)

// turkishFold maps Turkish diacritics (both cases) to their closest ASCII
// letter so that "Kadıköy" and "kadikoy" compare equal after normalization.
var turkishFold = map[rune]rune{
	'ı': 'i', 'I': 'i', 'İ': 'i',
	'ğ': 'g', 'Ğ': 'g',
	'ş': 's', 'Ş': 's',
	'ç': 'c', 'Ç': 'c',
	'ü': 'u', 'Ü': 'u',
	'ö': 'o', 'Ö': 'o',
}

// combiningDotAbove shows up when a dotted capital İ gets lowercased before
// reaching us; dropping it keeps both sides of a comparison on the plain "i".
const combiningDotAbove = '̇'

// NormalizeLocation lowercases a place name and folds Turkish diacritics to
// ASCII. It never fails; an empty input stays empty. Whitespace is left
// untouched so that containment checks see the name as entered.
func NormalizeLocation(name string) string {
	return strings.Map(func(r rune) rune {
		if folded, ok := turkishFold[r]; ok {
			return folded
		}
		if r == combiningDotAbove {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}
