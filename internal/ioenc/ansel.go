package ioenc

import "strings"

// ANSEL stores a diacritical mark in the byte BEFORE its base letter,
// the reverse of the Unicode combining-mark order. DecodeANSEL
// therefore emits the base character first and the combining mark
// after it, or substitutes a precomposed character when one is known;
// precomposed forms render more reliably, so they are preferred.

// anselMarkLo and anselMarkHi delimit the combining-mark byte range.
const (
	anselMarkLo = 0xE0
	anselMarkHi = 0xFE
)

// anselCombining maps an ANSEL mark byte to its Unicode combining
// codepoint.
var anselCombining = map[byte]rune{
	0xE0: '̉', // hook above
	0xE1: '̀', // grave
	0xE2: '́', // acute
	0xE3: '̂', // circumflex
	0xE4: '̃', // tilde
	0xE5: '̄', // macron
	0xE6: '̆', // breve
	0xE7: '̇', // dot above
	0xE8: '̈', // diaeresis
	0xE9: '̌', // caron
	0xEA: '̊', // ring above
	0xEB: '︠', // ligature, left half
	0xEC: '︡', // ligature, right half
	0xED: '̕', // comma above right
	0xEE: '̋', // double acute
	0xEF: '̐', // candrabindu
	0xF0: '̧', // cedilla
	0xF1: '̨', // ogonek
	0xF2: '̣', // dot below
	0xF3: '̤', // diaeresis below
	0xF4: '̥', // ring below
	0xF5: '̳', // double low line
	0xF6: '̲', // low line
	0xF7: '̦', // comma below
	0xF8: '̜', // left half ring below
	0xF9: '̮', // breve below
	0xFA: '︢', // double tilde, left half
	0xFB: '︣', // double tilde, right half
	0xFE: '̓', // comma above
}

// anselPrecomposed maps (mark byte, base ASCII letter) to a
// precomposed Latin character for the common accented letters.
var anselPrecomposed = map[[2]byte]rune{
	// grave
	{0xE1, 'A'}: 'À', {0xE1, 'E'}: 'È', {0xE1, 'I'}: 'Ì',
	{0xE1, 'O'}: 'Ò', {0xE1, 'U'}: 'Ù',
	{0xE1, 'a'}: 'à', {0xE1, 'e'}: 'è', {0xE1, 'i'}: 'ì',
	{0xE1, 'o'}: 'ò', {0xE1, 'u'}: 'ù',
	// acute
	{0xE2, 'A'}: 'Á', {0xE2, 'E'}: 'É', {0xE2, 'I'}: 'Í',
	{0xE2, 'O'}: 'Ó', {0xE2, 'U'}: 'Ú', {0xE2, 'Y'}: 'Ý',
	{0xE2, 'C'}: 'Ć', {0xE2, 'N'}: 'Ń', {0xE2, 'S'}: 'Ś',
	{0xE2, 'Z'}: 'Ź',
	{0xE2, 'a'}: 'á', {0xE2, 'e'}: 'é', {0xE2, 'i'}: 'í',
	{0xE2, 'o'}: 'ó', {0xE2, 'u'}: 'ú', {0xE2, 'y'}: 'ý',
	{0xE2, 'c'}: 'ć', {0xE2, 'n'}: 'ń', {0xE2, 's'}: 'ś',
	{0xE2, 'z'}: 'ź',
	// circumflex
	{0xE3, 'A'}: 'Â', {0xE3, 'E'}: 'Ê', {0xE3, 'I'}: 'Î',
	{0xE3, 'O'}: 'Ô', {0xE3, 'U'}: 'Û',
	{0xE3, 'a'}: 'â', {0xE3, 'e'}: 'ê', {0xE3, 'i'}: 'î',
	{0xE3, 'o'}: 'ô', {0xE3, 'u'}: 'û',
	// tilde
	{0xE4, 'A'}: 'Ã', {0xE4, 'N'}: 'Ñ', {0xE4, 'O'}: 'Õ',
	{0xE4, 'a'}: 'ã', {0xE4, 'n'}: 'ñ', {0xE4, 'o'}: 'õ',
	// macron
	{0xE5, 'A'}: 'Ā', {0xE5, 'E'}: 'Ē', {0xE5, 'O'}: 'Ō',
	{0xE5, 'a'}: 'ā', {0xE5, 'e'}: 'ē', {0xE5, 'o'}: 'ō',
	// breve
	{0xE6, 'A'}: 'Ă', {0xE6, 'G'}: 'Ğ',
	{0xE6, 'a'}: 'ă', {0xE6, 'g'}: 'ğ',
	// dot above
	{0xE7, 'Z'}: 'Ż', {0xE7, 'z'}: 'ż',
	// diaeresis
	{0xE8, 'A'}: 'Ä', {0xE8, 'E'}: 'Ë', {0xE8, 'I'}: 'Ï',
	{0xE8, 'O'}: 'Ö', {0xE8, 'U'}: 'Ü',
	{0xE8, 'a'}: 'ä', {0xE8, 'e'}: 'ë', {0xE8, 'i'}: 'ï',
	{0xE8, 'o'}: 'ö', {0xE8, 'u'}: 'ü', {0xE8, 'y'}: 'ÿ',
	// caron
	{0xE9, 'C'}: 'Č', {0xE9, 'S'}: 'Š', {0xE9, 'Z'}: 'Ž',
	{0xE9, 'c'}: 'č', {0xE9, 's'}: 'š', {0xE9, 'z'}: 'ž',
	// ring above
	{0xEA, 'A'}: 'Å', {0xEA, 'a'}: 'å', {0xEA, 'u'}: 'ů',
	// cedilla
	{0xF0, 'C'}: 'Ç', {0xF0, 'c'}: 'ç',
	{0xF0, 'S'}: 'Ş', {0xF0, 's'}: 'ş',
	// ogonek
	{0xF1, 'A'}: 'Ą', {0xF1, 'E'}: 'Ę',
	{0xF1, 'a'}: 'ą', {0xF1, 'e'}: 'ę',
}

// DecodeANSEL decodes an ANSEL byte buffer into Unicode text.
//
// Bytes below 0x80 outside the combining range pass through as ASCII;
// bytes at or above 0xA0 pass through unchanged as extended
// characters. A combining-mark byte followed by a base byte becomes
// either a precomposed character or base-then-combining-mark. A
// combining-mark byte at end of input emits the bare combining mark.
func DecodeANSEL(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))

	for i := 0; i < len(data); i++ {
		b := data[i]

		if b >= anselMarkLo && b <= anselMarkHi {
			comb, known := anselCombining[b]
			if i+1 >= len(data) {
				if known {
					sb.WriteRune(comb)
				}
				break
			}
			base := data[i+1]
			i++

			if pre, ok := anselPrecomposed[[2]byte{b, base}]; ok {
				sb.WriteRune(pre)
				continue
			}
			sb.WriteRune(rune(base))
			if known {
				sb.WriteRune(comb)
			}
			continue
		}

		if b < 0x80 {
			sb.WriteByte(b)
			continue
		}

		sb.WriteRune(rune(b))
	}

	return sb.String()
}

// IsANSEL reports whether any byte within the first limit bytes falls
// in the ANSEL combining-mark range. It is a safety check before
// DecodeANSEL is trusted: files mislabeled as ANSEL but containing no
// combining marks decode better as Latin-1.
func IsANSEL(data []byte, limit int) bool {
	if limit <= 0 || limit > len(data) {
		limit = len(data)
	}
	for _, b := range data[:limit] {
		if b >= anselMarkLo && b <= anselMarkHi {
			return true
		}
	}
	return false
}
