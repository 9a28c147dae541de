package fonts

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Replacement is written for characters that cannot be transliterated into
// the supported range.
const Replacement = '?'

// stripMarks returns a fresh transformer; chained transformers keep state.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Transliterate rewrites the runes of text that lie outside supported into
// a close Latin approximation. Supported runes are kept as they are.
//
// Each unsupported rune is looked up in a table of letters and typographic
// symbols first; otherwise its canonical decomposition is tried with the
// combining marks removed, and the base letter looked up again. Whatever is
// left unsupported is replaced by Replacement.
func Transliterate(text string, supported Range) string {
	if !supported.Unsupported(text) {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if supported.Supports(r) {
			sb.WriteRune(r)
			continue
		}
		if s, ok := transliterateRune(r, supported); ok {
			sb.WriteString(s)
			continue
		}
		sb.WriteRune(Replacement)
	}
	return sb.String()
}

func transliterateRune(r rune, supported Range) (string, bool) {
	if latin, ok := latinTable[r]; ok && allSupported(latin, supported) {
		return latin, true
	}
	base, _, err := transform.String(stripMarks(), string(r))
	if err != nil || base == "" || base == string(r) {
		return "", false
	}
	if allSupported(base, supported) {
		return base, true
	}
	var sb strings.Builder
	for _, b := range base {
		latin, ok := latinTable[b]
		if !ok || !allSupported(latin, supported) {
			return "", false
		}
		sb.WriteString(latin)
	}
	return sb.String(), true
}

func allSupported(s string, supported Range) bool {
	return !supported.Unsupported(s)
}

var latinTable = map[rune]string{
	// Latin letters without a canonical decomposition
	'ß': "ss", 'ẞ': "SS", 'Æ': "AE", 'æ': "ae", 'Œ': "OE", 'œ': "oe",
	'Ø': "O", 'ø': "o", 'Ł': "L", 'ł': "l", 'Đ': "D", 'đ': "d",
	'Ð': "D", 'ð': "d", 'Þ': "Th", 'þ': "th", 'ı': "i", 'Ħ': "H", 'ħ': "h",
	'ĸ': "k", 'Ŀ': "L", 'ŀ': "l", 'Ŋ': "N", 'ŋ': "n", 'Ŧ': "T", 'ŧ': "t",
	'ſ': "s", 'Ƒ': "F", 'ƒ': "f",

	// punctuation and symbols
	'\u00A0': " ", '\u2002': " ", '\u2003': " ", '\u2009': " ", '\u202F': " ",
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "-", '―': "-", '−': "-",
	'‘': "'", '’': "'", '‚': ",", '‛': "'", '“': "\"", '”': "\"", '„': "\"",
	'‹': "<", '›': ">", '«': "<<", '»': ">>", '…': "...", '•': "*", '·': ".",
	'€': "EUR", '£': "GBP", '¥': "JPY", '₹': "INR", '₽': "RUB", '₺': "TRY",
	'₩': "KRW", '₪': "ILS", '₫': "VND", '₴': "UAH", '₱': "PHP", '฿': "THB",
	'©': "(c)", '®': "(R)", '™': "TM", '°': "deg", '×': "x", '÷': "/",
	'½': "1/2", '¼': "1/4", '¾': "3/4", '‰': "%o", '№': "No",

	// Greek
	'Α': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Ζ': "Z", 'Η': "I",
	'Θ': "Th", 'Ι': "I", 'Κ': "K", 'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "X",
	'Ο': "O", 'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "Y", 'Φ': "F",
	'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O",
	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z", 'η': "i",
	'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x",
	'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t", 'υ': "y",
	'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",

	// Cyrillic
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch",
	'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'Є': "Ye", 'є': "ye", 'І': "I", 'і': "i", 'Ї': "Yi", 'ї': "yi",
	'Ґ': "G", 'ґ': "g", 'Ў': "U", 'ў': "u",
}
