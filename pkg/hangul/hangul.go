// Package hangul extracts the initial consonant (초성) of Hangul strings so the
// kiosk can offer ㄱ/ㄴ/ㄷ-style filter rows over customers and rice cakes.
package hangul

// The 19 initial consonants in Unicode jamo order.
var initials = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

const (
	syllableFirst = rune(0xAC00) // 가
	syllableLast  = rune(0xD7A3) // 힣
	initialSpan   = 588          // syllables per initial consonant block
)

// Initial returns the 초성 of the first rune of s. The second return value is
// false when s is empty or does not start with Hangul.
func Initial(s string) (rune, bool) {
	for _, r := range s {
		if r >= syllableFirst && r <= syllableLast {
			return initials[(r-syllableFirst)/initialSpan], true
		}
		// A bare consonant (ㄱ, ㄴ, ...) is its own initial.
		for _, c := range initials {
			if c == r {
				return r, true
			}
		}
		return 0, false
	}
	return 0, false
}

// MatchesInitial reports whether s starts with the given 초성.
func MatchesInitial(s string, initial rune) bool {
	got, ok := Initial(s)
	return ok && got == initial
}

// IsInitial reports whether r is one of the 19 initial consonants.
func IsInitial(r rune) bool {
	for _, c := range initials {
		if c == r {
			return true
		}
	}
	return false
}
