package norm

// Hangul syllable decomposition/composition, done arithmetically rather
// than via the trie or composition table. The constants and the L/V/T
// split follow the standard Hangul Syllable algorithm (Unicode §3.12).
const (
	hangulLBase rune = 0x1100
	hangulVBase rune = 0x1161
	hangulTBase rune = 0x11A7
	hangulSBase rune = 0xAC00

	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

// isHangulSyllable reports whether c is a precomposed Hangul syllable
// (LV or LVT) in [U+AC00, U+D7A3].
func isHangulSyllable(c rune) bool {
	return c >= hangulSBase && c < hangulSBase+hangulSCount
}

// decomposeHangul splits a precomposed syllable into its L, V, and
// optional T jamo.
func decomposeHangul(c rune) (l, v rune, t rune, hasT bool) {
	sIndex := c - hangulSBase
	l = hangulLBase + sIndex/hangulNCount
	v = hangulVBase + (sIndex%hangulNCount)/hangulTCount
	tIndex := sIndex % hangulTCount
	if tIndex == 0 {
		return l, v, 0, false
	}
	return l, v, hangulTBase + tIndex, true
}

// isHangulV reports whether c is a composable Vowel Jamo that can
// follow a Leading Jamo to form an LV syllable.
func isHangulV(c rune) bool {
	return c >= hangulVBase && c < hangulVBase+hangulVCount
}

// isHangulT reports whether c is a composable Trailing Jamo that can
// follow an LV syllable to form an LVT syllable. U+11A7 itself (the
// "no trailing jamo" base) is excluded: only [U+11A8, U+11C2] counts.
func isHangulT(c rune) bool {
	return c > hangulTBase && c < hangulTBase+hangulTCount
}

// composeHangulLV forms the LV syllable for a Leading+Vowel jamo pair.
// Caller must have verified l is a Leading Jamo in range.
func composeHangulLV(l, v rune) rune {
	lIndex := l - hangulLBase
	vIndex := v - hangulVBase
	return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount
}

// composeHangulLVT appends a trailing jamo to an LV syllable.
func composeHangulLVT(lv, t rune) rune {
	return lv + (t - hangulTBase)
}
