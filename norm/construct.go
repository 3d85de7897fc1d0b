package norm

// The constructors below are the public surface a data-table builder
// (a data provider, or the cmd/gentables generator) uses to assemble
// TrieValue entries without reaching into the packed-bit internals
// in trie.go. Every decomposition shape has one.

// SelfDecomposingValue is the zero trie value: the scalar decomposes to
// itself and carries none of the other flags. It is also Trie32's
// default, so most code points never need an explicit entry.
func SelfDecomposingValue() TrieValue { return 0 }

// NonStarterValue builds shape 2: a combining character with the given
// canonical combining class (must be in [1,255]). backwardCombining
// marks a scalar that can fuse with a preceding starter during
// composition (the BACKWARD_COMBINING bit).
func NonStarterValue(ccc uint8, backwardCombining bool) TrieValue {
	v := nonStarterMarkerBase | TrieValue(ccc)
	if backwardCombining {
		v |= backwardCombiningMarker
	}
	return v
}

// TwoBMPValue builds shape 3: decomposition to two BMP scalars, starter
// then tail, each required to fit in 15 bits.
func TwoBMPValue(starter, tail rune) TrieValue {
	return TrieValue(starter&0x7FFF) | TrieValue(tail&0x7FFF)<<15
}

// SingletonValue builds shape 4 for a plain single-BMP-scalar
// decomposition (not the Hangul or FDFA special cases, which share this
// shape but are recognized by code point / sentinel instead).
func SingletonValue(target rune) TrieValue {
	return TrieValue(target & 0xFFFF)
}

// HangulOrFDFAValue returns the shared shape-4 sentinel (low 16 bits
// equal to 1) used for both Hangul syllables (recognized by the caller
// checking the code point is in the syllable block before ever
// consulting this value) and the U+FDFA 18-character NFKD expansion
// (recognized by TrieValue.isFDFA).
func HangulOrFDFAValue() TrieValue { return fdfaMarker }

// ComplexValue builds shape 5: an (offset, length) pair into the
// decomposition table's secondary scalar tables. onlyNonStarters lets a
// table builder record that every tail scalar is already known to be a
// non-starter, sparing the decomposition engine a trie lookup per tail
// character.
func ComplexValue(offset, length int, onlyNonStarters bool) TrieValue {
	v := TrieValue(offset)<<complexOffsetShift&complexOffsetMask | TrieValue(length)<<complexLengthShift&complexLengthMask
	if onlyNonStarters {
		v |= complexOnlyNonStartersInTail
	}
	return v
}

// NonRoundTripValue marks a scalar as NFC(NFD(c)) != c, the flag
// required on U+FFFD so it never qualifies for fast-path passthrough.
func NonRoundTripValue() TrieValue { return nonRoundTripMarker }

// WithBackwardCombining sets the BACKWARD_COMBINING bit on an
// already-built value, for shapes other than NonStarterValue that still
// need to report combining backward (none in this core's seed data
// today, but the bit is part of every shape's layout).
func (v TrieValue) WithBackwardCombining() TrieValue { return v | backwardCombiningMarker }
