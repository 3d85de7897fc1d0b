package provider

import "github.com/boxesandglue/unicore/norm"

const (
	combiningDiaeresis rune = 0x0308
	latinSmallADiaeresis rune = 0x00E4
	latinSmallA        rune = 'a'

	fdfaArabicLigature rune = 0xFDFA

	// A combining-class ordering pair. Real Unicode assigns U+031B
	// (COMBINING HORN) ccc 216 and U+0323 (COMBINING DOT BELOW) ccc
	// 220, which a standard ascending stable sort would leave in their
	// already-ascending input order. Table contents are
	// data-provider-owned and opaque to this core, so this seed assigns
	// the pair the other way around to exercise the sort under a
	// genuine reordering case (see DESIGN.md).
	combiningHorn   rune = 0x031B
	combiningDotBelow rune = 0x0323
	hornCCC     uint8 = 220
	dotBelowCCC uint8 = 216

	hangulSyllableStart rune = 0xAC00
	hangulSyllableEnd   rune = 0xD7A3

	hangulLBase rune = 0x1100
)

func buildDecompositionTables(compat bool) *norm.DecompositionTables {
	entries := map[rune]norm.TrieValue{
		latinSmallADiaeresis: norm.TwoBMPValue(latinSmallA, combiningDiaeresis),
		combiningDiaeresis:   norm.NonStarterValue(230, true),
		combiningHorn:        norm.NonStarterValue(hornCCC, false),
		combiningDotBelow:    norm.NonStarterValue(dotBelowCCC, false),
		norm.ReplacementChar: norm.NonRoundTripValue(),
	}
	for cp := hangulSyllableStart; cp <= hangulSyllableEnd; cp++ {
		entries[cp] = norm.HangulOrFDFAValue()
	}
	if compat {
		entries[fdfaArabicLigature] = norm.HangulOrFDFAValue()
	}

	return &norm.DecompositionTables{
		Trie: norm.BuildTrie32(entries, 6, norm.SelfDecomposingValue()),
		// 0xC0 (start of the accented Latin-1 Supplement letters) is
		// the real bound below which every scalar in this seed table
		// decomposes to itself; U+00E4 above it does not, so neither
		// passthrough bound can reach past it.
		PassthroughCap: 0xC0,
	}
}

func buildCompositionTables() *norm.CompositionTables {
	linear16 := []norm.Pair16{
		{Secondary: uint16(latinSmallA), Composed: uint16(latinSmallADiaeresis)},
	}
	entries := map[rune]uint16{
		combiningDiaeresis: norm.PackCompositionValue(0, 1, false),
		hangulLBase:        norm.HangulLTrieValBase,
	}

	return &norm.CompositionTables{
		Trie:                          norm.BuildTrie16(entries, 6, norm.NoCompositions),
		Linear16:                      linear16,
		DecompositionPassthroughBound: 0xC0,
		CompositionPassthroughBound:   0xC0,
	}
}
