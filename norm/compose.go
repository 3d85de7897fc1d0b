package norm

// Composer wraps a Decomposer to produce NFC or NFKC output: it reads
// already-decomposed, already-ccc-sorted scalars and greedily fuses a
// starter with following marks using the composition table, falling
// back to a discontiguous scan across blocked marks (UAX #15's
// canonical composition algorithm).
type Composer struct {
	decomp  *Decomposer
	decTab  *DecompositionTables
	compTab *CompositionTables

	pendingStarter     rune
	havePendingStarter bool

	out    []rune
	outPos int
}

// NewComposer constructs a Composer. decTab is the same decomposition
// table set backing decomp, needed here only to look up the canonical
// combining class of scalars the decomposer has already emitted.
func NewComposer(decTab *DecompositionTables, compTab *CompositionTables, decomp *Decomposer) *Composer {
	return &Composer{decomp: decomp, decTab: decTab, compTab: compTab}
}

// Next returns the next composed scalar, or (0, false) at end of input.
func (c *Composer) Next() (rune, bool) {
	if c.outPos < len(c.out) {
		r := c.out[c.outPos]
		c.outPos++
		if c.outPos == len(c.out) {
			c.out, c.outPos = c.out[:0], 0
		}
		return r, true
	}

	batch := c.composeOne()
	if len(batch) == 0 {
		return 0, false
	}
	r := batch[0]
	if len(batch) > 1 {
		c.out = batch[1:]
		c.outPos = 0
	}
	return r, true
}

func (c *Composer) nextChar() (rune, bool) {
	if c.havePendingStarter {
		c.havePendingStarter = false
		return c.pendingStarter, true
	}
	return c.decomp.Next()
}

func (c *Composer) cccOf(r rune) uint8 {
	ccc, _ := c.decTab.Trie.Get(r).NonStarterCCC()
	return ccc
}

// composeOne runs one greedy-with-discontiguous-fallback composition
// run starting at the next starter, returning the composed starter
// followed by any marks that never found a match, in original order.
func (c *Composer) composeOne() []rune {
	s, ok := c.nextChar()
	if !ok {
		return nil
	}

	sIsLV := false
	var held []rune
	mostRecentSkippedCCC := -1

	for {
		x, ok := c.nextChar()
		if !ok {
			break
		}

		if sIsLV && isHangulT(x) {
			s = composeHangulLVT(s, x)
			continue
		}

		xCCC := c.cccOf(x)

		// A starter (ccc 0) still gets one composition attempt first:
		// Hangul L+V and LV+T fuse even though both sides are starters.
		// Only once that attempt fails does a starter end the run; a
		// non-starter that fails is tracked as blocked and the scan
		// continues past it for a discontiguous match.
		eligible := xCCC == 0 || mostRecentSkippedCCC < 0 || int(xCCC) > mostRecentSkippedCCC
		if eligible {
			if composed, matched, becameLV := c.tryCompose(s, x); matched {
				s = composed
				sIsLV = becameLV
				continue
			}
		}

		if xCCC == 0 {
			c.pendingStarter, c.havePendingStarter = x, true
			break
		}

		held = append(held, x)
		mostRecentSkippedCCC = int(xCCC)
	}

	if len(held) == 0 {
		return []rune{s}
	}
	return append([]rune{s}, held...)
}

// isAsciiVowel reports whether c is one of the ten ASCII vowels that
// trigger the "trie keyed by second character" data layout convention.
func isAsciiVowel(c rune) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// tryCompose attempts to fuse starter s with the following character x.
// It returns the composed scalar and whether a match was found; becameLV
// reports whether the result is a freshly formed Hangul LV syllable
// (needed so a following trailing jamo can still complete an LVT).
func (c *Composer) tryCompose(s, x rune) (composed rune, matched bool, becameLV bool) {
	swap := isAsciiVowel(s)
	key, scanTarget := s, x
	if swap {
		key, scanTarget = x, s
	}

	packed := c.compTab.Trie.Get(key)
	switch {
	case packed == NoCompositions:
		return 0, false, false
	case packed >= HangulLTrieValBase:
		if !swap && isHangulV(x) {
			return composeHangulLV(s, x), true, true
		}
		return 0, false, false
	default:
		length := int((packed&packedLengthMask)>>packedLengthShift) + 1
		index := int(packed & packedIndexMask)
		if packed&packedPrimary24Flag != 0 {
			for _, p := range boundedLinear24(c.compTab.Linear24, index, length) {
				if p.Secondary == scanTarget {
					return p.Composed, true, false
				}
			}
			return 0, false, false
		}
		for _, p := range boundedLinear16(c.compTab.Linear16, index, length) {
			if rune(p.Secondary) == scanTarget {
				return rune(p.Composed), true, false
			}
		}
		return 0, false, false
	}
}

func boundedLinear16(table []Pair16, index, length int) []Pair16 {
	if index < 0 || index > len(table) {
		return nil
	}
	end := index + length
	if end > len(table) {
		end = len(table)
	}
	return table[index:end]
}

func boundedLinear24(table []Pair24, index, length int) []Pair24 {
	if index < 0 || index > len(table) {
		return nil
	}
	end := index + length
	if end > len(table) {
		end = len(table)
	}
	return table[index:end]
}
