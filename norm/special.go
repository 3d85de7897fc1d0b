package norm

// specialNonStarter is one entry of the fixed table of "special
// non-starter decompositions" applied only inside gather-and-sort.
// These are cases where a non-starter itself expands
// to one or two further non-starters with their own canonical
// combining classes, rather than being looked up through the normal
// trie tail machinery.
type specialNonStarter struct {
	input rune
	out   [2]rune
	ccc   [2]uint8
	n     int
}

// specialNonStarterTable is keyed by the input scalar. It is small
// and fixed by the Unicode Standard (UAX #15's canonical decomposition
// of a handful of combining marks), not data-provider supplied.
var specialNonStarterTable = map[rune]specialNonStarter{
	0x0340: {input: 0x0340, out: [2]rune{0x0300, 0}, ccc: [2]uint8{230, 0}, n: 1},
	0x0341: {input: 0x0341, out: [2]rune{0x0301, 0}, ccc: [2]uint8{230, 0}, n: 1},
	0x0343: {input: 0x0343, out: [2]rune{0x0313, 0}, ccc: [2]uint8{230, 0}, n: 1},
	0x0344: {input: 0x0344, out: [2]rune{0x0308, 0x0301}, ccc: [2]uint8{230, 230}, n: 2},
	0x0F73: {input: 0x0F73, out: [2]rune{0x0F71, 0x0F72}, ccc: [2]uint8{129, 130}, n: 2},
	0x0F75: {input: 0x0F75, out: [2]rune{0x0F71, 0x0F74}, ccc: [2]uint8{129, 132}, n: 2},
	0x0F81: {input: 0x0F81, out: [2]rune{0x0F71, 0x0F80}, ccc: [2]uint8{129, 130}, n: 2},
	0xFF9E: {input: 0xFF9E, out: [2]rune{0x3099, 0}, ccc: [2]uint8{8, 0}, n: 1},
	0xFF9F: {input: 0xFF9F, out: [2]rune{0x309A, 0}, ccc: [2]uint8{8, 0}, n: 1},
}

// specialNonStarterDecomposition reports whether c has a special
// non-starter decomposition and returns it.
func specialNonStarterDecomposition(c rune) (specialNonStarter, bool) {
	s, ok := specialNonStarterTable[c]
	return s, ok
}
