package norm

// fdfaNFKDStarter and fdfaNFKDTail are the fixed 18-character NFKD
// expansion of U+FDFA ARABIC LIGATURE SALLALLAHOU ALAYHE WASALLAM,
// spelled out in full rather than gestured at: "صلى الله عليه وسلم".
// All 18 scalars are starters (ccc 0); the split into starter+tail
// only matters for how the decomposition engine emits them (first
// returned directly, the rest through the combining buffer).
const fdfaNFKDStarter rune = 0x0635

var fdfaNFKDTail = [17]rune{
	0x0644, 0x0649, 0x0020, 0x0627, 0x0644, 0x0644, 0x0647, 0x0020,
	0x0639, 0x0644, 0x064A, 0x0647, 0x0020, 0x0648, 0x0633, 0x0644,
	0x0645,
}
