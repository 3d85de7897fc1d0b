package norm

//go:generate go run ../cmd/gentables UnicodeData.txt

// Decomposer consumes a lazy Input and produces scalars in canonical
// (or compatibility) order, one per Next call. A Decomposer
// is re-entrant per output call and holds no process-wide state; the
// combining buffer it owns lives only for the lifetime of one Next
// loop over one input.
type Decomposer struct {
	tables *DecompositionTables
	input  Input
	buf    combiningBuffer

	pendingChar  rune
	pendingValue TrieValue
	pendingValid bool
}

// NewDecomposer constructs a Decomposer over the given tables and
// input source.
func NewDecomposer(tables *DecompositionTables, input Input) *Decomposer {
	return &Decomposer{tables: tables, input: input}
}

// Next returns the next scalar of the decomposed output, or
// (0, false) once input is exhausted.
func (d *Decomposer) Next() (rune, bool) {
	if !d.buf.empty() {
		return d.buf.next().scalar(), true
	}

	c, v, ok := d.takePending()
	if !ok {
		return 0, false
	}

	if ccc, isNonStarter := v.NonStarterCCC(); isNonStarter {
		// A lone non-starter with no preceding starter in this step:
		// push it directly and extend the run from here.
		d.buf.push(c, ccc)
		d.gatherAndSort()
		return d.buf.next().scalar(), true
	}

	starter := d.decomposeIntoBuffer(c, v)
	d.gatherAndSort()
	return starter, true
}

func (d *Decomposer) takePending() (rune, TrieValue, bool) {
	if d.pendingValid {
		d.pendingValid = false
		return d.pendingChar, d.pendingValue, true
	}
	return d.input.Next()
}

// decomposeIntoBuffer decodes (c, v) per its shape, pushes any tail
// scalars onto the combining buffer, and returns the starter.
func (d *Decomposer) decomposeIntoBuffer(c rune, v TrieValue) rune {
	switch v.classify() {
	case shapeSelfDecomposing:
		return c

	case shapeTwoBMP:
		starter, tail := v.twoBMP()
		d.buf.push(tail, cccUnknown)
		return starter

	case shapeSingletonOrHangul:
		if isHangulSyllable(c) {
			l, vowel, t, hasT := decomposeHangul(c)
			d.buf.push(vowel, 0)
			if hasT {
				d.buf.push(t, 0)
			}
			return l
		}
		if v.isFDFA() {
			for _, r := range fdfaNFKDTail {
				d.buf.push(r, cccUnknown)
			}
			return fdfaNFKDStarter
		}
		return v.singleton()

	case shapeComplex:
		offset, length, _ := v.complex()
		tail := d.tables.complexTail(offset, length)
		if len(tail) == 0 {
			// GIGO: a corrupt (offset, length) never panics.
			return ReplacementChar
		}
		for _, r := range tail[1:] {
			d.buf.push(r, cccUnknown)
		}
		return tail[0]

	default:
		return c
	}
}

// gatherAndSort drains further non-starters straight from the input,
// stopping at the next starter and stashing it as pending, then
// stable-sorts the whole buffer (the decomposition tail pushed by this
// step plus the gathered run) by ccc.
func (d *Decomposer) gatherAndSort() {
	for {
		c, v, ok := d.input.Next()
		if !ok {
			break
		}
		if special, isSpecial := specialNonStarterDecomposition(c); isSpecial {
			for i := 0; i < special.n; i++ {
				d.buf.push(special.out[i], special.ccc[i])
			}
			continue
		}
		if ccc, isNonStarter := v.NonStarterCCC(); isNonStarter {
			d.buf.push(c, ccc)
			continue
		}
		d.pendingChar, d.pendingValue, d.pendingValid = c, v, true
		break
	}
	d.buf.resolveAndSortSuffix(0, d.lookupCCC)
}

func (d *Decomposer) lookupCCC(c rune) uint8 {
	if special, ok := specialNonStarterDecomposition(c); ok {
		return special.ccc[0]
	}
	ccc, _ := d.tables.Trie.Get(c).NonStarterCCC()
	return ccc
}
