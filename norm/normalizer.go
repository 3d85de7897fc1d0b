package norm

// Form identifies which of the four normalization forms a Normalizer
// produces.
type Form int

const (
	FormNFD Form = iota
	FormNFKD
	FormNFC
	FormNFKC
)

// Normalizer implements the streaming normalization API surface for
// one normalization form. It holds only read-only table references, so
// a *Normalizer is immutable after construction and safe for concurrent
// use by multiple goroutines.
type Normalizer struct {
	form    Form
	decTab  *DecompositionTables
	compTab *CompositionTables // nil for FormNFD/FormNFKD
}

// NewNFD constructs a Normalizer producing NFD (canonical decomposition)
// output.
func NewNFD(tables *DecompositionTables) *Normalizer {
	return &Normalizer{form: FormNFD, decTab: tables}
}

// NewNFKD constructs a Normalizer producing NFKD (compatibility
// decomposition) output.
func NewNFKD(tables *DecompositionTables) *Normalizer {
	return &Normalizer{form: FormNFKD, decTab: tables}
}

// NewNFC constructs a Normalizer producing NFC output.
func NewNFC(decTab *DecompositionTables, compTab *CompositionTables) *Normalizer {
	return &Normalizer{form: FormNFC, decTab: decTab, compTab: compTab}
}

// NewNFKC constructs a Normalizer producing NFKC output.
func NewNFKC(decTab *DecompositionTables, compTab *CompositionTables) *Normalizer {
	return &Normalizer{form: FormNFKC, decTab: decTab, compTab: compTab}
}

func (n *Normalizer) composing() bool { return n.form == FormNFC || n.form == FormNFKC }

// iterator returns a fresh Decomposer, wrapped in a Composer when this
// Normalizer's form recomposes, driving the given Input.
func (n *Normalizer) iterator(input Input) func() (rune, bool) {
	dec := NewDecomposer(n.decTab, input)
	if !n.composing() {
		return dec.Next
	}
	return NewComposer(n.decTab, n.compTab, dec).Next
}

// fastPathBound returns the scalar below which input is known, by
// construction of the tables, to already be in this Normalizer's
// target form: self-decomposing, not combining backward,
// round-tripping, and (for NFC/NFKC) already fully composed.
func (n *Normalizer) fastPathBound() rune {
	if n.composing() {
		return n.compTab.CompositionPassthroughBound
	}
	return n.decTab.PassthroughCap
}

// fastPathEligible reports whether c can be copied straight to output
// without running the decomposition/composition engine.
func (n *Normalizer) fastPathEligible(c rune, v TrieValue) bool {
	return c < n.fastPathBound() && v.CanPassthrough()
}

// normalizeTo drives input through the fast path, falling back to the
// decomposition/composition engine at the first scalar that isn't
// provably already normalized, and writes every scalar to sink.
//
// For composing forms, passthrough-eligibility of one scalar isn't
// enough on its own: a starter below the bound (e.g. plain ASCII) can
// still be the target of a following combining mark, so the scan peeks
// one scalar ahead and refuses the fast path whenever the next scalar
// can combine backward (the BACKWARD_COMBINING bit exists
// exactly to make this check possible). Decomposition-only forms never
// merge adjacent scalars, so no such lookahead is needed there.
func (n *Normalizer) normalizeTo(input Input, sink Sink) {
	var run []rune
	composing := n.composing()

	c, v, ok := input.Next()
	for ok {
		var nextC rune
		var nextV TrieValue
		haveNext := false
		if composing {
			nextC, nextV, haveNext = input.Next()
		}

		eligible := n.fastPathEligible(c, v)
		if eligible && composing && haveNext && nextV.BackwardCombining() {
			eligible = false
		}

		if eligible {
			run = append(run, c)
			if composing {
				c, v, ok = nextC, nextV, haveNext
			} else {
				c, v, ok = input.Next()
			}
			continue
		}

		if len(run) > 0 {
			sink.WriteWholeSlice(run)
			run = nil
		}
		feed := newBufferedInput(input, c, v)
		if composing && haveNext {
			feed.push(nextC, nextV)
		}
		n.drainEngine(feed, sink)
		return
	}
	if len(run) > 0 {
		sink.WriteWholeSlice(run)
	}
}

func (n *Normalizer) drainEngine(input Input, sink Sink) {
	next := n.iterator(input)
	for {
		c, ok := next()
		if !ok {
			return
		}
		sink.WriteChar(c)
	}
}

// bufferedInput re-plays a small queue of already-read (c, v) pairs
// ahead of the remainder of an Input, letting normalizeTo hand off from
// its fast-path scan to the decomposition engine without losing the
// scalar(s) that ended the fast-path run.
type bufferedInput struct {
	queued []pendingPair
	rest   Input
}

type pendingPair struct {
	c rune
	v TrieValue
}

func newBufferedInput(rest Input, c rune, v TrieValue) *bufferedInput {
	return &bufferedInput{rest: rest, queued: []pendingPair{{c, v}}}
}

func (b *bufferedInput) push(c rune, v TrieValue) {
	b.queued = append(b.queued, pendingPair{c, v})
}

func (b *bufferedInput) Trie() *Trie32 { return b.rest.Trie() }

func (b *bufferedInput) Next() (rune, TrieValue, bool) {
	if len(b.queued) > 0 {
		p := b.queued[0]
		b.queued = b.queued[1:]
		return p.c, p.v, true
	}
	return b.rest.Next()
}

// --- Validated UTF-8 ---

// NormalizeString returns s normalized to this Normalizer's form.
func (n *Normalizer) NormalizeString(s string) string {
	sink := &RuneSink{}
	n.NormalizeStringTo(s, sink)
	return string(sink.Out)
}

// NormalizeStringTo normalizes s into sink.
func (n *Normalizer) NormalizeStringTo(s string, sink Sink) {
	n.normalizeTo(NewUTF8Input(s, n.decTab.Trie), sink)
}

// IsNormalizedString reports whether s is already in this Normalizer's
// form: exactly normalize(s) == s, computed here by a single
// early-exiting scan rather than allocating the full output.
func (n *Normalizer) IsNormalizedString(s string) bool {
	return isNormalizedRunes([]rune(s), n.iterator(NewUTF8Input(s, n.decTab.Trie)))
}

// SplitNormalizedString returns the length, in runes decoded from s,
// of the longest prefix of s that is already normalized, and whether
// that prefix is all of s.
func (n *Normalizer) SplitNormalizedString(s string) (prefixRunes int, complete bool) {
	return splitNormalizedRunes([]rune(s), n.iterator(NewUTF8Input(s, n.decTab.Trie)))
}

// --- Lossy UTF-8 ---

// NormalizeLossyUTF8 normalizes a byte slice that may not be valid
// UTF-8, substituting U+FFFD for any ill-formed sequence before
// normalization.
func (n *Normalizer) NormalizeLossyUTF8(b []byte) []rune {
	sink := &RuneSink{}
	n.normalizeTo(NewLossyUTF8Input(b, n.decTab.Trie), sink)
	return sink.Out
}

// IsNormalizedLossyUTF8 reports whether the lossily-decoded form of b
// is already normalized.
func (n *Normalizer) IsNormalizedLossyUTF8(b []byte) bool {
	orig := decodeAllLossyUTF8(b)
	return isNormalizedRunes(orig, n.iterator(NewLossyUTF8Input(b, n.decTab.Trie)))
}

// SplitNormalizedLossyUTF8 mirrors SplitNormalizedString for lossily
// decoded UTF-8.
func (n *Normalizer) SplitNormalizedLossyUTF8(b []byte) (prefixRunes int, complete bool) {
	orig := decodeAllLossyUTF8(b)
	return splitNormalizedRunes(orig, n.iterator(NewLossyUTF8Input(b, n.decTab.Trie)))
}

func decodeAllLossyUTF8(b []byte) []rune {
	var out []rune
	for pos := 0; pos < len(b); {
		c, size := decodeRuneUTF8(string(b[pos:]))
		out = append(out, c)
		pos += size
	}
	return out
}

// --- Lossy UTF-16 ---

// NormalizeLossyUTF16 normalizes a UTF-16 code unit slice that may
// contain lone surrogates, substituting U+FFFD for any of them.
func (n *Normalizer) NormalizeLossyUTF16(units []uint16) []rune {
	sink := &RuneSink{}
	n.normalizeTo(NewUTF16Input(units, n.decTab.Trie), sink)
	return sink.Out
}

// IsNormalizedLossyUTF16 reports whether the lossily-decoded form of
// units is already normalized.
func (n *Normalizer) IsNormalizedLossyUTF16(units []uint16) bool {
	orig := decodeAllUTF16(units)
	return isNormalizedRunes(orig, n.iterator(NewUTF16Input(units, n.decTab.Trie)))
}

// SplitNormalizedLossyUTF16 mirrors SplitNormalizedString for lossily
// decoded UTF-16.
func (n *Normalizer) SplitNormalizedLossyUTF16(units []uint16) (prefixRunes int, complete bool) {
	orig := decodeAllUTF16(units)
	return splitNormalizedRunes(orig, n.iterator(NewUTF16Input(units, n.decTab.Trie)))
}

func decodeAllUTF16(units []uint16) []rune {
	in := NewUTF16Input(units, nil)
	var out []rune
	for {
		c, _, ok := in.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// isNormalizedRunes compares the engine's output against orig
// scalar-by-scalar, returning false at the first divergence (or length
// mismatch) without consuming the rest of either sequence.
func isNormalizedRunes(orig []rune, next func() (rune, bool)) bool {
	i := 0
	for {
		r, ok := next()
		if !ok {
			return i == len(orig)
		}
		if i >= len(orig) || orig[i] != r {
			return false
		}
		i++
	}
}

// splitNormalizedRunes walks orig alongside the engine's output,
// returning the rune count of the longest matching prefix.
func splitNormalizedRunes(orig []rune, next func() (rune, bool)) (prefixRunes int, complete bool) {
	i := 0
	for {
		r, ok := next()
		if !ok {
			return i, i == len(orig)
		}
		if i >= len(orig) || orig[i] != r {
			return i, false
		}
		i++
	}
}
