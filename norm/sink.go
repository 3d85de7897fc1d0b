package norm

// Sink is the write side of normalize_to. A maximal run
// of scalars that were provably already in the target form is flushed
// in one WriteWholeSlice call; anything that passed through the
// decomposition/composition engine is written one scalar at a time via
// WriteChar.
type Sink interface {
	WriteWholeSlice(run []rune)
	WriteChar(c rune)
}

// RuneSink accumulates output into a []rune, backing the allocating
// Normalize* entry points.
type RuneSink struct {
	Out []rune
}

func (s *RuneSink) WriteWholeSlice(run []rune) { s.Out = append(s.Out, run...) }
func (s *RuneSink) WriteChar(c rune)            { s.Out = append(s.Out, c) }
