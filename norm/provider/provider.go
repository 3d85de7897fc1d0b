// Package provider supplies the data tables the norm package's engines
// consult. Loading real Unicode Character Database tables is explicitly
// out of scope for this core: the data-provider layer is treated as
// opaque and supplies already-validated tables. Provider is the seam a
// real loader would implement, and SeedProvider is a small in-memory
// implementation covering a handful of representative cases, built the
// way a hand-rolled test fixture in this codebase's style would be.
package provider

import "github.com/boxesandglue/unicore/norm"

// Provider produces the table sets a Normalizer needs. A real
// implementation would parse a versioned UCD data file or an ICU-style
// binary blob; this core only defines the seam.
type Provider interface {
	DecompositionTables(form norm.Form) (*norm.DecompositionTables, error)
	CompositionTables() (*norm.CompositionTables, error)
}

// SeedProvider is a minimal, hand-built Provider exercising a handful
// of representative cases: the combining-diaeresis / ä pair, the full
// Hangul syllable block, the U+FDFA compatibility expansion, and the
// U+031B/U+0323 combining-class ordering pair.
type SeedProvider struct{}

// NewSeedProvider constructs a SeedProvider. It holds no state; every
// call to its methods rebuilds the requested table set from scratch.
func NewSeedProvider() SeedProvider { return SeedProvider{} }

func (SeedProvider) DecompositionTables(form norm.Form) (*norm.DecompositionTables, error) {
	compat := form == norm.FormNFKD || form == norm.FormNFKC
	return buildDecompositionTables(compat), nil
}

func (SeedProvider) CompositionTables() (*norm.CompositionTables, error) {
	return buildCompositionTables(), nil
}
