package provider_test

import (
	"testing"

	"github.com/boxesandglue/unicore/norm"
	"github.com/boxesandglue/unicore/norm/provider"
)

func TestCompositionTablesValidate(t *testing.T) {
	p := provider.NewSeedProvider()
	tab, err := p.CompositionTables()
	if err != nil {
		t.Fatalf("CompositionTables: %v", err)
	}
	if !tab.Validate() {
		t.Fatal("composition tables fail Validate()")
	}
}

// TestFDFAOnlyUnderCompatibility covers norm/provider's compat switch:
// the U+FDFA entry exists in the NFKD table, not in the NFD table.
func TestFDFAOnlyUnderCompatibility(t *testing.T) {
	p := provider.NewSeedProvider()

	nfd, err := p.DecompositionTables(norm.FormNFD)
	if err != nil {
		t.Fatalf("DecompositionTables(NFD): %v", err)
	}
	nfkd, err := p.DecompositionTables(norm.FormNFKD)
	if err != nil {
		t.Fatalf("DecompositionTables(NFKD): %v", err)
	}

	const fdfa = 0xFDFA
	if v := nfd.Trie.Get(fdfa); !v.IsSelfDecomposing() {
		t.Errorf("NFD trie entry for U+FDFA = %#x, want self-decomposing", uint32(v))
	}
	if v := nfkd.Trie.Get(fdfa); v.IsSelfDecomposing() {
		t.Error("NFKD trie entry for U+FDFA is self-decomposing, want the FDFA marker")
	}
}

func TestDecompositionTablesValidateBothForms(t *testing.T) {
	p := provider.NewSeedProvider()
	for _, form := range []norm.Form{norm.FormNFD, norm.FormNFKD} {
		tab, err := p.DecompositionTables(form)
		if err != nil {
			t.Fatalf("DecompositionTables(%v): %v", form, err)
		}
		if !tab.Validate() {
			t.Errorf("DecompositionTables(%v) fails Validate()", form)
		}
	}
}
