// Command gentables is the data-provider generator seam referenced
// from norm/decompose.go's //go:generate comment. Regenerating the
// seed tables in norm/provider from a real Unicode Character Database
// text file is out of scope for this core, which treats table
// loading as opaque, already-validated input; this stub documents the
// expected invocation and argument shape so a real generator has a
// concrete home, the way a shaping engine's
// "go:generate go run ../cmd/gen-ccc UnicodeData.txt" names a generator
// that lives alongside the tables it produces.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gentables <UnicodeData.txt>\n")
		fmt.Fprintf(os.Stderr, "  regenerates norm/provider's seed tables from a UCD-shaped source file.\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	src := flag.Arg(0)
	if _, err := os.Stat(src); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "gentables: real UCD parsing is not implemented in this build; "+
		"norm/provider's SeedProvider is a hand-authored fixture, not generated output.\n")
	os.Exit(1)
}
