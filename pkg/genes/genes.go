// Package genes provides the core domain types for gene-name reconciliation:
// normalized gene names, gene sets loaded from list files, synonym groups
// derived from a reference dictionary, and the index that maps every known
// name to its group.
//
// All comparison in this package is exact: names are normalized exactly once,
// at load time, by trimming surrounding whitespace and applying Unicode case
// folding. Two spellings of the same gene symbol that differ only in case
// therefore share one identity throughout the pipeline.
package genes

import (
	"strings"

	"golang.org/x/text/cases"
)

// Name is a normalized gene name token, the atomic unit of comparison.
// A Name is always produced by Normalize; constructing one from raw input
// bypasses the case-insensitivity guarantee.
type Name string

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n)
}

// Normalize converts raw input into a Name by trimming surrounding
// whitespace and applying Unicode case folding. Folding rather than simple
// lowercasing keeps names like "ΣTR1" and "στρ1" on the same identity.
func Normalize(raw string) Name {
	return Name(cases.Fold().String(strings.TrimSpace(raw)))
}
