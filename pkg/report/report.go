// Package report assembles and serializes the comparison report: one row
// per distinct gene in set B, carrying the gene's known synonyms and
// whether the gene, under any of its names, appears in set A.
package report

import (
	"strings"

	"github.com/genekit/genesyn/pkg/constants"
	"github.com/genekit/genesyn/pkg/genes"
)

// Header is the column layout of the serialized report.
var Header = []string{"Gene", "Synonyms", "Present_in_A"}

// Row is one report entry. Rows are created once during assembly and
// immutable afterwards.
type Row struct {
	// Gene is the normalized name as it appeared in set B.
	Gene genes.Name `json:"gene" yaml:"gene"`

	// Synonyms are the other names of the gene's synonym group, excluding
	// Gene itself, in lexicographic order. Empty when the gene is unknown
	// to the reference dictionary or its group has no other members.
	Synonyms []genes.Name `json:"synonyms" yaml:"synonyms"`

	// Present reports whether any name of the gene's identity set appears
	// in set A.
	Present bool `json:"present_in_a" yaml:"present_in_a"`
}

// SynonymsCell serializes the synonyms for output: the "-" sentinel when
// there are none, otherwise the pipe-joined list.
func (r Row) SynonymsCell() string {
	if len(r.Synonyms) == 0 {
		return constants.NoSynonyms
	}
	parts := make([]string, len(r.Synonyms))
	for i, n := range r.Synonyms {
		parts[i] = n.String()
	}
	return strings.Join(parts, constants.SynonymSeparator)
}

// PresentCell serializes the membership result as the literal token
// "True" or "False".
func (r Row) PresentCell() string {
	if r.Present {
		return "True"
	}
	return "False"
}

// Cells returns the row in Header order.
func (r Row) Cells() []string {
	return []string{r.Gene.String(), r.SynonymsCell(), r.PresentCell()}
}

// Build produces the report rows for set B, ordered lexicographically by
// gene name so repeated runs emit byte-identical output.
//
// Membership is symmetric: set A is expanded once through the same index
// used to resolve B's synonym groups, so a B gene counts as present when
// any alias it shares a group with appears in A under any spelling.
func Build(index *genes.Index, setA, setB genes.Set) []Row {
	expandedA := index.Expand(setA)

	rows := make([]Row, 0, setB.Len())
	for _, gene := range setB.Names() {
		rows = append(rows, Row{
			Gene:     gene,
			Synonyms: index.Synonyms(gene),
			Present:  present(index, expandedA, gene),
		})
	}
	return rows
}

// present reports whether the gene's identity set ({gene} ∪ synonym group)
// intersects the expanded set A.
func present(index *genes.Index, expandedA genes.Set, gene genes.Name) bool {
	if expandedA.Contains(gene) {
		return true
	}
	group, ok := index.Lookup(gene)
	if !ok {
		return false
	}
	for _, member := range group.Names() {
		if expandedA.Contains(member) {
			return true
		}
	}
	return false
}
