package output

import (
	"github.com/genekit/genesyn/pkg/genes"
	"github.com/genekit/genesyn/pkg/report"
)

// ReportData converts report rows into formatter Data. Delimited and table
// renderings use the serialized cells (sentinel "-", pipe-joined synonyms,
// True/False literals); JSON and YAML marshal the rows themselves.
func ReportData(rows []report.Row) Data {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.Cells()
	}
	return Data{
		Headers: report.Header,
		Rows:    cells,
		Raw:     rows,
	}
}

// GroupData converts a single gene's synonym lookup into formatter Data.
func GroupData(gene genes.Name, synonyms []genes.Name) Data {
	row := report.Row{Gene: gene, Synonyms: synonyms}
	return Data{
		Headers: []string{"Gene", "Synonyms"},
		Rows:    [][]string{{row.Gene.String(), row.SynonymsCell()}},
		Raw: map[string]any{
			"gene":     gene,
			"synonyms": synonyms,
		},
	}
}
