// Package geneinfo parses NCBI-style gene_info reference dictionaries into
// a genes.Index. The dictionary is UTF-8 tab-separated text with a header
// line; columns are resolved by header name, never by position, so reduced
// or reordered exports of the full NCBI file parse identically. Only the
// Symbol and Synonyms columns are consumed; everything else (tax_id, GeneID,
// dbXrefs, ...) is ignored.
//
// gene_info carries no quoting, so rows are split on raw tabs rather than
// run through a CSV reader that would choke on stray double quotes inside
// synonym lists.
package geneinfo

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/genekit/genesyn/pkg/constants"
	"github.com/genekit/genesyn/pkg/errors"
	"github.com/genekit/genesyn/pkg/genes"
	"github.com/genekit/genesyn/pkg/logging"
)

// Load reads the dictionary at path and builds the reference index.
func Load(path string) (*genes.Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	index, err := Parse(f)
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) && perr.File == "" {
			perr.File = path
		}
		return nil, err
	}
	return index, nil
}

// Parse builds the reference index from dictionary content. It fails with a
// ParseError when the required Symbol and Synonyms columns are missing from
// the header; rows with an empty symbol are skipped with a warning since
// they contribute no usable mapping.
func Parse(r io.Reader) (*genes.Index, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, constants.InitialLineBuffer), constants.MaxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.WrapIO("read", "", err)
		}
		return nil, errors.NewParseError("", 1, "missing header line")
	}
	symbolCol, synonymsCol, err := resolveColumns(scanner.Text())
	if err != nil {
		return nil, err
	}

	index := genes.NewIndex()
	line := 1
	skipped := 0
	for scanner.Scan() {
		line++
		row := strings.Split(scanner.Text(), constants.ColumnSeparator)
		if len(row) <= symbolCol || len(row) <= synonymsCol {
			logging.Warn().Int("line", line).Int("columns", len(row)).
				Msg("Skipping short dictionary row")
			skipped++
			continue
		}

		symbol := genes.Normalize(row[symbolCol])
		if symbol == "" {
			logging.Warn().Int("line", line).
				Msg("Skipping dictionary row with empty symbol")
			skipped++
			continue
		}

		index.Register(genes.NewGroup(symbol, splitSynonyms(row[synonymsCol])...))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", "", err)
	}

	logging.Debug().
		Int("groups", index.Groups()).
		Int("names", index.Len()).
		Int("skipped_rows", skipped).
		Msg("Built reference index")
	return index, nil
}

// resolveColumns locates the Symbol and Synonyms columns in the header.
// NCBI headers sometimes prefix the first column with "#"; both spellings
// are accepted.
func resolveColumns(header string) (symbolCol, synonymsCol int, err error) {
	symbolCol, synonymsCol = -1, -1
	for i, name := range strings.Split(header, constants.ColumnSeparator) {
		switch strings.TrimPrefix(strings.TrimSpace(name), "#") {
		case constants.SymbolColumn:
			if symbolCol == -1 {
				symbolCol = i
			}
		case constants.SynonymsColumn:
			if synonymsCol == -1 {
				synonymsCol = i
			}
		}
	}

	var missing []string
	if symbolCol == -1 {
		missing = append(missing, constants.SymbolColumn)
	}
	if synonymsCol == -1 {
		missing = append(missing, constants.SynonymsColumn)
	}
	if len(missing) > 0 {
		return 0, 0, errors.NewParseError("", 1,
			"missing required column(s): "+strings.Join(missing, ", "))
	}
	return symbolCol, synonymsCol, nil
}

// splitSynonyms parses a Synonyms cell into normalized names. The sentinel
// "-" and empty entries yield nothing.
func splitSynonyms(cell string) []genes.Name {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == constants.NoSynonyms {
		return nil
	}
	parts := strings.Split(cell, constants.SynonymSeparator)
	names := make([]genes.Name, 0, len(parts))
	for _, part := range parts {
		name := genes.Normalize(part)
		if name == "" || name == constants.NoSynonyms {
			continue
		}
		names = append(names, name)
	}
	return names
}
