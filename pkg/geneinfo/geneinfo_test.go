package geneinfo_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genekit/genesyn/pkg/errors"
	"github.com/genekit/genesyn/pkg/geneinfo"
	"github.com/genekit/genesyn/pkg/genes"
)

// tsv joins cells with tabs and lines with newlines, keeping fixtures readable.
func tsv(lines ...[]string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strings.Join(line, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestParse(t *testing.T) {
	t.Run("builds groups from symbol and synonyms", func(t *testing.T) {
		content := tsv(
			[]string{"#tax_id", "GeneID", "Symbol", "Synonyms"},
			[]string{"9606", "1", "A1BG", "A1B|ABG|GAB|HYST2477"},
			[]string{"9606", "14", "AAMP", "-"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, []genes.Name{"a1b", "abg", "gab", "hyst2477"}, index.Synonyms("a1bg"))
		assert.Empty(t, index.Synonyms("aamp"))

		group, ok := index.Lookup("hyst2477")
		require.True(t, ok)
		assert.Equal(t, genes.Name("a1bg"), group.Symbol())
	})

	t.Run("columns resolve by header name not position", func(t *testing.T) {
		content := tsv(
			[]string{"Synonyms", "tax_id", "Symbol"},
			[]string{"A1B|ABG", "9606", "A1BG"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, []genes.Name{"a1b", "abg"}, index.Synonyms("a1bg"))
	})

	t.Run("symbol and synonyms are normalized", func(t *testing.T) {
		content := tsv(
			[]string{"Symbol", "Synonyms"},
			[]string{" A1BG ", " A1b | ABG "},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, []genes.Name{"a1b", "abg"}, index.Synonyms("a1bg"))
	})

	t.Run("sentinel dash means no synonyms", func(t *testing.T) {
		content := tsv(
			[]string{"Symbol", "Synonyms"},
			[]string{"AAMP", "-"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)

		group, ok := index.Lookup("aamp")
		require.True(t, ok)
		assert.Equal(t, 1, group.Len())
	})

	t.Run("missing required columns fail", func(t *testing.T) {
		for name, header := range map[string][]string{
			"no symbol":   {"tax_id", "Synonyms"},
			"no synonyms": {"tax_id", "Symbol"},
			"neither":     {"tax_id", "GeneID"},
		} {
			t.Run(name, func(t *testing.T) {
				content := tsv(header, []string{"9606", "x"})
				_, err := geneinfo.Parse(strings.NewReader(content))
				require.Error(t, err)
				assert.True(t, errors.IsMalformed(err))
			})
		}
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := geneinfo.Parse(strings.NewReader(""))
		require.Error(t, err)
		assert.True(t, errors.IsMalformed(err))
	})

	t.Run("rows with empty symbol are skipped", func(t *testing.T) {
		content := tsv(
			[]string{"Symbol", "Synonyms"},
			[]string{"", "A1B|ABG"},
			[]string{"AAMP", "-"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, 1, index.Groups())
		_, ok := index.Lookup("a1b")
		assert.False(t, ok)
	})

	t.Run("short rows are skipped", func(t *testing.T) {
		content := tsv(
			[]string{"tax_id", "Symbol", "Synonyms"},
			[]string{"9606"},
			[]string{"9606", "AAMP", "-"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, 1, index.Groups())
	})

	t.Run("duplicate names keep the first seen group", func(t *testing.T) {
		content := tsv(
			[]string{"Symbol", "Synonyms"},
			[]string{"ABO", "NAGAT"},
			[]string{"ABO2", "ABO|OTHER"},
		)
		index, err := geneinfo.Parse(strings.NewReader(content))
		require.NoError(t, err)

		group, ok := index.Lookup("abo")
		require.True(t, ok)
		assert.Equal(t, genes.Name("abo"), group.Symbol())
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads a dictionary file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gene_info")
		content := tsv(
			[]string{"#tax_id", "GeneID", "Symbol", "Synonyms"},
			[]string{"9606", "1", "A1BG", "A1B|ABG"},
		)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		index, err := geneinfo.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []genes.Name{"a1b", "abg"}, index.Synonyms("a1bg"))
	})

	t.Run("missing file is unreadable", func(t *testing.T) {
		_, err := geneinfo.Load(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.True(t, errors.IsUnreadable(err))
	})

	t.Run("parse errors carry the file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gene_info")
		require.NoError(t, os.WriteFile(path, []byte("tax_id\tGeneID\n9606\t1\n"), 0o644))

		_, err := geneinfo.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsMalformed(err))
		assert.Contains(t, err.Error(), path)
	})
}
