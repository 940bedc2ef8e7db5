package genesyn_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genekit/genesyn"
	"github.com/genekit/genesyn/pkg/errors"
	"github.com/genekit/genesyn/pkg/genes"
	"github.com/genekit/genesyn/pkg/logging"
	"github.com/genekit/genesyn/pkg/report"
)

// fixture writes a reference dictionary and two gene lists into a temp dir.
func fixture(t *testing.T, geneInfo, fileA, fileB string) (geneInfoPath, aPath, bPath string) {
	t.Helper()
	dir := t.TempDir()
	geneInfoPath = filepath.Join(dir, "gene_info")
	aPath = filepath.Join(dir, "a.txt")
	bPath = filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(geneInfoPath, []byte(geneInfo), 0o644))
	require.NoError(t, os.WriteFile(aPath, []byte(fileA), 0o644))
	require.NoError(t, os.WriteFile(bPath, []byte(fileB), 0o644))
	return geneInfoPath, aPath, bPath
}

const testGeneInfo = "#tax_id\tGeneID\tSymbol\tSynonyms\n" +
	"9606\t1\tA1BG\tA1B|ABG|GAB|HYST2477\n" +
	"9606\t14\tAAMP\t-\n" +
	"9606\t28\tABO\tNAGAT\n"

func TestNew(t *testing.T) {
	t.Run("loads all three inputs from files", func(t *testing.T) {
		geneInfoPath, aPath, bPath := fixture(t, testGeneInfo, "a1bg\n", "A1B\nAAMP\n")

		comparer, err := genesyn.New(
			genesyn.WithGeneInfoFile(geneInfoPath),
			genesyn.WithFileA(aPath),
			genesyn.WithFileB(bPath),
			genesyn.WithLogger(&logging.Nop),
		)
		require.NoError(t, err)

		assert.Equal(t, 3, comparer.Index().Groups())
		assert.Equal(t, 1, comparer.SetA().Len())
		assert.Equal(t, 2, comparer.SetB().Len())
	})

	t.Run("accepts prebuilt index and sets", func(t *testing.T) {
		ix := genes.NewIndex()
		ix.Register(genes.NewGroup("a1bg", "a1b"))

		comparer, err := genesyn.New(
			genesyn.WithIndex(ix),
			genesyn.WithSets(genes.NewSet("a1bg"), genes.NewSet("a1b")),
			genesyn.WithLogger(&logging.Nop),
		)
		require.NoError(t, err)

		rows := comparer.Compare()
		require.Len(t, rows, 1)
		assert.True(t, rows[0].Present)
	})

	t.Run("missing dictionary path fails validation", func(t *testing.T) {
		_, err := genesyn.New(genesyn.WithLogger(&logging.Nop))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unreadable dictionary fails", func(t *testing.T) {
		_, aPath, bPath := fixture(t, testGeneInfo, "", "")
		_, err := genesyn.New(
			genesyn.WithGeneInfoFile(filepath.Join(t.TempDir(), "absent")),
			genesyn.WithFileA(aPath),
			genesyn.WithFileB(bPath),
			genesyn.WithLogger(&logging.Nop),
		)
		require.Error(t, err)
		assert.True(t, errors.IsUnreadable(err))
	})

	t.Run("dictionary without required columns fails", func(t *testing.T) {
		geneInfoPath, aPath, bPath := fixture(t, "tax_id\tGeneID\n9606\t1\n", "", "")
		_, err := genesyn.New(
			genesyn.WithGeneInfoFile(geneInfoPath),
			genesyn.WithFileA(aPath),
			genesyn.WithFileB(bPath),
			genesyn.WithLogger(&logging.Nop),
		)
		require.Error(t, err)
		assert.True(t, errors.IsMalformed(err))
	})
}

func TestCompare(t *testing.T) {
	t.Run("end to end report", func(t *testing.T) {
		// B: alias of a1bg, aamp itself, an unknown gene, and a case duplicate
		geneInfoPath, aPath, bPath := fixture(t, testGeneInfo,
			"a1bg\naamp\n",
			"A1B\nAAMP\nXYZZY123\nABO\nabo\n")

		comparer, err := genesyn.New(
			genesyn.WithGeneInfoFile(geneInfoPath),
			genesyn.WithFileA(aPath),
			genesyn.WithFileB(bPath),
			genesyn.WithLogger(&logging.Nop),
		)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, report.WriteCSV(&buf, comparer.Compare()))

		want := "Gene,Synonyms,Present_in_A\n" +
			"a1b,a1bg|abg|gab|hyst2477,True\n" +
			"aamp,-,True\n" +
			"abo,nagat,False\n" +
			"xyzzy123,-,False\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("compare is repeatable", func(t *testing.T) {
		geneInfoPath, aPath, bPath := fixture(t, testGeneInfo, "nagat\n", "abo\n")

		comparer, err := genesyn.New(
			genesyn.WithGeneInfoFile(geneInfoPath),
			genesyn.WithFileA(aPath),
			genesyn.WithFileB(bPath),
			genesyn.WithLogger(&logging.Nop),
		)
		require.NoError(t, err)

		assert.Equal(t, comparer.Compare(), comparer.Compare())
	})
}
