package genes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genekit/genesyn/pkg/genes"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		assert.Equal(t, genes.Name("a1bg"), genes.Normalize("  A1BG\t"))
	})

	t.Run("case variants share one identity", func(t *testing.T) {
		variants := []string{"ABO", "Abo", "abo", " abo "}
		for _, v := range variants {
			assert.Equal(t, genes.Name("abo"), genes.Normalize(v), "variant %q", v)
		}
	})

	t.Run("already normalized input is unchanged", func(t *testing.T) {
		assert.Equal(t, genes.Name("hyst2477"), genes.Normalize("hyst2477"))
	})

	t.Run("blank input normalizes to empty", func(t *testing.T) {
		assert.Equal(t, genes.Name(""), genes.Normalize("   "))
		assert.Equal(t, genes.Name(""), genes.Normalize(""))
	})

	t.Run("unicode case folding", func(t *testing.T) {
		// Folding maps uppercase Greek to lowercase like NCBI naming uses
		assert.Equal(t, genes.Normalize("στρ1"), genes.Normalize("ΣΤΡ1"))
	})
}
