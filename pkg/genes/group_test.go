package genes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genekit/genesyn/pkg/genes"
)

func TestGroup(t *testing.T) {
	t.Run("symbol is always a member", func(t *testing.T) {
		g := genes.NewGroup("a1bg")
		assert.True(t, g.Contains("a1bg"))
		assert.Equal(t, 1, g.Len())
	})

	t.Run("names include symbol and synonyms sorted", func(t *testing.T) {
		g := genes.NewGroup("a1bg", "hyst2477", "a1b", "abg", "gab")
		assert.Equal(t, []genes.Name{"a1b", "a1bg", "abg", "gab", "hyst2477"}, g.Names())
	})

	t.Run("synonyms exclude the queried name", func(t *testing.T) {
		g := genes.NewGroup("a1bg", "a1b", "abg")

		assert.Equal(t, []genes.Name{"a1b", "abg"}, g.Synonyms("a1bg"))
		assert.Equal(t, []genes.Name{"a1bg", "abg"}, g.Synonyms("a1b"))
	})

	t.Run("synonyms of a non-member are the whole group", func(t *testing.T) {
		g := genes.NewGroup("a1bg", "a1b")
		assert.Equal(t, []genes.Name{"a1b", "a1bg"}, g.Synonyms("tp53"))
	})

	t.Run("empty synonyms are dropped", func(t *testing.T) {
		g := genes.NewGroup("aamp", "", "")
		assert.Equal(t, 1, g.Len())
	})

	t.Run("duplicate synonyms collapse", func(t *testing.T) {
		g := genes.NewGroup("abo", "nagat", "nagat", "abo")
		assert.Equal(t, 2, g.Len())
	})
}
