// Package genesyn reconciles two gene-name lists against a synonym
// dictionary so that genes referenced by different aliases are recognized
// as equivalent.
//
// The library API mirrors the CLI: construct a Comparer from a reference
// dictionary and two list files (or pre-built in-memory equivalents), then
// call Compare to obtain the report rows.
//
//	comparer, err := genesyn.New(
//	    genesyn.WithGeneInfoFile("gene_info.tsv"),
//	    genesyn.WithFileA("a.txt"),
//	    genesyn.WithFileB("b.txt"),
//	)
//	if err != nil {
//	    return err
//	}
//	rows := comparer.Compare()
package genesyn

import (
	"github.com/rs/zerolog"

	"github.com/genekit/genesyn/pkg/errors"
	"github.com/genekit/genesyn/pkg/geneinfo"
	"github.com/genekit/genesyn/pkg/genes"
	"github.com/genekit/genesyn/pkg/report"
)

// Comparer holds the loaded reference index and gene sets for one
// comparison run. All fields are read-only after construction.
type Comparer struct {
	index  *genes.Index
	setA   genes.Set
	setB   genes.Set
	logger *zerolog.Logger
}

// New creates a Comparer from the given options, loading the reference
// dictionary and both gene lists. Construction fails with an UnreadableFile
// or MalformedReferenceFile error when an input cannot be used; a gene list
// that merely contains no names is not an error.
func New(opts ...Option) (*Comparer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	c := &Comparer{
		index:  cfg.index,
		setA:   cfg.setA,
		setB:   cfg.setB,
		logger: cfg.logger,
	}

	if c.index == nil {
		if cfg.geneInfoPath == "" {
			return nil, errors.NewValidationError("gene_info", nil, "a reference dictionary path or index is required")
		}
		c.logger.Info().Str("path", cfg.geneInfoPath).Msg("Loading gene dictionary")
		index, err := geneinfo.Load(cfg.geneInfoPath)
		if err != nil {
			return nil, err
		}
		c.index = index
		c.logger.Info().
			Int("groups", index.Groups()).
			Int("names", index.Len()).
			Msg("Reference index ready")
	}

	if c.setA == nil {
		set, err := loadList(c.logger, "A", cfg.fileAPath)
		if err != nil {
			return nil, err
		}
		c.setA = set
	}
	if c.setB == nil {
		set, err := loadList(c.logger, "B", cfg.fileBPath)
		if err != nil {
			return nil, err
		}
		c.setB = set
	}

	return c, nil
}

// loadList reads one gene list file, logging the outcome.
func loadList(logger *zerolog.Logger, label, path string) (genes.Set, error) {
	if path == "" {
		return nil, errors.NewValidationError("file_"+label, nil, "a gene list path or set is required")
	}
	logger.Info().Str("list", label).Str("path", path).Msg("Reading gene list")
	set, err := genes.LoadSet(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("list", label).Int("genes", set.Len()).Msg("Gene list loaded")
	return set, nil
}

// Index returns the reference index.
func (c *Comparer) Index() *genes.Index {
	return c.index
}

// SetA returns gene set A.
func (c *Comparer) SetA() genes.Set {
	return c.setA
}

// SetB returns gene set B.
func (c *Comparer) SetB() genes.Set {
	return c.setB
}

// Compare produces one report row per distinct gene in set B, ordered by
// gene name. The receiver is not mutated; Compare may be called repeatedly
// and always yields identical rows.
func (c *Comparer) Compare() []report.Row {
	c.logger.Info().
		Int("genes_a", c.setA.Len()).
		Int("genes_b", c.setB.Len()).
		Msg("Comparing gene lists")
	rows := report.Build(c.index, c.setA, c.setB)
	c.logger.Debug().Int("rows", len(rows)).Msg("Report assembled")
	return rows
}
