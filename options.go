package genesyn

import (
	"github.com/rs/zerolog"

	"github.com/genekit/genesyn/pkg/genes"
	"github.com/genekit/genesyn/pkg/logging"
)

// Option is a function that configures a Comparer under construction.
type Option func(*config) error

// config collects construction inputs before loading.
type config struct {
	geneInfoPath string
	fileAPath    string
	fileBPath    string

	index  *genes.Index
	setA   genes.Set
	setB   genes.Set
	logger *zerolog.Logger
}

func defaultConfig() *config {
	return &config{logger: logging.Default()}
}

// WithGeneInfoFile sets the path of the NCBI-style reference dictionary.
func WithGeneInfoFile(path string) Option {
	return func(c *config) error {
		c.geneInfoPath = path
		return nil
	}
}

// WithFileA sets the path of gene list A, the list being checked against.
func WithFileA(path string) Option {
	return func(c *config) error {
		c.fileAPath = path
		return nil
	}
}

// WithFileB sets the path of gene list B, the list being expanded and
// reported on.
func WithFileB(path string) Option {
	return func(c *config) error {
		c.fileBPath = path
		return nil
	}
}

// WithIndex supplies a pre-built reference index instead of a dictionary
// path. Useful for tests with small synthetic indexes.
func WithIndex(index *genes.Index) Option {
	return func(c *config) error {
		c.index = index
		return nil
	}
}

// WithSets supplies pre-built gene sets instead of list file paths.
func WithSets(setA, setB genes.Set) Option {
	return func(c *config) error {
		c.setA = setA
		c.setB = setB
		return nil
	}
}

// WithLogger sets the logger used during loading and comparison.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
