// Package constants provides shared constants used throughout the genesyn
// codebase. This includes file permissions, parser limits, and the tokens
// that define the NCBI gene_info dictionary format.
package constants

import "os"

// File system constants
const (
	// FilePermissions is the standard permission for created files (rw-r--r--)
	FilePermissions os.FileMode = 0o644

	// DirPermissions is the standard permission for created directories (rwxr-xr-x)
	DirPermissions os.FileMode = 0o755
)

// Dictionary format constants define the NCBI gene_info layout
const (
	// SymbolColumn is the header name of the primary gene symbol column
	SymbolColumn = "Symbol"

	// SynonymsColumn is the header name of the synonym list column
	SynonymsColumn = "Synonyms"

	// ColumnSeparator separates columns in a gene_info row
	ColumnSeparator = "\t"

	// SynonymSeparator separates entries within the Synonyms column
	SynonymSeparator = "|"

	// NoSynonyms is the sentinel NCBI writes when a gene has no synonyms
	NoSynonyms = "-"
)

// Parser limits
const (
	// InitialLineBuffer is the starting buffer size for line scanners
	InitialLineBuffer = 64 * 1024

	// MaxLineBytes caps a single dictionary line; gene_info rows carry
	// long cross-reference columns but stay well under this
	MaxLineBytes = 1024 * 1024
)
