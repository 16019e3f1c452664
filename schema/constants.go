package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching and tracking.
	DatabaseBackend string

	// Formula identifies a readability formula.
	Formula string

	// TaggerKind selects the morphological tagger implementation.
	TaggerKind string

	// SentenceSource selects where the Lee formula takes sentence lengths from.
	SentenceSource string

	// SortKey selects how title results are ordered in reports.
	SortKey string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All readability formulas supported.
const (
	TateisiFormula Formula = "tateisi"
	LeeFormula     Formula = "lee"
)

// All taggers supported.
const (
	KagomeTagger TaggerKind = "kagome" // default
	MeCabTagger  TaggerKind = "mecab"
)

// All sentence length sources for the Lee formula.
const (
	TateisiSentences SentenceSource = "tateisi" // default
	TokenSentences   SentenceSource = "tokens"
)

// All sort keys supported.
const (
	SortByTitle   SortKey = "title" // default
	SortByTateisi SortKey = "tateisi"
	SortByLee     SortKey = "lee"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllFormulas lists the formulas in report order.
var AllFormulas = []Formula{TateisiFormula, LeeFormula}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidTaggers lists all valid tagger kinds.
var ValidTaggers = map[TaggerKind]struct{}{
	KagomeTagger: {},
	MeCabTagger:  {},
}

// ValidSentenceSources lists all valid sentence sources.
var ValidSentenceSources = map[SentenceSource]struct{}{
	TateisiSentences: {},
	TokenSentences:   {},
}

// ValidSortKeys lists all valid sort keys.
var ValidSortKeys = map[SortKey]struct{}{
	SortByTitle:   {},
	SortByTateisi: {},
	SortByLee:     {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
