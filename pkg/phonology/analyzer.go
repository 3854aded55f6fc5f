package phonology

import "fmt"

// DefaultCacheSize is the number of fingerprints memoized by default.
const DefaultCacheSize = 10_000

// Config controls how an Analyzer loads data and fingerprints segments.
type Config struct {
	SymbolColumn   string
	Tokens         TokenTable
	IgnoreFeatures []string
	CacheSize      int
	Normalizers    NormalizerConfig
	Observer       Observer
}

// DefaultConfig returns the configuration matching the bundled data files.
func DefaultConfig() Config {
	return Config{
		SymbolColumn: DefaultSymbolColumn,
		Tokens:       DefaultTokens(),
		CacheSize:    DefaultCacheSize,
		Normalizers:  DefaultNormalizerConfig(),
	}
}

// Result holds both analysis passes: undecorated segments alone, and
// segments together with every applicable diacritic.
type Result struct {
	BasePairs      []Pair
	BaseCollisions []Collision
	Pairs          []Pair
	Collisions     []Collision
	Issues         []*MissingFeatureError
}

// Analyzer runs the collision analysis over one feature matrix and catalog.
type Analyzer struct {
	matrix *FeatureMatrix
	vocab  *Vocabulary
	engine *Engine
	tokens TokenTable
	issues []*MissingFeatureError
}

// NewAnalyzer loads the feature matrix and diacritic catalog and prepares the
// fingerprinting chain.
func NewAnalyzer(matrixPath, catalogPath string, cfg Config) (*Analyzer, error) {
	matrix, err := LoadFeatureMatrix(matrixPath, cfg.SymbolColumn)
	if err != nil {
		return nil, err
	}
	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	return NewAnalyzerFromData(matrix, catalog, cfg)
}

// NewAnalyzerFromData builds an analyzer from already loaded data. The
// matrix is checked against the token table up front so that a malformed
// row aborts before any pair is generated.
func NewAnalyzerFromData(matrix *FeatureMatrix, catalog Catalog, cfg Config) (*Analyzer, error) {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = DefaultTokens()
	}
	if _, err := matrix.Segments(tokens); err != nil {
		return nil, err
	}

	vocab, err := NewVocabulary(matrix.Features)
	if err != nil {
		return nil, fmt.Errorf("build feature vocabulary: %w", err)
	}
	resolved, issues := catalog.Resolve(vocab)

	var fp Fingerprinter = NewVocabularyFingerprinter(vocab)
	fp = NewMaskedFingerprinter(fp, cfg.IgnoreFeatures)
	fp = NewCachedFingerprinter(fp, cfg.CacheSize)

	engine := NewEngine(resolved, fp)
	engine.Normalizer = NewNormalizerFromConfig(cfg.Normalizers)
	engine.Observer = cfg.Observer

	return &Analyzer{
		matrix: matrix,
		vocab:  vocab,
		engine: engine,
		tokens: tokens,
		issues: issues,
	}, nil
}

// BasePass fingerprints every segment without diacritics. The observer is
// not called; the diacritic pass repeats every base pair.
func (a *Analyzer) BasePass() ([]Pair, error) {
	observer := a.engine.Observer
	a.engine.Observer = nil
	defer func() { a.engine.Observer = observer }()

	return a.engine.BasePairs(a.matrix, a.tokens)
}

// DiacriticPass fingerprints every segment alone and with every applicable
// diacritic.
func (a *Analyzer) DiacriticPass() ([]Pair, error) {
	return a.engine.Run(a.matrix, a.tokens)
}

// Analyze runs both passes and detects collisions in each.
func (a *Analyzer) Analyze() (*Result, error) {
	basePairs, err := a.BasePass()
	if err != nil {
		return nil, err
	}
	pairs, err := a.DiacriticPass()
	if err != nil {
		return nil, err
	}

	return &Result{
		BasePairs:      basePairs,
		BaseCollisions: FindCollisions(basePairs),
		Pairs:          pairs,
		Collisions:     FindCollisions(pairs),
		Issues:         a.issues,
	}, nil
}

// Matrix returns the loaded feature matrix.
func (a *Analyzer) Matrix() *FeatureMatrix {
	return a.matrix
}

// Catalog returns the catalog after feature resolution.
func (a *Analyzer) Catalog() Catalog {
	return a.engine.Catalog
}

// Vocabulary returns the feature vocabulary of the matrix.
func (a *Analyzer) Vocabulary() *Vocabulary {
	return a.vocab
}

// Engine returns the composition engine used by Analyze.
func (a *Analyzer) Engine() *Engine {
	return a.engine
}

// Issues returns the unknown feature references found in the catalog.
func (a *Analyzer) Issues() []*MissingFeatureError {
	return a.issues
}

// Close releases the vocabulary FST.
func (a *Analyzer) Close() error {
	return a.vocab.Close()
}
