package responder

import (
	"log"
	"math/rand"
	"sort"
	"time"
)

const (
	// DefaultTableFile is the keyword file read by NewDefault.
	DefaultTableFile = "hashResponse.txt"
	// DefaultPoolFile is the default response file read by NewDefault.
	DefaultPoolFile = "default.txt"
)

// WordSet is the tokenized user input.
type WordSet map[string]struct{}

// NewWordSet builds a set from words. Duplicates collapse.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Add inserts word into the set.
func (s WordSet) Add(word string) {
	s[word] = struct{}{}
}

// Sorted returns the words in lexical order.
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Response describes how a reply was produced.
type Response struct {
	Text     string
	Keyword  string // matched keyword, empty on fallback
	Fallback bool
}

// Generator answers word sets from a keyword table, falling back to a random
// default response. It is not safe for concurrent fallback calls unless the
// Rand passed with WithRand is.
type Generator struct {
	table      Table
	pool       *Pool
	rnd        Rand
	normalize  func(string) string
	loadErrors []error
}

type options struct {
	rnd       Rand
	mode      BlockMode
	logger    *log.Logger
	normalize func(string) string
}

// Option configures New.
type Option func(*options)

// WithRand sets the random source for fallback selection.
func WithRand(r Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithSeed seeds a private math/rand source, for reproducible fallbacks.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = rand.New(rand.NewSource(seed)) }
}

// WithBlockMode selects how a trailing keyword block is handled.
func WithBlockMode(mode BlockMode) Option {
	return func(o *options) { o.mode = mode }
}

// WithLogger sets where load failures are reported. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithKeyNormalizer rewrites every table key with fn at load time and every
// input word with fn at lookup time, so both sides compare in one form.
// Without it keys match exactly as written.
func WithKeyNormalizer(fn func(string) string) Option {
	return func(o *options) { o.normalize = fn }
}

// New loads both response files and returns a ready generator. Load failures
// are logged and degrade to an empty table or the sentinel pool; New never
// fails.
func New(tablePath, poolPath string, opts ...Option) *Generator {
	o := options{mode: StrictBlocks, logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Generator{rnd: o.rnd, normalize: o.normalize}

	table, err := LoadTable(tablePath, o.mode)
	if err != nil {
		o.logger.Printf("Warning: keyword responses unavailable: %v", err)
		g.loadErrors = append(g.loadErrors, err)
	}
	if o.normalize != nil {
		table = table.normalized(o.normalize)
	}
	g.table = table

	pool, err := LoadPool(poolPath)
	if err != nil {
		o.logger.Printf("Warning: default responses unavailable: %v", err)
		g.loadErrors = append(g.loadErrors, err)
	}
	g.pool = pool

	o.logger.Printf("Loaded %d keywords (%s blocks) and %d default responses",
		len(g.table), o.mode, g.pool.Len())
	return g
}

// NewDefault is New with DefaultTableFile and DefaultPoolFile in the working
// directory.
func NewDefault(opts ...Option) *Generator {
	return New(DefaultTableFile, DefaultPoolFile, opts...)
}

// Generate returns the response for the first known word, or a random
// default response when none of the words is a keyword.
func (g *Generator) Generate(words WordSet) string {
	return g.Respond(words).Text
}

// Respond is Generate with match details. Words are checked in sorted order
// and the first hit wins. Only the fallback path draws from the random source.
func (g *Generator) Respond(words WordSet) Response {
	for _, word := range words.Sorted() {
		if g.normalize != nil {
			word = g.normalize(word)
		}
		if text, ok := g.table.Lookup(word); ok {
			return Response{Text: text, Keyword: word}
		}
	}
	return Response{Text: g.pool.Pick(g.rnd), Fallback: true}
}

// Keywords returns every known keyword, sorted.
func (g *Generator) Keywords() []string {
	return g.table.Keywords()
}

// Defaults returns the fallback responses in file order.
func (g *Generator) Defaults() []string {
	return g.pool.Responses()
}

// LoadErrors returns the errors absorbed while loading, if any.
func (g *Generator) LoadErrors() []error {
	return g.loadErrors
}
