package responder

import (
	"io"
	"os"
	"sort"
	"strings"
)

// keySeparator splits a key line into keywords. Keywords are not trimmed.
const keySeparator = ", "

// BlockMode controls what happens to a block that is still open at end of file.
type BlockMode int

const (
	// StrictBlocks drops a trailing block that has no blank line after it.
	StrictBlocks BlockMode = iota
	// LenientBlocks flushes the trailing block at end of file.
	LenientBlocks
)

func (m BlockMode) String() string {
	if m == LenientBlocks {
		return "lenient"
	}
	return "strict"
}

// Table maps a keyword to its canned response. Several keywords may share
// one response.
type Table map[string]string

// Lookup returns the response for word, if any.
func (t Table) Lookup(word string) (string, bool) {
	response, ok := t[word]
	return response, ok
}

// normalized returns a copy of t with every key passed through fn. When two
// keys collapse to one, the lexically later original wins.
func (t Table) normalized(fn func(string) string) Table {
	out := make(Table, len(t))
	for _, key := range t.Keywords() {
		out[fn(key)] = t[key]
	}
	return out
}

// Keywords returns the table keys in sorted order.
func (t Table) Keywords() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// blockParser accumulates one block at a time:
//
//	wifi, internet
//	Check your router and modem connections.
//	<blank line>
type blockParser struct {
	table   Table
	keyLine string
	lines   []string
	open    bool
}

func (p *blockParser) feed(line string) {
	if strings.TrimSpace(line) == "" {
		p.flush()
		return
	}
	if !p.open {
		p.keyLine = line
		p.lines = p.lines[:0]
		p.open = true
		return
	}
	p.lines = append(p.lines, line)
}

func (p *blockParser) flush() {
	if !p.open {
		return
	}
	response := strings.Join(p.lines, "\n")
	for _, key := range strings.Split(p.keyLine, keySeparator) {
		p.table[key] = response
	}
	p.open = false
}

// ParseTable reads keyword blocks from r. Blocks are closed by a blank line;
// in StrictBlocks mode a block still open at EOF is discarded. On a read
// error the entries flushed so far are returned along with the error.
func ParseTable(r io.Reader, mode BlockMode) (Table, error) {
	p := &blockParser{table: make(Table)}

	if err := eachLine(r, p.feed); err != nil {
		return p.table, err
	}

	if mode == LenientBlocks {
		p.flush()
	}
	return p.table, nil
}

// LoadTable parses the keyword file at path. The returned table is never nil;
// when the file cannot be opened or read it is empty and err is a *LoadError.
func LoadTable(path string, mode BlockMode) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return make(Table), &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := ParseTable(f, mode)
	if err != nil {
		return make(Table), &LoadError{Path: path, Err: err}
	}
	return table, nil
}
