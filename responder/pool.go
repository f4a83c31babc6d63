package responder

import (
	"io"
	"os"
	"strings"
)

// FallbackResponse is used when the default file yields no responses.
const FallbackResponse = "Could you elaborate on that?"

// Rand is the random source used for fallback selection. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pool holds the fallback responses. It is never empty.
type Pool struct {
	responses []string
}

// NewPool builds a pool from responses, substituting FallbackResponse when
// responses is empty.
func NewPool(responses []string) *Pool {
	if len(responses) == 0 {
		return &Pool{responses: []string{FallbackResponse}}
	}
	cp := make([]string, len(responses))
	copy(cp, responses)
	return &Pool{responses: cp}
}

// ParsePool reads paragraphs separated by blank lines. The lines of a
// paragraph are concatenated without a separator.
func ParsePool(r io.Reader) ([]string, error) {
	var (
		responses []string
		paragraph strings.Builder
	)
	flush := func() {
		if paragraph.Len() > 0 {
			responses = append(responses, paragraph.String())
			paragraph.Reset()
		}
	}

	err := eachLine(r, func(line string) {
		if strings.TrimSpace(line) == "" {
			flush()
			return
		}
		paragraph.WriteString(line)
	})
	if err != nil {
		return responses, err
	}
	flush()
	return responses, nil
}

// LoadPool parses the default response file at path. The pool is always
// usable; on failure it holds only FallbackResponse and err is a *LoadError.
func LoadPool(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewPool(nil), &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	responses, err := ParsePool(f)
	if err != nil {
		return NewPool(nil), &LoadError{Path: path, Err: err}
	}
	return NewPool(responses), nil
}

// Pick returns a response chosen uniformly at random, consuming one draw
// from r.
func (p *Pool) Pick(r Rand) string {
	return p.responses[r.Intn(len(p.responses))]
}

// Len reports the number of responses in the pool.
func (p *Pool) Len() int {
	return len(p.responses)
}

// Responses returns a copy of the pool contents in file order.
func (p *Pool) Responses() []string {
	cp := make([]string, len(p.responses))
	copy(cp, p.responses)
	return cp
}
