package responder

import "fmt"

// LoadError reports a response file that could not be opened or read.
// The generator logs it and continues with an empty table or the sentinel pool.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
