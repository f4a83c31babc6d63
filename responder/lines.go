package responder

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// eachLine calls fn for every line of r with the line terminator ("\n" or
// "\r\n") removed. Lines may be any length. A final line without a
// terminator is still delivered.
func eachLine(r io.Reader, fn func(line string)) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			fn(strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
