package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// runChat reads lines from in and writes a reply for each to out until the
// user says bye or input ends.
func runChat(cache *ResponderCache, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the help desk. Type 'bye' to exit.")
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.ToLower(input) == "bye" {
			fmt.Fprintln(out, "Nice talking to you. Bye...")
			break
		}

		resp := cache.Generator().Respond(tokenize(input))
		recordResponse(resp.Fallback)
		fmt.Fprintln(out, resp.Text)
	}
	return scanner.Err()
}
