package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptOverwrite asks whether name should be overwritten and reads one
// line of input. Empty input defaults to "No"; only "y" and "yes" (any
// case) accept. EOF and read errors decline.
func promptOverwrite(w io.Writer, r io.Reader, name string) bool {
	fmt.Fprintf(w, "? %s already exists. Overwrite? [y/N] ", name)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
