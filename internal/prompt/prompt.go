// Package prompt reads interactive line input from the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// Reader reads single lines from an input stream, echoing a prompt to
// an output stream first. Keyboard echo is not masked.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes promptText and blocks until one full line arrives.
// The trailing newline is consumed and stripped. A final line without a
// newline before EOF is still returned; EOF with no data is an error.
func (r *Reader) ReadLine(promptText string) (string, error) {
	fmt.Fprint(r.out, promptText)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return terminal.IsTerminal(int(os.Stdin.Fd()))
}
