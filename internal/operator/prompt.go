// Package operator reads measured distances typed in by the person running
// a node. Re-prompting on invalid input lives here so the protocol and
// solver only ever see non-negative numbers.
package operator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("operator: input closed")

// Prompter asks for distances on out and reads answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Distance prompts for one labelled distance in metres, re-prompting until
// the operator supplies a non-negative number.
func (p *Prompter) Distance(label string) (float64, error) {
	for {
		fmt.Fprintf(p.out, "Enter %s (metres): ", label)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("operator: read input: %w", err)
			}
			return 0, ErrInputClosed
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(p.in.Text()), 64)
		if err != nil {
			fmt.Fprintln(p.out, "  Invalid input. Please enter a number.")
			continue
		}
		if val < 0 {
			fmt.Fprintln(p.out, "  Distance cannot be negative. Try again.")
			continue
		}
		return val, nil
	}
}
