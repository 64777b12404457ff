// File: promptx.go
// Title: Console Prompt
// Description: Asks for a line of input until it can be transformed into
//              the requested value.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Initial implementation

// Package promptx reads validated values from an interactive console.
package promptx

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/LukasForst/katlib/core/errors"
)

// Prompter reads answers line by line from one input
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes text and returns the next line without its line ending.
// The error wraps io.EOF once the input is exhausted.
func (p *Prompter) Ask(text string) (string, error) {
	if _, err := fmt.Fprint(p.out, text); err != nil {
		return "", errors.OperationFailed("promptx", "Ask", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.OperationFailed("promptx", "Ask", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt asks with p until transform accepts the answer. After every
// rejected answer the message returned by onError is printed; a nil onError
// prints the error itself.
func Prompt[R any](p *Prompter, text string, onError func(error) string, transform func(string) (R, error)) (R, error) {
	var zero R
	for {
		answer, err := p.Ask(text)
		if err != nil {
			return zero, err
		}

		value, err := transform(answer)
		if err == nil {
			return value, nil
		}

		message := err.Error()
		if onError != nil {
			message = onError(err)
		}
		if _, werr := fmt.Fprintln(p.out, message); werr != nil {
			return zero, errors.OperationFailed("promptx", "Prompt", werr)
		}
	}
}
