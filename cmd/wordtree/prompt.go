package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var errInputClosed = errors.New("input closed")

var (
	yesAnswer = regexp.MustCompile(`^[Yy](?:es)?$`)
	noAnswer  = regexp.MustCompile(`^[Nn]o?$`)
)

// prompter asks questions on out and reads one line of answer from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *prompter) String(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Bool asks until the answer is a yes or a no.
func (p *prompter) Bool(prompt string) (bool, error) {
	for {
		answer, err := p.String(prompt + " (Y/n)")
		if err != nil {
			return false, err
		}
		if yesAnswer.MatchString(answer) {
			return true, nil
		}
		if noAnswer.MatchString(answer) {
			return false, nil
		}
	}
}

// Int asks until the answer is a non-negative integer.
func (p *prompter) Int(prompt string) (int, error) {
	for {
		answer, err := p.String(prompt + " (Number)")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 0 {
			return n, nil
		}
	}
}
