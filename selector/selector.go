// Package selector asks the user to choose one of the listed search results.
package selector

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"

	"wiki/search"
)

const (
	promptLabel    = "Pick a page: "
	invalidMessage = "Invalid input, please try again."
)

// Display is what the selector needs from the output side.
type Display interface {
	Prompt(label string)
	Error(msg string)
}

// Selector reads one line per attempt until the user quits or names a
// valid rank. There is no retry limit.
type Selector struct {
	in  *bufio.Reader
	out Display
}

// New creates a selector reading lines from in.
func New(in io.Reader, out Display) *Selector {
	return &Selector{in: bufio.NewReader(in), out: out}
}

// Pick returns the chosen result. The boolean is false when the user quit
// with "q" or the input ended.
func (s *Selector) Pick(results []search.Result) (search.Result, bool, error) {
	for {
		s.out.Prompt(promptLabel)

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return search.Result{}, false, errors.Wrap(err, "reading selection")
		}
		eof := err != nil

		choice := strings.TrimSpace(line)
		if strings.EqualFold(choice, "q") {
			return search.Result{}, false, nil
		}
		if i, valid := parseRank(choice, len(results)); valid {
			return results[i-1], true, nil
		}
		if eof {
			return search.Result{}, false, nil
		}
		s.out.Error(invalidMessage)
	}
}

// parseRank accepts unsigned decimal input within [1, n].
func parseRank(s string, n int) (int, bool) {
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil || i < 1 || i > n {
		return 0, false
	}
	return i, true
}
