// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/woozymasta/pathtool"
)

// DefaultMatchTimeout bounds a single regex evaluation.
const DefaultMatchTimeout = time.Second

// RegexFilter accepts paths whose base name matches a regular expression.
//
// Expressions use Perl/.NET syntax (backreferences and lookaround included).
// A match that fails with an engine error, such as a timeout, rejects.
type RegexFilter struct {
	re   *regexp2.Regexp
	expr string
}

// Regex compiles expr with regexp2 options into a RegexFilter.
func Regex(expr string, opts regexp2.RegexOptions) (*RegexFilter, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty regex", ErrInvalidPattern)
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile regex %q: %v", ErrInvalidPattern, expr, err)
	}

	re.MatchTimeout = DefaultMatchTimeout

	return &RegexFilter{
		re:   re,
		expr: expr,
	}, nil
}

// ParseRegex compiles a delimited expression such as "%^.+\.txt$%i" or
// "/^my-file/i".
//
// The first byte is the delimiter; "(", "[", "{" and "<" close with their
// counterpart. Flags after the closing delimiter:
//   - i: case-insensitive
//   - m: multi-line anchors
//   - s: "." matches newline
//   - x: ignore pattern whitespace
//   - n: explicit capture
//   - u: accepted, input is always UTF-8
//   - A: anchored at the start of the name
//
// The ungreedy (U) and dollar-end-only (D) modifiers have no regexp2
// equivalent and are rejected with ErrInvalidPattern.
func ParseRegex(delimited string) (*RegexFilter, error) {
	expr, flags, err := splitDelimited(delimited)
	if err != nil {
		return nil, err
	}

	opts := regexp2.None
	anchored := false
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'x':
			opts |= regexp2.IgnorePatternWhitespace
		case 'n':
			opts |= regexp2.ExplicitCapture
		case 'u':
		case 'A':
			anchored = true
		default:
			return nil, fmt.Errorf("%w: unsupported regex flag %q in %q", ErrInvalidPattern, flags[i], delimited)
		}
	}

	if !anchored || expr == "" {
		return Regex(expr, opts)
	}

	f, err := Regex(`\A(?:`+expr+`)`, opts)
	if err != nil {
		return nil, err
	}

	f.expr = expr
	return f, nil
}

// Expr returns source expression without delimiters and flags.
func (f *RegexFilter) Expr() string {
	return f.expr
}

// AcceptsFile reports whether base name of path matches the expression.
func (f *RegexFilter) AcceptsFile(path string) bool {
	ok, err := f.re.MatchString(pathtool.BaseName(path))
	return err == nil && ok
}

// splitDelimited separates a delimited expression into body and flags.
func splitDelimited(src string) (string, string, error) {
	if len(src) < 2 {
		return "", "", fmt.Errorf("%w: regex %q is too short", ErrInvalidPattern, src)
	}

	open := src[0]
	if isAlphaNum(open) || open == '\\' || open == ' ' || open == '\t' {
		return "", "", fmt.Errorf("%w: regex %q has invalid delimiter", ErrInvalidPattern, src)
	}

	closing := open
	switch open {
	case '(':
		closing = ')'
	case '[':
		closing = ']'
	case '{':
		closing = '}'
	case '<':
		closing = '>'
	}

	end := -1
	for i := len(src) - 1; i > 0; i-- {
		if src[i] == closing {
			end = i
			break
		}
	}

	if end < 0 {
		return "", "", fmt.Errorf("%w: regex %q has no closing delimiter", ErrInvalidPattern, src)
	}

	return src[1:end], src[end+1:], nil
}

// isAlphaNum reports whether c is an ASCII letter or digit.
func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
