// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// RegexPrefix marks a filter string as a delimited regex ("%^a.+%i").
const RegexPrefix = '%'

// FromString converts one filter string into a Filter.
// A string starting with RegexPrefix is parsed with ParseRegex using "%" as
// delimiter, any other string is a glob.
func FromString(s string) (Filter, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty filter string", ErrInvalidFilter)
	}

	if s[0] == RegexPrefix {
		return ParseRegex(s)
	}

	return Glob(s)
}

// FromStrings converts filter strings preserving input order.
// Every invalid string is reported in the returned error.
func FromStrings(specs ...string) ([]Filter, error) {
	var merr *multierror.Error

	out := make([]Filter, 0, len(specs))
	for i, s := range specs {
		f, err := FromString(s)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("filter %d: %w", i, err))
			continue
		}

		out = append(out, f)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// FromValues converts mixed filter input preserving input order.
//
// Accepted values: Filter, string (see FromString) and func(string) bool.
// Nil values are skipped.
func FromValues(values ...any) ([]Filter, error) {
	var merr *multierror.Error

	out := make([]Filter, 0, len(values))
	for i, v := range values {
		switch value := v.(type) {
		case nil:
			continue
		case Filter:
			out = append(out, value)
		case string:
			f, err := FromString(value)
			if err != nil {
				merr = multierror.Append(merr, fmt.Errorf("filter %d: %w", i, err))
				continue
			}

			out = append(out, f)
		case func(string) bool:
			out = append(out, Func(value))
		default:
			merr = multierror.Append(merr, fmt.Errorf("filter %d: %w: unsupported type %T", i, ErrInvalidFilter, v))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// ParseFilters parses line-based filters from reader.
//
// Semantics:
// - blank lines and comments are ignored
// - "!" negates the filter on the rest of the line
// - other lines go through FromString
// - "\#" and "\!" escape leading comment/negation tokens
func ParseFilters(r io.Reader) ([]Filter, error) {
	s := bufio.NewScanner(r)
	filters := make([]Filter, 0, 16)

	var merr *multierror.Error
	lineNo := 0
	for s.Scan() {
		lineNo++

		line := strings.TrimRight(s.Text(), "\r")
		line = trimTrailingSpaces(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = line[1:]
		} else if strings.HasPrefix(line, `\!`) {
			line = line[1:]
		}

		if line == "" {
			continue
		}

		f, err := FromString(line)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}

		if negate {
			f = Not(f)
		}

		filters = append(filters, f)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan filters: %w", err)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return filters, nil
}

// ParseFiltersString parses filters from string input.
func ParseFiltersString(src string) ([]Filter, error) {
	return ParseFilters(strings.NewReader(src))
}

// trimTrailingSpaces removes trailing spaces unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			s = s[:len(s)-2] + s[len(s)-1:]
			break
		}

		s = s[:len(s)-1]
	}

	return s
}
