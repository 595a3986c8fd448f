// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Kind values accepted by Spec.Type.
const (
	KindFile      = "file"
	KindDirectory = "dir"
)

// Spec is a declarative filter tree, typically decoded from YAML:
//
//	- glob: "*.php"
//	- not:
//	    type: dir
//	- or:
//	    - regex: "%^read%i"
//	    - extensions: [md, txt]
//
// Exactly one field must be set per node.
type Spec struct {
	// Glob is a shell glob matched against the base name.
	Glob string `json:"glob,omitempty" yaml:"glob,omitempty"`
	// Regex is a delimited regex, see ParseRegex.
	Regex string `json:"regex,omitempty" yaml:"regex,omitempty"`
	// Type is KindFile or KindDirectory.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Extensions is an extension set, see Extensions.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Not negates one child.
	Not *Spec `json:"not,omitempty" yaml:"not,omitempty"`
	// And requires every child to accept.
	And []Spec `json:"and,omitempty" yaml:"and,omitempty"`
	// Or requires at least one child to accept.
	Or []Spec `json:"or,omitempty" yaml:"or,omitempty"`
	// Xor requires exactly one of its two children to accept.
	Xor []Spec `json:"xor,omitempty" yaml:"xor,omitempty"`
}

// Build compiles spec into a Filter. Kind filters stat paths on fsys;
// nil fsys uses the OS filesystem.
func (s Spec) Build(fsys afero.Fs) (Filter, error) {
	if n := s.kinds(); n != 1 {
		return nil, fmt.Errorf("%w: spec node must set exactly one field, got %d", ErrInvalidFilter, n)
	}

	switch {
	case s.Glob != "":
		return Glob(s.Glob)
	case s.Regex != "":
		return ParseRegex(s.Regex)
	case s.Type != "":
		switch s.Type {
		case KindFile:
			return OnlyFile(fsys), nil
		case KindDirectory:
			return OnlyDirectory(fsys), nil
		default:
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidFilter, s.Type)
		}
	case len(s.Extensions) > 0:
		f := Extensions(s.Extensions)
		if f.Len() == 0 {
			return nil, fmt.Errorf("%w: empty extension list", ErrInvalidFilter)
		}

		return f, nil
	case s.Not != nil:
		child, err := s.Not.Build(fsys)
		if err != nil {
			return nil, fmt.Errorf("not: %w", err)
		}

		return Not(child), nil
	case len(s.And) > 0:
		children, err := BuildSpecs(s.And, fsys)
		if err != nil {
			return nil, fmt.Errorf("and: %w", err)
		}

		return All(children...), nil
	case len(s.Or) > 0:
		children, err := BuildSpecs(s.Or, fsys)
		if err != nil {
			return nil, fmt.Errorf("or: %w", err)
		}

		return Any(children...), nil
	default:
		if len(s.Xor) != 2 {
			return nil, fmt.Errorf("%w: xor needs exactly 2 children, got %d", ErrInvalidFilter, len(s.Xor))
		}

		children, err := BuildSpecs(s.Xor, fsys)
		if err != nil {
			return nil, fmt.Errorf("xor: %w", err)
		}

		return Xor(children[0], children[1]), nil
	}
}

// kinds counts populated fields.
func (s Spec) kinds() int {
	n := 0
	for _, set := range []bool{
		s.Glob != "",
		s.Regex != "",
		s.Type != "",
		len(s.Extensions) > 0,
		s.Not != nil,
		len(s.And) > 0,
		len(s.Or) > 0,
		len(s.Xor) > 0,
	} {
		if set {
			n++
		}
	}

	return n
}

// BuildSpecs compiles specs preserving input order.
// Every invalid spec is reported in the returned error.
func BuildSpecs(specs []Spec, fsys afero.Fs) ([]Filter, error) {
	var merr *multierror.Error

	out := make([]Filter, 0, len(specs))
	for i := range specs {
		f, err := specs[i].Build(fsys)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("spec %d: %w", i, err))
			continue
		}

		out = append(out, f)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// ParseSpecs decodes a YAML list of specs from reader.
// Empty input yields no specs.
func ParseSpecs(r io.Reader) ([]Spec, error) {
	var specs []Spec

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: decode specs: %v", ErrInvalidFilter, err)
	}

	return specs, nil
}

// LoadSpecsFile reads a YAML spec file from fsys and builds its filters.
// Nil fsys uses the OS filesystem for both reading and kind filters.
func LoadSpecsFile(fsys afero.Fs, path string) ([]Filter, error) {
	fsys = orOsFs(fsys)

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open specs file: %w", err)
	}
	defer func() { _ = f.Close() }()

	specs, err := ParseSpecs(f)
	if err != nil {
		return nil, fmt.Errorf("parse specs file %s: %w", path, err)
	}

	return BuildSpecs(specs, fsys)
}
