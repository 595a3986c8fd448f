// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

// A nil child in any compound never accepts.

// AndFilter accepts when both children accept.
type AndFilter struct {
	Left  Filter
	Right Filter
}

// OrFilter accepts when at least one child accepts.
type OrFilter struct {
	Left  Filter
	Right Filter
}

// XorFilter accepts when exactly one child accepts.
type XorFilter struct {
	Left  Filter
	Right Filter
}

// NotFilter negates its child.
type NotFilter struct {
	Filter Filter
}

// And combines two filters with logical AND.
func And(left, right Filter) *AndFilter {
	return &AndFilter{Left: left, Right: right}
}

// Or combines two filters with logical OR.
func Or(left, right Filter) *OrFilter {
	return &OrFilter{Left: left, Right: right}
}

// Xor combines two filters with logical XOR.
func Xor(left, right Filter) *XorFilter {
	return &XorFilter{Left: left, Right: right}
}

// Not negates a filter.
func Not(f Filter) *NotFilter {
	return &NotFilter{Filter: f}
}

// AcceptsFile implements Filter.
func (f *AndFilter) AcceptsFile(path string) bool {
	return accepts(f.Left, path) && accepts(f.Right, path)
}

// AcceptsFile implements Filter.
func (f *OrFilter) AcceptsFile(path string) bool {
	return accepts(f.Left, path) || accepts(f.Right, path)
}

// AcceptsFile implements Filter.
func (f *XorFilter) AcceptsFile(path string) bool {
	return accepts(f.Left, path) != accepts(f.Right, path)
}

// AcceptsFile implements Filter.
func (f *NotFilter) AcceptsFile(path string) bool {
	return !accepts(f.Filter, path)
}

// All folds filters into a left-leaning AND chain preserving input order.
// No filters accept everything.
func All(filters ...Filter) Filter {
	if len(filters) == 0 {
		return Func(func(string) bool { return true })
	}

	out := filters[0]
	for _, f := range filters[1:] {
		out = And(out, f)
	}

	return out
}

// Any folds filters into a left-leaning OR chain preserving input order.
// No filters accept nothing.
func Any(filters ...Filter) Filter {
	if len(filters) == 0 {
		return Func(func(string) bool { return false })
	}

	out := filters[0]
	for _, f := range filters[1:] {
		out = Or(out, f)
	}

	return out
}
