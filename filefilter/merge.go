// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

package filefilter

// Merge merges filter slices preserving input order.
// Nil filters are dropped.
func Merge(filterSets ...[]Filter) []Filter {
	total := 0
	for _, set := range filterSets {
		total += len(set)
	}

	out := make([]Filter, 0, total)
	for _, set := range filterSets {
		for _, f := range set {
			if f != nil {
				out = append(out, f)
			}
		}
	}

	return out
}
