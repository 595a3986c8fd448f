// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathtool

/*
Package filefilter implements composable filename predicates.

Every predicate implements `Filter` and answers one question: does it accept
a given path. Available predicates:
  - shell glob against the base name (`Glob`)
  - regular expression against the base name (`Regex`, `ParseRegex`)
  - extension set (`Extensions`)
  - filesystem kind (`OnlyFile`, `OnlyDirectory`)
  - arbitrary callback (`Func`)
  - boolean compounds (`And`, `Or`, `Xor`, `Not`, `All`, `Any`)

Filters can also be built from strings (`FromString`: a leading "%" selects a
delimited regex, anything else is a glob), from line-based filter files
(`ParseFilters`, `LoadFile`) and from YAML trees (`Spec`, `ParseSpecs`).
`Apply` narrows a path sequence down to entries accepted by all filters.
*/
package filefilter
