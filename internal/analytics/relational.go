// GameStats - Game Platform Catalog and Review Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamestats

package analytics

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Joined pairs a left row with a right row. Matched is false for left rows
// kept by LeftJoin without a partner; Right is then the zero value.
type Joined[L, R any] struct {
	Left    L
	Right   R
	Matched bool
}

// InnerJoin returns one pair per (left, right) with equal keys, in left
// order and then right order. Rows whose key function reports ok=false never
// match.
func InnerJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) (K, bool), rightKey func(R) (K, bool)) []Joined[L, R] {
	return join(left, right, leftKey, rightKey, false)
}

// LeftJoin is InnerJoin that also keeps unmatched left rows with Matched=false.
func LeftJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) (K, bool), rightKey func(R) (K, bool)) []Joined[L, R] {
	return join(left, right, leftKey, rightKey, true)
}

func join[L, R any, K comparable](left []L, right []R, leftKey func(L) (K, bool), rightKey func(R) (K, bool), keepUnmatched bool) []Joined[L, R] {
	if len(left) == 0 {
		return nil
	}

	index := make(map[K][]int, len(right))
	for i := range right {
		if k, ok := rightKey(right[i]); ok {
			index[k] = append(index[k], i)
		}
	}

	out := make([]Joined[L, R], 0, len(left))
	for _, l := range left {
		var matches []int
		if k, ok := leftKey(l); ok {
			matches = index[k]
		}
		if len(matches) == 0 {
			if keepUnmatched {
				out = append(out, Joined[L, R]{Left: l})
			}
			continue
		}
		for _, ri := range matches {
			out = append(out, Joined[L, R]{Left: l, Right: right[ri], Matched: true})
		}
	}
	return out
}

// Group is the set of rows sharing Key.
type Group[K comparable, T any] struct {
	Key  K
	Rows []T
}

// GroupBy partitions rows by key in first-occurrence order. Rows whose key
// function reports ok=false are dropped.
func GroupBy[T any, K comparable](rows []T, key func(T) (K, bool)) []Group[K, T] {
	pos := make(map[K]int)
	var groups []Group[K, T]
	for _, r := range rows {
		k, ok := key(r)
		if !ok {
			continue
		}
		i, seen := pos[k]
		if !seen {
			i = len(groups)
			pos[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// SortGroups orders groups by ascending key.
func SortGroups[K cmp.Ordered, T any](groups []Group[K, T]) {
	slices.SortStableFunc(groups, func(a, b Group[K, T]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// Filter returns the rows for which keep is true, in order.
func Filter[T any](rows []T, keep func(T) bool) []T {
	var out []T
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many rows satisfy pred. Empty input counts 0.
func Count[T any](rows []T, pred func(T) bool) int {
	n := 0
	for _, r := range rows {
		if pred(r) {
			n++
		}
	}
	return n
}

// SumInt adds value over rows. Empty input sums to 0.
func SumInt[T any](rows []T, value func(T) int64) int64 {
	var total int64
	for _, r := range rows {
		total += value(r)
	}
	return total
}

// SumFloat adds the values for which value reports ok=true, skipping the
// rest the way a numeric column skips missing entries. Empty input sums to 0.
func SumFloat[T any](rows []T, value func(T) (float64, bool)) float64 {
	vals := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := value(r); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return 0
	}
	return floats.Sum(vals)
}

// Max returns the largest value among rows where value reports ok=true.
// It reports ok=false when no such row exists.
func Max[T any, V cmp.Ordered](rows []T, value func(T) (V, bool)) (V, bool) {
	var best V
	found := false
	for _, r := range rows {
		v, ok := value(r)
		if !ok {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}
	return best, found
}

// Ranked is a key with a score.
type Ranked[K cmp.Ordered, V cmp.Ordered] struct {
	Key   K
	Value V
}

// TopK returns at most k entries ordered by descending value, ties broken by
// ascending key. The input slice is not modified.
func TopK[K cmp.Ordered, V cmp.Ordered](entries []Ranked[K, V], k int) []Ranked[K, V] {
	if k <= 0 || len(entries) == 0 {
		return nil
	}
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Ranked[K, V]) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
