// Copyright 2025 go-vqsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vqsort

import "github.com/ajroetker/go-highway/hwy"

// Sort sorts keys in place, ascending. It does not allocate on the sort
// path and has no side effects beyond the slice contents. The sort is
// not stable. Sorting the same or overlapping memory from multiple
// goroutines concurrently is undefined; disjoint slices are fine.
func Sort[T hwy.Lanes](keys []T) {
	SortWith(keys, Ascending[T]{})
}

// SortDescending sorts keys in place, largest first.
func SortDescending[T hwy.Lanes](keys []T) {
	SortWith(keys, Descending[T]{})
}

// SortWith sorts keys in place under ord. ord must be stateless; the
// built-in Ascending and Descending qualify, as do key+payload adapters
// implementing Order over their extracted key.
func SortWith[T hwy.Lanes](keys []T, ord Order[T]) {
	if len(keys) <= 1 {
		return
	}
	if IsSortedWith(keys, ord) {
		return
	}

	g := generatorPool.Get().(*generator)
	introSort(keys, ord, g)
	generatorPool.Put(g)
}

// IsSorted reports whether keys are in ascending order.
func IsSorted[T hwy.Lanes](keys []T) bool {
	return IsSortedWith(keys, Ascending[T]{})
}

// IsSortedWith reports whether keys are ordered under ord. Adjacent
// positions are compared a vector at a time on the vector tier.
func IsSortedWith[T hwy.Lanes](keys []T, ord Order[T]) bool {
	n := len(keys)
	if n <= 1 {
		return true
	}

	lanes := hwy.MaxLanes[T]()
	i := 0

	if activeBinding().useVector && lanes >= 2 {
		for ; i+lanes < n; i += lanes {
			cur := hwy.Load(keys[i : i+lanes])
			next := hwy.Load(keys[i+1 : i+1+lanes])
			if hwy.FindFirstTrue(ord.LessMask(next, cur)) >= 0 {
				return false
			}
		}
	}

	for ; i < n-1; i++ {
		if ord.Less(keys[i+1], keys[i]) {
			return false
		}
	}
	return true
}

// Select rearranges keys so that the key with ascending rank k sits at
// index k, everything before it sorts no later and everything after it
// sorts no earlier. Out-of-range k is a no-op.
func Select[T hwy.Lanes](keys []T, k int) {
	SelectWith(keys, k, Ascending[T]{})
}

// SelectWith is Select under an explicit order.
func SelectWith[T hwy.Lanes](keys []T, k int, ord Order[T]) {
	if k < 0 || k >= len(keys) {
		return
	}
	g := generatorPool.Get().(*generator)
	selectNth(keys, k, ord, g)
	generatorPool.Put(g)
}

// Median rearranges keys around their upper median (index len/2) and
// returns it. Panics on an empty slice, like indexing would.
func Median[T hwy.Lanes](keys []T) T {
	k := len(keys) / 2
	Select(keys, k)
	return keys[k]
}

// Implementation returns the dispatch tier the sort kernels are bound
// to, e.g. "avx2", "neon" or "scalar". The binding happens on first use
// and is fixed for the process lifetime.
func Implementation() string {
	return activeBinding().name()
}
