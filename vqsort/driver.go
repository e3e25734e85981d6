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

import (
	"math/bits"

	"github.com/ajroetker/go-highway/hwy"
)

// span is one pending sub-range on the driver's work list, with the
// recursion budget it was created under. Spans never escape introSort.
type span struct {
	lo, hi int
	budget int
}

// maxSpans bounds the work list. We always continue with the smaller
// half and push the larger one, so pending spans shrink geometrically
// and 64 entries cover any slice addressable on a 64-bit platform.
const maxSpans = 64

// depthBudget returns the recursion bound 2*floor(log2(n))+1. Exceeding
// it means the pivots were bad enough (adversarial or very unlucky) that
// quicksort is no longer worth it for that sub-range.
func depthBudget(n int) int {
	return 2*(bits.Len(uint(n))-1) + 1
}

// introSort sorts data with the work-list introsort driver. Every
// iteration either terminates a span (network, heapsort, constant range)
// or strictly shrinks it, so termination does not depend on pivot
// quality.
func introSort[T hwy.Lanes](data []T, ord Order[T], g *generator) {
	n := len(data)
	if n <= 1 {
		return
	}

	var stack [maxSpans]span
	stack[0] = span{lo: 0, hi: n, budget: depthBudget(n)}
	top := 1

	for top > 0 {
		top--
		lo, hi, budget := stack[top].lo, stack[top].hi, stack[top].budget

		for {
			length := hi - lo
			if length <= networkThreshold {
				sortSmall(data[lo:hi], ord)
				break
			}
			if budget == 0 {
				heapSort(data[lo:hi], ord)
				break
			}
			budget--

			pivot, allEquiv := choosePivot(data[lo:hi], ord, g)
			if allEquiv && rangeAllEquiv(data[lo:hi], pivot, ord) {
				// Constant range: already sorted.
				break
			}

			split := partition(data[lo:hi], pivot, ord)
			if split == 0 {
				// The sampled median was the minimum of the range.
				// Strip the keys equivalent to it and keep going on
				// the rest; at least one key is stripped.
				lo += equalPrefix(data[lo:hi], pivot, ord)
				continue
			}

			// Continue with the smaller half, push the larger one.
			mid := lo + split
			if split <= length-split {
				stack[top] = span{lo: mid, hi: hi, budget: budget}
				hi = mid
			} else {
				stack[top] = span{lo: lo, hi: mid, budget: budget}
				lo = mid
			}
			top++
		}
	}
}

// selectNth places the key with rank k at index k, with every key before
// it sorting no later and every key after it sorting no earlier. Shares
// the pivot selector, partitioner and budget fallback with introSort but
// only descends into the half containing k.
func selectNth[T hwy.Lanes](data []T, k int, ord Order[T], g *generator) {
	lo, hi := 0, len(data)
	budget := depthBudget(hi)

	for {
		length := hi - lo
		if length <= networkThreshold || budget == 0 {
			sortRangeTerminal(data[lo:hi], ord)
			return
		}
		budget--

		pivot, allEquiv := choosePivot(data[lo:hi], ord, g)
		if allEquiv && rangeAllEquiv(data[lo:hi], pivot, ord) {
			return
		}

		split := partition(data[lo:hi], pivot, ord)
		if split == 0 {
			eq := equalPrefix(data[lo:hi], pivot, ord)
			if k < lo+eq {
				// k landed inside the equivalent prefix: done.
				return
			}
			lo += eq
			continue
		}

		if k < lo+split {
			hi = lo + split
		} else {
			lo += split
		}
	}
}

// sortRangeTerminal finishes a small or budget-exhausted range for
// selectNth.
func sortRangeTerminal[T hwy.Lanes](data []T, ord Order[T]) {
	if len(data) <= networkThreshold {
		sortSmall(data, ord)
		return
	}
	heapSort(data, ord)
}
