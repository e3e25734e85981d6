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

// networkThreshold is the largest sub-range the sorting network handles.
// 32 keys is two full AVX-512 vectors of uint64 and four AVX2 ones; above
// this, network depth grows faster than partitioning cost shrinks.
const networkThreshold = 32

// networkSchedule[w] is the fixed compare-exchange sequence of Batcher's
// odd-even merge sort for block width w. Only the power-of-two widths
// 2..networkThreshold are populated. The schedule is selected by length
// alone; nothing in the network body depends on key values.
var networkSchedule [networkThreshold + 1][][2]uint8

func init() {
	for w := 2; w <= networkThreshold; w *= 2 {
		networkSchedule[w] = oddEvenMergeSort(0, w, nil)
	}
}

// oddEvenMergeSort appends the compare-exchange pairs that sort
// [lo, lo+n) for n a power of two (Batcher 1968).
func oddEvenMergeSort(lo, n int, pairs [][2]uint8) [][2]uint8 {
	if n <= 1 {
		return pairs
	}
	m := n / 2
	pairs = oddEvenMergeSort(lo, m, pairs)
	pairs = oddEvenMergeSort(lo+m, m, pairs)
	return oddEvenMerge(lo, n, 1, pairs)
}

// oddEvenMerge merges the two sorted halves of [lo, lo+n) comparing
// elements r apart.
func oddEvenMerge(lo, n, r int, pairs [][2]uint8) [][2]uint8 {
	step := r * 2
	if step >= n {
		return append(pairs, [2]uint8{uint8(lo), uint8(lo + r)})
	}
	pairs = oddEvenMerge(lo, n, step, pairs)
	pairs = oddEvenMerge(lo+r, n, step, pairs)
	for i := lo + r; i+r < lo+n; i += step {
		pairs = append(pairs, [2]uint8{uint8(i), uint8(i + r)})
	}
	return pairs
}

// sortSmall sorts data in place for len(data) <= networkThreshold.
//
// The range is copied into a fixed stack block padded to the next power
// of two with ord.Extreme(), so padding lanes sink to the end of the
// block, then run through the fixed schedule for that width. The only
// data-dependent work is inside MinMax; control flow depends on the
// length alone, which bounds worst-case latency for this stage.
func sortSmall[T hwy.Lanes](data []T, ord Order[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	width := 2
	for width < n {
		width *= 2
	}

	var block [networkThreshold]T
	copy(block[:width], data)
	pad := ord.Extreme()
	for i := n; i < width; i++ {
		block[i] = pad
	}

	for _, p := range networkSchedule[width] {
		a, b := block[p[0]], block[p[1]]
		block[p[0]], block[p[1]] = ord.MinMax(a, b)
	}

	copy(data, block[:n])
}
