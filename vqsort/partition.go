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

// scratchLanes bounds the per-partition scratch block: one full vector of
// the narrowest element type at the widest supported register (64 uint8
// lanes in 512 bits). The scratch lives on the stack.
const scratchLanes = 64

// partition rearranges data so that data[:split] sorts strictly before
// pivot and data[split:] does not, per ord, and returns split. The
// multiset of keys is unchanged. No heap allocation.
//
// Layout of one pass, following Highway's double-ended compress scheme:
// one vector is preloaded from each end to open a hole, then the main
// loop reads from whichever side has less write capacity left, classifies
// the vector against the broadcast pivot, and writes the "sorts before"
// lanes behind writeL and the rest in front of the right edge of the
// unwritten gap. The n mod lanes remainder is folded in by an explicit
// scalar boundary pass at the end.
func partition[T hwy.Lanes](data []T, pivot T, ord Order[T]) int {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	bnd := activeBinding()

	if !bnd.useVector || lanes < 2 || n < 4*lanes {
		return partitionScalar(data, pivot, ord)
	}

	rem := n % lanes
	m := n - rem // multiple of lanes, >= 4*lanes - (lanes-1) >= 2*lanes

	split := partitionVector(data[:m], pivot, ord, lanes)

	// Boundary pass: classify the tail remainder one key at a time,
	// growing the left group by swapping with the first right key.
	for i := m; i < n; i++ {
		if ord.Less(data[i], pivot) {
			data[i], data[split] = data[split], data[i]
			split++
		}
	}
	return split
}

// partitionVector partitions data whose length is a nonzero multiple of
// lanes, with length >= 2*lanes.
func partitionVector[T hwy.Lanes](data []T, pivot T, ord Order[T], lanes int) int {
	m := len(data)
	pivotVec := hwy.Set(pivot)
	var scratch [scratchLanes]T

	// Open the hole: one vector from each end now lives in registers.
	vL := hwy.Load(data[:lanes])
	vR := hwy.Load(data[m-lanes:])

	readL := lanes
	readR := m - lanes
	writeL := 0
	remaining := m

	// Invariant: the unwritten gap around [readL, readR) always holds
	// exactly the two preloaded vectors, so both stores below land in
	// writable slots.
	for readL < readR {
		var v hwy.Vec[T]
		if readL-writeL <= lanes {
			v = hwy.Load(data[readL : readL+lanes])
			readL += lanes
		} else {
			readR -= lanes
			v = hwy.Load(data[readR : readR+lanes])
		}
		writeL, remaining = storeLeftRight(data, v, pivotVec, ord, lanes, writeL, remaining, scratch[:])
	}

	writeL, remaining = storeLeftRight(data, vL, pivotVec, ord, lanes, writeL, remaining, scratch[:])
	// The gap is now exactly one block, so the two stores for vR coincide.
	writeL, _ = storeLeftRight(data, vR, pivotVec, ord, lanes, writeL, remaining, scratch[:])
	return writeL
}

// storeLeftRight compresses v into [sorts-before..., rest...] order and
// writes that block to both edges of the unwritten gap. The overlapping
// middle of the two stores is corrected by later iterations; on the final
// vector the gap has shrunk to exactly one block and the two stores
// coincide.
func storeLeftRight[T hwy.Lanes](data []T, v, pivotVec hwy.Vec[T], ord Order[T], lanes, writeL, remaining int, scratch []T) (int, int) {
	mask := ord.LessMask(v, pivotVec)
	numLess := hwy.CompressStore(v, mask, scratch[:lanes])
	hwy.CompressStore(v, hwy.MaskNot(mask), scratch[numLess:lanes])

	remaining -= lanes
	copy(data[writeL:writeL+lanes], scratch[:lanes])
	copy(data[remaining+writeL:remaining+writeL+lanes], scratch[:lanes])
	return writeL + numLess, remaining
}

// partitionScalar is the boundary fallback for ranges smaller than two
// vectors and for the scalar dispatch tier. Hoare-style two-pointer scan;
// same postcondition as partition.
func partitionScalar[T hwy.Lanes](data []T, pivot T, ord Order[T]) int {
	left := 0
	right := len(data)
	for left < right {
		if ord.Less(data[left], pivot) {
			left++
		} else {
			right--
			data[left], data[right] = data[right], data[left]
		}
	}
	return left
}

// equalPrefix packs every key equivalent to pivot to the front of data
// and returns how many there were. Called only when a partition made no
// progress, which means no key sorts before pivot; grouping the
// equivalent keys first is then a valid partition and guarantees the
// remaining range shrinks.
func equalPrefix[T hwy.Lanes](data []T, pivot T, ord Order[T]) int {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	eq := 0
	i := 0

	if activeBinding().useVector && lanes >= 2 {
		pivotVec := hwy.Set(pivot)
		// Skip the leading run of equivalent keys a vector at a time;
		// on duplicate-heavy inputs this is the common shape.
		for ; i+lanes <= n; i += lanes {
			v := hwy.Load(data[i : i+lanes])
			if !hwy.AllTrue(hwy.Equal(v, pivotVec)) {
				break
			}
		}
		eq = i
	}

	for ; i < n; i++ {
		if ord.Equiv(data[i], pivot) {
			data[eq], data[i] = data[i], data[eq]
			eq++
		}
	}
	return eq
}

// rangeAllEquiv reports whether every key in data is equivalent to key.
func rangeAllEquiv[T hwy.Lanes](data []T, key T, ord Order[T]) bool {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	i := 0

	if activeBinding().useVector && lanes >= 2 {
		keyVec := hwy.Set(key)
		for ; i+lanes <= n; i += lanes {
			v := hwy.Load(data[i : i+lanes])
			if !hwy.AllTrue(hwy.Equal(v, keyVec)) {
				return false
			}
		}
	}

	for ; i < n; i++ {
		if !ord.Equiv(data[i], key) {
			return false
		}
	}
	return true
}
