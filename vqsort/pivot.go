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

// pivotSamples is how many keys the selector draws per partition step.
// Nine samples give a median estimate robust enough that the expected
// split stays near the middle, while the sample block still sorts in one
// sorting-network pass.
const pivotSamples = 9

// choosePivot draws pivotSamples keys at generator-chosen offsets, sorts
// them with the sorting network and returns their median. allEquiv is
// true when every sample was equivalent, a strong hint that the range is
// dominated by one key; the driver then verifies with a full scan before
// partitioning.
//
// Randomized offsets are the defense against adversarial inputs: with
// fixed sampling positions, a caller could construct a sequence that
// forces worst-case pivots on every level.
func choosePivot[T hwy.Lanes](data []T, ord Order[T], g *generator) (pivot T, allEquiv bool) {
	n := len(data)
	var samples [pivotSamples]T
	for i := range samples {
		samples[i] = data[g.nextIndex(n)]
	}

	sortSmall(samples[:], ord)

	pivot = samples[pivotSamples/2]
	allEquiv = ord.Equiv(samples[0], samples[pivotSamples-1])
	return pivot, allEquiv
}
