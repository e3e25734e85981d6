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

// Package vqsort is a vectorized quicksort for slices of fixed-width
// keys, after Google Highway's vqsort (https://arxiv.org/abs/2205.05982).
//
// It is an introsort: quicksort with a pivot drawn as the median of nine
// randomly sampled keys, a double-ended compress-based partition built on
// go-highway vector primitives, Batcher sorting networks below 32 keys,
// and a heapsort fallback once the recursion budget of ~2*log2(n) levels
// is spent. The random sampling means an adversary cannot precompute an
// input that forces quadratic behavior, and the budget caps the damage at
// O(n log n) even if they get lucky.
//
// # Usage
//
//	import "github.com/ajroetker/go-vqsort/vqsort"
//
//	vqsort.Sort(keys)            // ascending, in place
//	vqsort.SortDescending(keys)  // largest first
//
// Supported key types are the go-highway lane types: int8..int64,
// uint8..uint64, float32 and float64. The sort is not stable, allocates
// nothing of its own on the sort path, and a single call never spawns
// goroutines; callers that want parallelism sort disjoint sub-slices on
// their own goroutines.
//
// # Dispatch
//
// On first use the package binds to the best tier the vector layer
// reports for the running CPU (AVX-512, AVX2, NEON, SVE or scalar),
// cross-checked against the feature flags; the binding is fixed for the
// process lifetime. Set HWY_NO_SIMD to force the scalar tier. Every tier
// produces identical output for the same input and order.
//
// # Contract
//
// Inputs are not validated: this is a performance primitive, not an API
// layer. Sorting overlapping memory concurrently is undefined behavior.
// Float slices containing NaN are outside the total-order contract.
package vqsort
