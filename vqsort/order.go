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
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Order describes the total order every algorithmic component sorts by.
// Implementations must be stateless: the same Order value is shared
// read-only by the pivot selector, the partitioner, the sorting network
// and the heapsort fallback.
//
// Key+payload adapters plug in by implementing these operations over the
// extracted sort key of their pair type.
type Order[T hwy.Lanes] interface {
	// Less reports whether a sorts strictly before b.
	Less(a, b T) bool

	// Equiv reports whether a and b are interchangeable under this order.
	Equiv(a, b T) bool

	// Extreme returns the value that sorts after every key under this
	// order. The sorting network pads partial vectors with it so padding
	// lanes sink to the end of the padded block.
	Extreme() T

	// MinMax is the compare-exchange primitive: it returns a and b with
	// the one that sorts first in lo.
	MinMax(a, b T) (lo, hi T)

	// LessMask compares lane-wise: lane i is true when v[i] sorts
	// strictly before pivot[i]. This is what the vectorized partitioner
	// classifies with.
	LessMask(v, pivot hwy.Vec[T]) hwy.Mask[T]
}

// Ascending sorts smallest-first. The zero value is ready to use.
type Ascending[T hwy.Lanes] struct{}

func (Ascending[T]) Less(a, b T) bool  { return a < b }
func (Ascending[T]) Equiv(a, b T) bool { return a == b }
func (Ascending[T]) Extreme() T        { return maxValue[T]() }

func (Ascending[T]) MinMax(a, b T) (T, T) { return min(a, b), max(a, b) }

func (Ascending[T]) LessMask(v, pivot hwy.Vec[T]) hwy.Mask[T] {
	return hwy.LessThan(v, pivot)
}

// Descending sorts largest-first. The zero value is ready to use.
type Descending[T hwy.Lanes] struct{}

func (Descending[T]) Less(a, b T) bool  { return b < a }
func (Descending[T]) Equiv(a, b T) bool { return a == b }
func (Descending[T]) Extreme() T        { return minValue[T]() }

func (Descending[T]) MinMax(a, b T) (T, T) { return max(a, b), min(a, b) }

func (Descending[T]) LessMask(v, pivot hwy.Vec[T]) hwy.Mask[T] {
	return hwy.GreaterThan(v, pivot)
}

// maxValue returns the largest representable value of T.
func maxValue[T hwy.Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(any(float32(math.MaxFloat32)).(float32))
	case float64:
		return T(any(float64(math.MaxFloat64)).(float64))
	case int8:
		return T(any(int8(math.MaxInt8)).(int8))
	case int16:
		return T(any(int16(math.MaxInt16)).(int16))
	case int32:
		return T(any(int32(math.MaxInt32)).(int32))
	case int64:
		return T(any(int64(math.MaxInt64)).(int64))
	case uint8:
		return T(any(uint8(math.MaxUint8)).(uint8))
	case uint16:
		return T(any(uint16(math.MaxUint16)).(uint16))
	case uint32:
		return T(any(uint32(math.MaxUint32)).(uint32))
	case uint64:
		return T(any(uint64(math.MaxUint64)).(uint64))
	}
	return zero
}

// minValue returns the smallest representable value of T.
func minValue[T hwy.Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(any(float32(-math.MaxFloat32)).(float32))
	case float64:
		return T(any(float64(-math.MaxFloat64)).(float64))
	case int8:
		return T(any(int8(math.MinInt8)).(int8))
	case int16:
		return T(any(int16(math.MinInt16)).(int16))
	case int32:
		return T(any(int32(math.MinInt32)).(int32))
	case int64:
		return T(any(int64(math.MinInt64)).(int64))
	case uint8:
		return T(any(uint8(0)).(uint8))
	case uint16:
		return T(any(uint16(0)).(uint16))
	case uint32:
		return T(any(uint32(0)).(uint32))
	case uint64:
		return T(any(uint64(0)).(uint64))
	}
	return zero
}
