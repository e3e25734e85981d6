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
	crand "crypto/rand"
	"encoding/binary"
	"math/bits"
	"sync"
	"time"
	"unsafe"
)

// generator produces the pseudo-random offsets used for pivot sampling.
// It is counter-based: after seeding, only counter advances; s0 and s1
// never change. counter == 0 marks "not yet seeded", so the zero value
// seeds itself lazily on first use and is never reseeded afterward.
//
// The output only has to be unpredictable enough that an adversary cannot
// reproduce the sampling sequence and construct a quadratic input. It is
// not a cryptographic generator and is never exposed to callers.
type generator struct {
	s0, s1  uint64
	counter uint64
}

// generatorPool recycles generator state per execution context, so each
// goroutine that sorts tends to reuse an already-seeded instance instead
// of paying for the entropy read again.
var generatorPool = sync.Pool{
	New: func() any { return new(generator) },
}

// fill16Bytes obtains 16 bytes of seed material. It prefers the platform
// entropy source and must not block indefinitely. If that fails, it mixes
// a stack address, a heap address and a coarse clock reading with fixed
// constants. The fallback is explicitly not secure; it only has to differ
// across runs.
func fill16Bytes(words *[2]uint64) {
	var buf [16]byte
	if _, err := crand.Read(buf[:]); err == nil {
		words[0] = binary.LittleEndian.Uint64(buf[0:8])
		words[1] = binary.LittleEndian.Uint64(buf[8:16])
		return
	}

	bitsStack := uint64(uintptr(unsafe.Pointer(&buf)))
	bitsCode := uint64(uintptr(unsafe.Pointer(&generatorPool)))
	bitsTime := uint64(time.Now().UnixNano())
	words[0] = bitsStack ^ bitsTime ^ 0xFEDCBA98 // "Nothing up my sleeve"
	words[1] = bitsCode ^ bitsTime ^ 0x01234567  // constants.
}

func (g *generator) seed() {
	var words [2]uint64
	fill16Bytes(&words)
	g.s0 = words[0]
	g.s1 = words[1]
	g.counter = 1
}

// next returns 64 pseudo-random bits and advances the counter.
func (g *generator) next() uint64 {
	if g.counter == 0 {
		g.seed()
	}
	g.counter++

	// SplitMix-style finalizer over the keyed counter.
	z := g.counter*0x9E3779B97F4A7C15 + g.s0
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return (z ^ (z >> 31)) ^ g.s1
}

// nextIndex returns a pseudo-random index in [0, bound). bound must be
// positive. Uses the multiply-shift reduction; the resulting bias is far
// below anything pivot sampling could notice.
func (g *generator) nextIndex(bound int) int {
	hi, _ := bits.Mul64(g.next(), uint64(bound))
	return int(hi)
}
