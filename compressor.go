// Copyright 2014 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quantile

import "cmp"

// streamingCompressor consumes samples in ascending value order and emits a
// compressed sequence that still satisfies g+delta <= cap for every
// non-extreme sample. It is a one-shot, single-pass object: push samples in
// order, then call finish once.
type streamingCompressor[T cmp.Ordered] struct {
	maxGDelta uint64
	out       []Sample[T]
	tail      Sample[T]
	hasTail   bool
}

func newStreamingCompressor[T cmp.Ordered](maxGDelta uint64, sizeHint int) *streamingCompressor[T] {
	return &streamingCompressor[T]{
		maxGDelta: maxGDelta,
		out:       make([]Sample[T], 0, sizeHint),
	}
}

// push feeds the next sample, in ascending value order, into the
// compressor.
func (c *streamingCompressor[T]) push(sample Sample[T]) {
	if c.hasTail {
		tail := c.tail
		if tail.G+sample.G+sample.Delta <= c.maxGDelta {
			// Absorb the pending block tail into this sample.
			sample.G += tail.G
		} else {
			// Block is full: commit the tail as-is and start a new one.
			c.out = append(c.out, tail)
		}
		c.tail = sample
		return
	}
	if len(c.out) == 0 {
		// The minimum is always committed raw, never merged into anything.
		c.out = append(c.out, sample)
		return
	}
	c.tail = sample
	c.hasTail = true
}

// finish commits any pending block tail (the maximum is always committed
// raw) and returns the compressed sequence.
func (c *streamingCompressor[T]) finish() []Sample[T] {
	if c.hasTail {
		c.out = append(c.out, c.tail)
		c.hasTail = false
	}
	return c.out
}
