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

// mergeCursor is a peekable iterator over one side of a merge. It tracks
// the worst-case max-rank contribution (residualDelta) that samples
// already popped from this side must be accounted for by the other side.
type mergeCursor[T cmp.Ordered] struct {
	samples       []Sample[T]
	pos           int
	residualDelta uint64
}

func newMergeCursor[T cmp.Ordered](samples []Sample[T]) *mergeCursor[T] {
	return &mergeCursor[T]{samples: samples}
}

// peek returns the next sample without consuming it.
func (c *mergeCursor[T]) peek() (Sample[T], bool) {
	if c.pos >= len(c.samples) {
		var zero Sample[T]
		return zero, false
	}
	return c.samples[c.pos], true
}

// popFront consumes and returns the next sample, updating residualDelta to
// the worst-case max-rank contribution this pop adds.
func (c *mergeCursor[T]) popFront() Sample[T] {
	s := c.samples[c.pos]
	c.pos++
	if contribution := s.Delta + s.G - 1; contribution > c.residualDelta {
		c.residualDelta = contribution
	}
	return s
}

// additionalDelta is the current worst-case rank contribution the other
// side's popped samples must absorb from this side.
func (c *mergeCursor[T]) additionalDelta() uint64 {
	return c.residualDelta
}

// pushRemainingTo drains every sample still held by this cursor directly
// into compressor, without adding any extra delta: once the other side of
// a merge is fully consumed, nothing further needs to be accounted for.
func (c *mergeCursor[T]) pushRemainingTo(compressor *streamingCompressor[T]) {
	for c.pos < len(c.samples) {
		compressor.push(c.samples[c.pos])
		c.pos++
	}
}
