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

import "testing"

func TestMergeCursorPeekPopFront(t *testing.T) {
	samples := []Sample[int]{
		{Value: 1, G: 1, Delta: 0},
		{Value: 2, G: 1, Delta: 3},
	}
	c := newMergeCursor(samples)

	peeked, ok := c.peek()
	if !ok || peeked != samples[0] {
		t.Fatalf("peek() = %v, %v, want %v, true", peeked, ok, samples[0])
	}
	if got := c.additionalDelta(); got != 0 {
		t.Errorf("additionalDelta() before any pop = %d, want 0", got)
	}

	popped := c.popFront()
	if popped != samples[0] {
		t.Errorf("popFront() = %v, want %v", popped, samples[0])
	}
	// contribution = delta + g - 1 = 0 + 1 - 1 = 0
	if got := c.additionalDelta(); got != 0 {
		t.Errorf("additionalDelta() after first pop = %d, want 0", got)
	}

	popped = c.popFront()
	// contribution = 3 + 1 - 1 = 3
	if got := c.additionalDelta(); got != 3 {
		t.Errorf("additionalDelta() after second pop = %d, want 3", got)
	}

	if _, ok := c.peek(); ok {
		t.Error("peek() after draining cursor returned ok=true")
	}
}

func TestMergeCursorResidualDeltaIsMonotone(t *testing.T) {
	// A later, smaller contribution must not lower residualDelta below an
	// earlier, larger one: it tracks a worst case, not the latest value.
	samples := []Sample[int]{
		{Value: 1, G: 1, Delta: 10}, // contribution 10
		{Value: 2, G: 1, Delta: 0},  // contribution 0
	}
	c := newMergeCursor(samples)
	c.popFront()
	if got := c.additionalDelta(); got != 10 {
		t.Fatalf("additionalDelta() after first pop = %d, want 10", got)
	}
	c.popFront()
	if got := c.additionalDelta(); got != 10 {
		t.Errorf("additionalDelta() after second pop = %d, want still 10 (monotone)", got)
	}
}

func TestMergeCursorPushRemainingTo(t *testing.T) {
	samples := []Sample[int]{
		{Value: 1, G: 1, Delta: 0},
		{Value: 2, G: 1, Delta: 9},
		{Value: 3, G: 1, Delta: 0},
	}
	c := newMergeCursor(samples)
	c.popFront() // consume the first sample only

	compressor := newStreamingCompressor[int](1000, 0)
	c.pushRemainingTo(compressor)
	got := compressor.finish()

	// pushRemainingTo must not mutate delta: no extra delta is owed once
	// the other side of a merge has been fully drained.
	want := []Sample[int]{
		{Value: 2, G: 1, Delta: 9},
		{Value: 3, G: 1, Delta: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("pushRemainingTo produced %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	if _, ok := c.peek(); ok {
		t.Error("cursor still has samples after pushRemainingTo")
	}
}
