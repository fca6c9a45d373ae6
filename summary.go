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

import (
	"cmp"
	"math"
	"sort"
)

// Summary is an epsilon-approximate quantile sketch over a stream of
// totally ordered values of type T. It is not safe for concurrent
// mutation; concurrent reads of an otherwise-idle Summary are fine.
//
// The zero value is not usable; construct one with New.
type Summary[T cmp.Ordered] struct {
	samples []Sample[T]
	epsilon float64
	len     uint64
}

// New creates an empty Summary with the given maximum rank error, expressed
// as a fraction of the stream length. Panics with *InvalidEpsilonError if
// epsilon is not strictly between 0 and 1.
func New[T cmp.Ordered](epsilon float64) *Summary[T] {
	if epsilon <= 0 || epsilon >= 1 {
		panic(&InvalidEpsilonError{Epsilon: epsilon})
	}
	return &Summary[T]{epsilon: epsilon}
}

// Epsilon returns the error bound this Summary was constructed with.
func (s *Summary[T]) Epsilon() float64 { return s.epsilon }

// Len returns the total number of values inserted so far, which may be far
// larger than len(s.Samples()).
func (s *Summary[T]) Len() uint64 { return s.len }

// Samples returns the current, ordered sample sequence. The caller must
// not mutate the returned slice; it is owned by the Summary.
func (s *Summary[T]) Samples() []Sample[T] { return s.samples }

// InsertOne adds a single value to the stream. For bulk loads, a
// BatchWriter amortizes the per-value cost far better.
func (s *Summary[T]) InsertOne(value T) {
	s.len++
	limit := CapFor(s.epsilon, s.len)
	n := len(s.samples)

	switch {
	case n == 0:
		s.samples = append(s.samples, exactSample(value))

	case value < s.samples[0].Value:
		s.insertNewMinimum(value, limit)

	case !(value < s.samples[n-1].Value):
		// No sample has value strictly greater than the new value: it is a
		// new maximum (ties with the current maximum count as "new max"
		// too, since nothing is strictly greater than it).
		s.insertNewMaximum(value, limit)

	default:
		s.insertIntermediate(value, limit)
	}

	s.maybeCompress()
	if DebugInvariants {
		s.checkInvariants()
	}
}

// insertNewMinimum inserts value as the new first sample, then, per the
// chosen resolution of the "roll the previous minimum" open question,
// folds the former minimum into its successor (the next sample up) when
// the successor's g+delta stays within limit. With only the new minimum
// and one other sample, nothing is folded.
func (s *Summary[T]) insertNewMinimum(value T, limit uint64) {
	s.samples = append(s.samples, Sample[T]{})
	copy(s.samples[1:], s.samples[:len(s.samples)-1])
	s.samples[0] = exactSample(value)

	if len(s.samples) > 2 {
		formerMin, successor := s.samples[1], s.samples[2]
		if successor.Delta+successor.G+formerMin.G <= limit {
			s.samples[2].G += formerMin.G
			s.samples = append(s.samples[:1], s.samples[2:]...)
		}
	}
}

// insertNewMaximum either absorbs value into the current maximum sample
// (when that stays within limit, preserving delta=0 at the right end) or
// appends a fresh sample.
func (s *Summary[T]) insertNewMaximum(value T, limit uint64) {
	last := &s.samples[len(s.samples)-1]
	if last.G+1 <= limit {
		last.G++
		last.Value = value
		return
	}
	s.samples = append(s.samples, exactSample(value))
}

// insertIntermediate handles a value strictly between the current minimum
// and maximum: either a free micro-compression into the neighboring
// sample, or a fresh insertion immediately to its left.
func (s *Summary[T]) insertIntermediate(value T, limit uint64) {
	idx := sort.Search(len(s.samples), func(i int) bool {
		return value < s.samples[i].Value
	})
	r := &s.samples[idx]
	if r.Delta+r.G+1 <= limit {
		r.G++
		return
	}
	newSample := Sample[T]{Value: value, G: 1, Delta: r.G + r.Delta - 1}
	s.samples = append(s.samples, Sample[T]{})
	copy(s.samples[idx+1:], s.samples[idx:len(s.samples)-1])
	s.samples[idx] = newSample
}

// maybeCompress runs structural compression when either trigger condition
// fires: a periodic insertion count, or a safety bound on stored samples.
func (s *Summary[T]) maybeCompress() {
	period := uint64(math.Ceil(1 / (2 * s.epsilon)))
	if period == 0 {
		period = 1
	}
	safety := uint64(math.Ceil(5 / s.epsilon))
	if s.len%period == 0 || uint64(len(s.samples)) > safety {
		s.Compress()
	}
}

// Compress runs a single streaming pass that collapses any run of samples
// whose combined g fits under the current limit, replacing the sample
// sequence with the compressed result. A no-op below 3 stored samples,
// since the minimum and maximum are always retained.
func (s *Summary[T]) Compress() {
	if len(s.samples) < 3 {
		return
	}
	limit := CapFor(s.epsilon, s.len)
	compressor := newStreamingCompressor[T](limit, len(s.samples))
	for _, sample := range s.samples {
		compressor.push(sample)
	}
	s.samples = compressor.finish()
	if DebugInvariants {
		s.checkInvariants()
	}
}

// Query returns the value estimated to sit at quantile q, or false if the
// Summary has seen no values yet.
func (s *Summary[T]) Query(q float64) (T, bool) {
	value, _, ok := s.QueryWithError(q)
	return value, ok
}

// QueryWithError is Query, additionally reporting the worst-case rank error
// of the returned value as a fraction of Len.
func (s *Summary[T]) QueryWithError(q float64) (T, float64, bool) {
	var zero T
	if s.len == 0 {
		return zero, 0, false
	}
	target := QuantileToRank(q, s.len)

	var minRank uint64
	var bestValue T
	bestErr := uint64(math.MaxUint64)
	for _, sample := range s.samples {
		minRank += sample.G
		maxRank := minRank + sample.Delta
		mid := (minRank + maxRank) / 2

		var err uint64
		if target > mid {
			err = target - minRank
		} else {
			err = maxRank - target
		}
		if err < bestErr {
			bestErr = err
			bestValue = sample.Value
		}
	}
	return bestValue, float64(bestErr) / float64(s.len), true
}

// Merge folds other into s, consuming it: other is left empty and must not
// be used afterwards. Panics with *IncompatibleEpsilonError if other's
// error bound is looser than s's.
func (s *Summary[T]) Merge(other *Summary[T]) {
	if other.epsilon > s.epsilon {
		panic(&IncompatibleEpsilonError{Self: s.epsilon, Other: other.epsilon})
	}
	s.mergeSortedSamples(other.samples, other.len)
	other.samples = nil
	other.len = 0
}

// mergeSortedSamples is the streaming merge at the heart of Merge and
// BatchWriter.flush: it interleaves two already-sorted sample sequences in
// one linear sweep, bumping each popped sample's delta by the other side's
// accumulated worst-case rank contribution.
func (s *Summary[T]) mergeSortedSamples(other []Sample[T], otherLen uint64) {
	s.len += otherLen
	limit := CapFor(s.epsilon, s.len)
	compressor := newStreamingCompressor[T](limit, len(s.samples)+len(other))

	left := newMergeCursor(s.samples)
	right := newMergeCursor(other)

	for {
		leftSample, leftOK := left.peek()
		rightSample, rightOK := right.peek()
		if !leftOK || !rightOK {
			break
		}
		if leftSample.Value <= rightSample.Value {
			popped := left.popFront()
			popped.Delta += right.additionalDelta()
			compressor.push(popped)
		} else {
			popped := right.popFront()
			popped.Delta += left.additionalDelta()
			compressor.push(popped)
		}
	}
	left.pushRemainingTo(compressor)
	right.pushRemainingTo(compressor)

	s.samples = compressor.finish()
}

// checkInvariants re-validates P1-P4 from scratch. Only ever called when
// DebugInvariants is set; panics with *InvariantViolationError on failure.
func (s *Summary[T]) checkInvariants() {
	var sumG uint64
	for i, sample := range s.samples {
		sumG += sample.G
		if i > 0 && sample.Value < s.samples[i-1].Value {
			panic(&InvariantViolationError{Detail: "samples out of order"})
		}
	}
	if sumG != s.len {
		panic(&InvariantViolationError{Detail: "sum(g) != len"})
	}
	if n := len(s.samples); n > 0 {
		if s.samples[0].Delta != 0 {
			panic(&InvariantViolationError{Detail: "first sample has nonzero delta"})
		}
		if s.samples[n-1].Delta != 0 {
			panic(&InvariantViolationError{Detail: "last sample has nonzero delta"})
		}
	}
	limit := CapFor(s.epsilon, s.len)
	for i, sample := range s.samples {
		if i == 0 || i == len(s.samples)-1 {
			continue
		}
		if sample.G+sample.Delta > limit {
			panic(&InvariantViolationError{Detail: "g+delta exceeds limit"})
		}
	}
}
