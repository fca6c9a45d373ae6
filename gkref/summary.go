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

package gkref

import (
	"cmp"
	"math"

	"github.com/go-quantile/gk"
)

type sample[T cmp.Ordered] struct {
	value T
	g     uint64
	delta uint64
	band  uint64 // cached; valid only right after updateBands
}

// Summary is the unmodified Greenwald-Khanna algorithm: every insertion
// other than a new extreme allocates a full sample at delta=cap, and
// compression is the classic right-to-left, band-based merge rather than
// the parent package's single streaming pass. Kept for correctness
// cross-checking only.
type Summary[T cmp.Ordered] struct {
	samples []sample[T]
	epsilon float64
	num     uint64
}

// New creates an empty reference Summary. Panics with
// *quantile.InvalidEpsilonError if epsilon is not strictly between 0 and 1.
func New[T cmp.Ordered](epsilon float64) *Summary[T] {
	if epsilon <= 0 || epsilon >= 1 {
		panic(&quantile.InvalidEpsilonError{Epsilon: epsilon})
	}
	return &Summary[T]{epsilon: epsilon}
}

// Epsilon returns the configured error bound.
func (s *Summary[T]) Epsilon() float64 { return s.epsilon }

// Num returns the number of values inserted so far.
func (s *Summary[T]) Num() uint64 { return s.num }

// Insert adds value to the summary without compressing.
func (s *Summary[T]) Insert(value T) {
	s.num++
	n := len(s.samples)

	if n == 0 || value < s.samples[0].value {
		s.samples = append(s.samples, sample[T]{})
		copy(s.samples[1:], s.samples[:len(s.samples)-1])
		s.samples[0] = sample[T]{value: value, g: 1, delta: 0}
		return
	}
	if !(value < s.samples[n-1].value) {
		s.samples = append(s.samples, sample[T]{value: value, g: 1, delta: 0})
		return
	}

	// Linear scan to the insertion point; a binary search would do since
	// samples is sorted, but the reference implementation favors
	// obviously-correct over fast.
	for i := 1; i < len(s.samples); i++ {
		if value < s.samples[i].value {
			delta := quantile.CapFor(s.epsilon, s.num)
			s.samples = append(s.samples, sample[T]{})
			copy(s.samples[i+1:], s.samples[i:len(s.samples)-1])
			s.samples[i] = sample[T]{value: value, g: 1, delta: delta}
			return
		}
	}
}

// Compress runs the classic band-based right-to-left merge pass.
func (s *Summary[T]) Compress() {
	p := quantile.CapFor(s.epsilon, s.num)
	s.updateBands(p)

	i := len(s.samples) - 1
	for i > 1 {
		i--
		sample := s.samples[i]
		next := s.samples[i+1]
		if sample.band > next.band {
			continue
		}

		firstDescendent, gStar := s.scanAllDescendents(i)
		newG := gStar + next.g
		if newG+next.delta >= p {
			continue
		}

		s.samples[i+1].g = newG
		s.samples = append(s.samples[:firstDescendent], s.samples[i+1:]...)
		i = firstDescendent
	}
}

func (s *Summary[T]) updateBands(p uint64) {
	for i := range s.samples {
		s.samples[i].band = Band(s.samples[i].delta, p)
	}
}

// scanAllDescendents finds the contiguous run ending at i (inclusive) whose
// band is strictly smaller than sample i's band, returning the run's first
// index and the sum of g across the whole run. The band cache must be up
// to date. The minimum (index 0) is never a descendent.
func (s *Summary[T]) scanAllDescendents(i int) (int, uint64) {
	j := i
	maxBand := s.samples[i].band
	totalG := s.samples[i].g
	for j > 1 && s.samples[j-1].band < maxBand {
		totalG += s.samples[j-1].g
		j--
	}
	return j, totalG
}

// Query returns the value estimated to sit at quantile q.
func (s *Summary[T]) Query(q float64) (T, bool) {
	var zero T
	if s.num == 0 {
		return zero, false
	}
	target := quantile.QuantileToRank(q, s.num)

	var minRank uint64
	var best T
	bestErr := uint64(math.MaxUint64)
	for _, sample := range s.samples {
		minRank += sample.g
		maxRank := minRank + sample.delta
		mid := (minRank + maxRank) / 2

		var err uint64
		if target > mid {
			err = target - minRank
		} else {
			err = maxRank - target
		}
		if err < bestErr {
			bestErr = err
			best = sample.value
		}
	}
	return best, true
}
