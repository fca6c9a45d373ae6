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

package generator

import (
	"golang.org/x/exp/rand"

	quantile "github.com/go-quantile/gk"
)

// Random generates n values such that, once sorted, value sits at exactly
// the rank named by (q, n): quantile.QuantileToRank(q, n)-1 values come
// out strictly less than value, one equals value exactly, and the rest
// come out strictly greater. Which position each value is emitted at is
// randomized but fully determined by seed.
type Random struct {
	remainingLesser uint64
	remaining       uint64 // excludes the target value itself
	value           float64
	published       bool
	rng             *rand.Rand
}

// NewRandom creates a Random generator. Panics if n is 0.
func NewRandom(q, value float64, n uint64, seed uint64) *Random {
	if n == 0 {
		panic("generator: n must be > 0")
	}
	rank := quantile.QuantileToRank(q, n)
	return &Random{
		remainingLesser: rank - 1,
		remaining:       n - 1,
		value:           value,
		rng:             rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next value, or false once all n values have been
// produced.
func (g *Random) Next() (float64, bool) {
	if g.remaining == 0 && g.published {
		return 0, false
	}

	if !g.published {
		remainingRatio := 1 / float64(g.remaining+1)
		if g.rng.Float64() < remainingRatio {
			g.published = true
			return g.value, true
		}
	}

	ratio := float64(g.remainingLesser) / float64(g.remaining)
	g.remaining--
	if g.rng.Float64() >= ratio {
		return g.value + g.nextNonZero(), true
	}
	g.remainingLesser--
	return g.value - g.nextNonZero(), true
}

func (g *Random) nextNonZero() float64 {
	r := g.rng.Float64()
	for r == 0 {
		r = g.rng.Float64()
	}
	return r
}

// Collect drains the generator into a slice.
func (g *Random) Collect() []float64 {
	out := make([]float64, 0, g.remaining+1)
	for {
		v, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
