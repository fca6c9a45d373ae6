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

import quantile "github.com/go-quantile/gk"

// Order selects the direction a Sequential generator walks in.
type Order int

const (
	Ascending Order = iota
	Descending
)

// Sequential generates n values in closed form, v[i] = value + alpha*i +
// beta, placing value at exactly the rank named by (q, n) with no
// randomness at all. Useful where a test wants a fully reproducible,
// order-sensitive stream (e.g. already-sorted input to Summary).
type Sequential struct {
	value     float64
	position  uint64
	direction float64
	offset    float64
	n         uint64
}

// NewSequential creates a Sequential generator. Panics if n is 0.
func NewSequential(q, value float64, n uint64, order Order) *Sequential {
	if n == 0 {
		panic("generator: n must be > 0")
	}
	rank := quantile.QuantileToRank(q, n)

	var direction, offset float64
	if order == Ascending {
		direction = 1
		offset = -float64(rank) + 1
	} else {
		direction = -1
		offset = float64(n - rank)
	}
	return &Sequential{value: value, direction: direction, offset: offset, n: n}
}

// Next returns the next value, or false once all n values have been
// produced.
func (g *Sequential) Next() (float64, bool) {
	if g.position == g.n {
		return 0, false
	}
	v := g.value + g.direction*float64(g.position) + g.offset
	g.position++
	return v, true
}

// Collect drains the generator into a slice.
func (g *Sequential) Collect() []float64 {
	out := make([]float64, 0, g.n)
	for {
		v, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
