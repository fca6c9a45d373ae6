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

func TestQuantileToRank(t *testing.T) {
	const n = 4
	cases := []struct {
		q    float64
		want uint64
	}{
		{0, 1},
		{0.1, 1},
		{0.25, 1},
		{0.26, 2},
		{0.5, 2},
		{0.51, 3},
		{0.75, 3},
		{0.76, 4},
		{1, 4},
	}
	for _, c := range cases {
		if got := QuantileToRank(c.q, n); got != c.want {
			t.Errorf("QuantileToRank(%v, %d) = %d, want %d", c.q, n, got, c.want)
		}
	}
}

func TestQuantileToRankPanicsOutOfRange(t *testing.T) {
	for _, q := range []float64{-0.01, 1.01} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("QuantileToRank(%v, 10) did not panic", q)
				} else if _, ok := r.(*InvalidQuantileError); !ok {
					t.Errorf("QuantileToRank(%v, 10) panicked with %T, want *InvalidQuantileError", q, r)
				}
			}()
			QuantileToRank(q, 10)
		}()
	}
}

func TestRankToQuantile(t *testing.T) {
	if got, want := RankToQuantile(2, 4), 0.5; got != want {
		t.Errorf("RankToQuantile(2, 4) = %v, want %v", got, want)
	}
}

func TestCapFor(t *testing.T) {
	cases := []struct {
		epsilon float64
		n       uint64
		want    uint64
	}{
		{0.1, 100, 20},
		{0.5, 10, 10},
		{0.01, 1, 0},
	}
	for _, c := range cases {
		if got := CapFor(c.epsilon, c.n); got != c.want {
			t.Errorf("CapFor(%v, %d) = %d, want %d", c.epsilon, c.n, got, c.want)
		}
	}
}
