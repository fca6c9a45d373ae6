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

// Package crosscheck holds no production code; its test compares Summary
// against github.com/beorn7/perks/quantile, an independent, widely used GK
// implementation, on the same input streams.
package crosscheck

import (
	"math"
	"testing"

	"github.com/beorn7/perks/quantile"
	"golang.org/x/exp/rand"

	gk "github.com/go-quantile/gk"
	"github.com/go-quantile/gk/generator"
)

const epsilon = 0.01

// TestAgreesWithPerks draws the same uniform stream over [0, valueRange]
// through Summary and through perks/quantile.Stream, and checks that both
// land within a value-space tolerance derived from epsilon. The input is
// uniform, so a rank error of epsilon*n out of n values corresponds to
// roughly epsilon*valueRange in value space; the factor of 3 below gives
// headroom for the two implementations' differing compression schedules
// without making the check vacuous.
func TestAgreesWithPerks(t *testing.T) {
	const valueRange = 1000.0
	targets := map[float64]float64{0.5: epsilon, 0.9: epsilon, 0.99: epsilon}

	ours := gk.New[generator.OrderedFloat64](epsilon)
	theirs := quantile.NewTargeted(targets)

	rng := rand.New(rand.NewSource(42))
	const n = 20000
	for i := 0; i < n; i++ {
		v := rng.Float64() * valueRange
		ofv, err := generator.NewOrderedFloat64(v)
		if err != nil {
			t.Fatalf("unexpected NaN: %v", err)
		}
		ours.InsertOne(ofv)
		theirs.Insert(v)
	}

	tolerance := 3 * epsilon * valueRange
	for q := range targets {
		ourValue, ok := ours.Query(q)
		if !ok {
			t.Fatalf("q=%v: our summary returned no value", q)
		}
		theirValue := theirs.Query(q)

		if diff := math.Abs(ourValue.Float64() - theirValue); diff > tolerance {
			t.Errorf("q=%v: ours=%v theirs=%v diff=%v exceeds tolerance %v", q, ourValue, theirValue, diff, tolerance)
		}
	}
}
