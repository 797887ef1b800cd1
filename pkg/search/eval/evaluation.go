// Copyright © 2023 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package eval contains the material-plus-piece-square evaluator and the
// Eval score type used throughout search.
package eval

import (
	"fmt"
	"math"
)

// Eval is a relative centipawn evaluation where > 0 is better for the side
// to move and < 0 is better for the opponent.
type Eval int

// basic evaluations.
const (
	Inf  Eval = math.MaxInt32 / 2
	Mate Eval = 100_000
	Draw Eval = 0

	// MateThreshold marks the boundary beyond which a cp score is
	// understood as a forced mate, per the external JSON adapter's
	// |cp| > 90_000 rule.
	MateThreshold Eval = 90_000
)

// MatedIn returns the evaluation for being checkmated in the given plies
// from the root; it prefers the longer line, so deeper mates in the loser's
// favor score less negatively than immediate ones.
func MatedIn(plies int) Eval {
	return -Mate + Eval(plies)
}

// String renders the Eval as "cp N" or "mate N", mirroring the external
// JSON adapter's score_to_json classification.
func (e Eval) String() string {
	switch {
	case e > MateThreshold:
		return fmt.Sprintf("mate %d", pliesToMate(Mate-e))
	case e < -MateThreshold:
		return fmt.Sprintf("mate %d", -pliesToMate(Mate+e))
	default:
		return fmt.Sprintf("cp %d", e)
	}
}

func pliesToMate(plies Eval) int {
	return int(plies+1) / 2
}

// MateDistance reports the forced mate distance in moves (not plies),
// signed positive when the side the score is relative to delivers mate
// and negative when it is mated, per the external JSON adapter's
// score_to_json rule (|e| > MateThreshold marks a forced mate). ok is
// false for an ordinary centipawn score.
func MateDistance(e Eval) (moves int, ok bool) {
	switch {
	case e > MateThreshold:
		return pliesToMate(Mate - e), true
	case e < -MateThreshold:
		return -pliesToMate(Mate + e), true
	default:
		return 0, false
	}
}
