// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package attacks

import (
	"laptudirm.com/x/mess/pkg/bitboard"
	"laptudirm.com/x/mess/pkg/square"
)

// initRayTables fills Between for every square pair aligned orthogonally
// or diagonally, by walking each of the 8 directions from every square on
// an empty board. Between[a][b] is the zero bitboard for unaligned pairs.
func initRayTables() {
	for s := square.A1; s <= square.H8; s++ {
		for _, d := range queenDirs {
			var ray bitboard.Board
			to := step(s, d.DF, d.DR)
			for to != square.None {
				// The squares walked so far (before reaching to) are
				// strictly between s and to.
				Between[s][to] = ray
				ray.Set(to)
				to = step(to, d.DF, d.DR)
			}
		}
	}
}
