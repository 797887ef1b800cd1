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

package search

import (
	"laptudirm.com/x/mess/internal/util"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/search/eval"
)

// negamax is the alpha-beta search core. It has no transposition table,
// no quiescence search, and no iterative deepening: depth is searched to
// exactly the requested ply and no further. ply is the distance from the
// root move, used only to grade mate scores so that a shorter forced mate
// is preferred over a longer one.
func (e *Engine) negamax(depth, ply int, alpha, beta eval.Eval) eval.Eval {
	switch e.pos.GameState() {
	case board.Checkmate:
		return eval.MatedIn(ply)
	case board.Draw:
		return eval.Draw
	}
	if depth == 0 {
		return eval.Evaluate(e.pos)
	}

	moves := e.pos.LegalMoves()
	orderMoves(e.pos, moves)

	for _, m := range moves {
		e.pos.MakeMove(m)
		score := -e.negamax(depth-1, ply+1, -beta, -alpha)
		e.pos.UndoMove()

		if score >= beta {
			return beta // fail-hard beta cutoff
		}
		alpha = util.Max(alpha, score)
	}

	return alpha
}
