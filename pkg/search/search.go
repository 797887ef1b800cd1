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

// Package search implements negamax alpha-beta search over a board
// Position with a material-plus-piece-square evaluator. There is no
// transposition table, no quiescence search, no iterative deepening,
// and no time management: BestMove searches to exactly the requested
// depth and returns.
package search

import (
	"laptudirm.com/x/mess/internal/util"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/move"
	"laptudirm.com/x/mess/pkg/search/eval"
)

// NewEngine creates an Engine owning pos. The Engine mutates pos in place
// during search (via MakeMove/UndoMove) and always leaves it unchanged
// once BestMove returns.
func NewEngine(pos *board.Position) *Engine {
	e := &Engine{pos: pos}
	e.rng.Seed(0x9E3779B97F4A7C15) // fixed seed, for reproducible tie-breaks
	return e
}

// Engine owns a Position exclusively for the duration of a search; it is
// not safe for concurrent use.
type Engine struct {
	pos *board.Position
	rng util.PRNG
}

// BestMove searches the position to depth plies and returns a move,
// chosen uniformly at random among every root move tied for the best
// score. Returns move.Null if there are no legal moves; callers should
// inspect GameState first.
func (e *Engine) BestMove(depth int) move.Move {
	moves := e.pos.LegalMoves()
	if len(moves) == 0 {
		return move.Null
	}
	if depth < 1 {
		depth = 1
	}

	orderMoves(e.pos, moves)

	const alphaInit, betaInit = -eval.Inf, eval.Inf
	alpha := alphaInit

	best := []move.Move{moves[0]}
	bestScore := -eval.Inf

	for _, m := range moves {
		e.pos.MakeMove(m)
		// The window's lower bound sits one below the best score so far:
		// a move equal to it returns its exact score (a genuine tie),
		// while a worse move fails low below it instead of landing on it.
		score := -e.negamax(depth-1, 1, -betaInit, -(alpha - 1))
		e.pos.UndoMove()

		switch {
		case score > bestScore:
			bestScore = score
			best = best[:0]
			best = append(best, m)
			if score > alpha {
				alpha = score
			}
		case score == bestScore:
			best = append(best, m)
		}
	}

	if len(best) == 1 {
		return best[0]
	}
	return best[e.rng.Uint64()%uint64(len(best))]
}

// Evaluate returns the static evaluation of the Engine's current position,
// from the perspective of the side to move.
func (e *Engine) Evaluate() eval.Eval {
	return eval.Evaluate(e.pos)
}
