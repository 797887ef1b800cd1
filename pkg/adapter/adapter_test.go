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

package adapter_test

import (
	"testing"

	"laptudirm.com/x/mess/pkg/adapter"
	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/search/eval"
)

func TestMoveToJSON(t *testing.T) {
	p := board.NewStartingPosition()
	m, err := p.ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}

	got := adapter.MoveToJSON(m)
	if got.Long != "e2e4" || got.From != "e2" || got.To != "e4" || got.Promo != nil {
		t.Errorf("MoveToJSON(e2e4) = %+v", got)
	}
}

func TestMoveToJSONPromotion(t *testing.T) {
	p, err := board.ParseFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := p.ParseMove("a7a8q")
	if err != nil {
		t.Fatal(err)
	}

	got := adapter.MoveToJSON(m)
	if got.Promo == nil || *got.Promo != "q" {
		t.Errorf("MoveToJSON(a7a8q).Promo = %v, want \"q\"", got.Promo)
	}
}

func TestScoreToJSONCentipawn(t *testing.T) {
	got := adapter.ScoreToJSON(150)
	if got.Mate != nil || got.CP == nil || *got.CP != 150 {
		t.Errorf("ScoreToJSON(150) = %+v", got)
	}
}

func TestScoreToJSONMate(t *testing.T) {
	got := adapter.ScoreToJSON(eval.Mate - 1)
	if got.CP != nil || got.Mate == nil || *got.Mate <= 0 {
		t.Errorf("ScoreToJSON(mate) = %+v, want positive mate count", got)
	}

	got = adapter.ScoreToJSON(-eval.Mate + 1)
	if got.CP != nil || got.Mate == nil || *got.Mate >= 0 {
		t.Errorf("ScoreToJSON(mated) = %+v, want negative mate count", got)
	}
}

func TestApplyLongMoveLegal(t *testing.T) {
	p := board.NewStartingPosition()
	status, err := adapter.ApplyLongMove(p, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if !status.Legal || status.FEN == nil || status.Status != "ongoing" || status.LastMove != "e2e4" {
		t.Errorf("ApplyLongMove(e2e4) = %+v", status)
	}
}

func TestApplyLongMoveIllegal(t *testing.T) {
	p := board.NewStartingPosition()
	status, err := adapter.ApplyLongMove(p, "e2e5")
	if err != adapter.ErrIllegalMove {
		t.Errorf("err = %v, want ErrIllegalMove", err)
	}
	if status.Legal || status.FEN != nil {
		t.Errorf("ApplyLongMove(e2e5) = %+v, want legal=false, fen=nil", status)
	}

	// p must be unchanged: the starting position still has 20 legal moves.
	if got := len(p.LegalMoves()); got != 20 {
		t.Errorf("position mutated by an illegal ApplyLongMove: %d legal moves, want 20", got)
	}
}

func TestBoardStatusCheckmate(t *testing.T) {
	p, err := board.ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	status, err := adapter.ApplyLongMove(p, "a1a8")
	if err != nil {
		t.Fatal(err)
	}
	if status.Status != "mate" {
		t.Errorf("status after Ra8# = %q, want \"mate\"", status.Status)
	}
}
