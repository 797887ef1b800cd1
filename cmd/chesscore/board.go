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

package main

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mitchellh/colorstring"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/piece"
	"laptudirm.com/x/mess/pkg/square"
)

// runBoard implements the "board" mode: render --fen (or the starting
// position) as an 8x8 terminal grid with a status line, and exit on any
// keypress.
func runBoard(args []string) error {
	values, err := commonFlags().Parse(args)
	if err != nil {
		return err
	}

	fen := stringFlag(values, "--fen", board.StartFEN)
	p, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("board: initializing terminal: %w", err)
	}
	defer ui.Close()

	grid := boardTable(p)
	width, height := ui.TerminalDimensions()
	grid.SetRect(0, 0, width, height-3)

	status := widgets.NewParagraph()
	status.Text = statusLine(p)
	status.SetRect(0, height-3, width, height)

	ui.Render(grid, status)

	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			return nil
		}
	}
	return nil
}

// boardTable renders p's 8x8 grid, rank 8 at the top, file a on the left,
// matching the conventional human board orientation regardless of the
// a1=0 square numbering used internally.
func boardTable(p *board.Position) *widgets.Table {
	table := widgets.NewTable()
	table.Title = "chesscore"
	table.Rows = make([][]string, 8)

	for row := 0; row < 8; row++ {
		rank := 7 - row
		cells := make([]string, 8)
		for file := 0; file < 8; file++ {
			s := square.Square(rank*8 + file)
			cells[file] = pieceGlyph(p.PieceAt(s))
		}
		table.Rows[row] = cells
	}

	table.TextStyle = ui.NewStyle(ui.ColorWhite)
	table.RowSeparator = true
	return table
}

func pieceGlyph(pc piece.Piece) string {
	if pc.IsEmpty() {
		return "."
	}
	return pc.String()
}

// statusLine colorizes the side to move and game outcome, following the
// teacher's tuner CLI's use of colorstring for terminal output.
func statusLine(p *board.Position) string {
	side := "White"
	if p.SideToMove == piece.Black {
		side = "Black"
	}

	switch p.GameState() {
	case board.Checkmate:
		return colorstring.Color(fmt.Sprintf("[red]checkmate — %s to move, %s has won", side, p.Winner()))
	case board.Draw:
		return colorstring.Color(fmt.Sprintf("[yellow]draw — %s to move, no legal moves", side))
	default:
		return colorstring.Color(fmt.Sprintf("[green]%s to move[reset] — %s", side, p.FEN()))
	}
}
