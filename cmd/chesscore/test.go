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
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/mess/pkg/board"
)

// runTest implements the "test" mode: run perft from depth 1 to --depth
// on --fen, printing node counts and elapsed time per depth. A progress
// bar tracks root-move completion at each depth.
func runTest(args []string) error {
	values, err := commonFlags().Parse(args)
	if err != nil {
		return err
	}

	fen := stringFlag(values, "--fen", board.StartFEN)
	p, err := board.ParseFEN(fen)
	if err != nil {
		return err
	}

	maxDepth := 5
	if s := stringFlag(values, "--depth", ""); s != "" {
		maxDepth, err = strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("test: invalid --depth %q: %w", s, err)
		}
	}

	wantChart := false
	if v, ok := values["--chart"]; ok && v.Set {
		wantChart = true
	}

	depths := make([]string, 0, maxDepth)
	timings := make([]opts.LineData, 0, maxDepth)

	for depth := 1; depth <= maxDepth; depth++ {
		moves := p.LegalMoves()

		bar := progressbar.NewOptions(
			len(moves),
			progressbar.OptionSetDescription(fmt.Sprintf("perft %d", depth)),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionSetItsString("move"),
			progressbar.OptionShowCount(),
		)

		start := time.Now()
		var nodes int
		for _, m := range moves {
			p.MakeMove(m)
			nodes += p.Perft(depth - 1)
			p.UndoMove()
			bar.Add(1)
		}
		elapsed := time.Since(start)

		fmt.Printf("perft(%d) = %d nodes in %s\n", depth, nodes, elapsed)

		depths = append(depths, strconv.Itoa(depth))
		timings = append(timings, opts.LineData{Value: elapsed.Seconds()})
	}

	if wantChart {
		return writeTimingChart(depths, timings)
	}
	return nil
}

func writeTimingChart(depths []string, timings []opts.LineData) error {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "chesscore perft timing",
			Subtitle: "elapsed seconds per depth",
		}),
	)
	chart.SetXAxis(depths).AddSeries("seconds", timings)

	file, err := os.Create("perft-timing.html")
	if err != nil {
		return fmt.Errorf("test: writing chart: %w", err)
	}
	defer file.Close()

	return chart.Render(file)
}
