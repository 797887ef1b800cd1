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

import "github.com/mitchellh/go-wordwrap"

const rawUsage = `chesscore <mode> [flags]

Modes:
  board   render the position in a terminal grid and exit on keypress
  bot     have the engine play one move for the requested color
  test    run perft from depth 1 to --depth and print counts and timing

Flags:
  --fen <fen>            starting position, default the game's starting position
  --depth <n>            perft ceiling for "test" mode, default 5
  --engine-depth <n>     search depth for "bot" mode, default 4
  --color <w|b>          side the engine plays in "bot" mode, default w
  --chart                in "test" mode, also write a depth-vs-time HTML chart`

// usage is rawUsage wrapped to a terminal-friendly width rather than
// hand-split across lines.
var usage = wordwrap.WrapString(rawUsage, 78)
