package game

import "testing"

type cell struct {
	row, col int
	mark     PlayerMark
}

func fill(t *testing.T, b *SubBoard, cells []cell) {
	t.Helper()
	for _, c := range cells {
		if !b.ApplyMove(c.row, c.col, c.mark) {
			t.Fatalf("setup move %+v rejected", c)
		}
	}
}

func TestSubBoardApplyMove(t *testing.T) {
	tests := []struct {
		name     string
		setup    []cell
		row, col int
		player   PlayerMark
		want     bool
	}{
		{
			name:   "Empty cell accepts X",
			row:    1,
			col:    1,
			player: PlayerX,
			want:   true,
		},
		{
			name:   "Occupied cell rejects",
			setup:  []cell{{1, 1, PlayerO}},
			row:    1,
			col:    1,
			player: PlayerX,
			want:   false,
		},
		{
			name:   "Won board rejects",
			setup:  []cell{{0, 0, PlayerO}, {0, 1, PlayerO}, {0, 2, PlayerO}},
			row:    2,
			col:    2,
			player: PlayerX,
			want:   false,
		},
		{
			name:   "Out of bounds rejects",
			row:    3,
			col:    0,
			player: PlayerX,
			want:   false,
		},
		{
			name:   "Negative index rejects",
			row:    0,
			col:    -1,
			player: PlayerO,
			want:   false,
		},
		{
			name:   "Empty mark rejects",
			row:    0,
			col:    0,
			player: None,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b SubBoard
			fill(t, &b, tt.setup)
			before := b

			got := b.ApplyMove(tt.row, tt.col, tt.player)
			if got != tt.want {
				t.Fatalf("ApplyMove() got = %v, want %v", got, tt.want)
			}
			if !got && b != before {
				t.Errorf("rejected move changed the board: before %+v, after %+v", before, b)
			}
			if got && b.Cell(tt.row, tt.col) != tt.player {
				t.Errorf("Cell() got = %v, want %v", b.Cell(tt.row, tt.col), tt.player)
			}
		})
	}
}

func TestSubBoardWinLine(t *testing.T) {
	tests := []struct {
		name      string
		setup     []cell
		last      cell
		wantLine  WinLine
		wantFound bool
	}{
		{
			name:     "X wins - first row",
			setup:    []cell{{0, 0, PlayerX}, {0, 1, PlayerX}},
			last:     cell{0, 2, PlayerX},
			wantLine: WinLine{Kind: LineRow, Index: 0}, wantFound: true,
		},
		{
			name:     "O wins - second column",
			setup:    []cell{{0, 1, PlayerO}, {2, 1, PlayerO}},
			last:     cell{1, 1, PlayerO},
			wantLine: WinLine{Kind: LineColumn, Index: 1}, wantFound: true,
		},
		{
			name:     "X wins - main diagonal",
			setup:    []cell{{0, 0, PlayerX}, {2, 2, PlayerX}},
			last:     cell{1, 1, PlayerX},
			wantLine: WinLine{Kind: LineDiagonal, Index: 0}, wantFound: true,
		},
		{
			name:     "O wins - anti-diagonal",
			setup:    []cell{{0, 2, PlayerO}, {1, 1, PlayerO}},
			last:     cell{2, 0, PlayerO},
			wantLine: WinLine{Kind: LineDiagonal, Index: 1}, wantFound: true,
		},
		{
			name:     "Row reported before diagonal",
			setup:    []cell{{0, 1, PlayerX}, {0, 2, PlayerX}, {1, 1, PlayerX}, {2, 2, PlayerX}},
			last:     cell{0, 0, PlayerX},
			wantLine: WinLine{Kind: LineRow, Index: 0}, wantFound: true,
		},
		{
			name:     "Column reported before diagonal",
			setup:    []cell{{1, 0, PlayerX}, {2, 0, PlayerX}, {1, 1, PlayerX}, {2, 2, PlayerX}},
			last:     cell{0, 0, PlayerX},
			wantLine: WinLine{Kind: LineColumn, Index: 0}, wantFound: true,
		},
		{
			name:     "Row reported before column",
			setup:    []cell{{0, 1, PlayerX}, {0, 2, PlayerX}, {1, 0, PlayerX}, {2, 0, PlayerX}},
			last:     cell{0, 0, PlayerX},
			wantLine: WinLine{Kind: LineRow, Index: 0}, wantFound: true,
		},
		{
			name:     "Row reported before anti-diagonal",
			setup:    []cell{{2, 1, PlayerO}, {2, 2, PlayerO}, {1, 1, PlayerO}, {0, 2, PlayerO}},
			last:     cell{2, 0, PlayerO},
			wantLine: WinLine{Kind: LineRow, Index: 2}, wantFound: true,
		},
		{
			name:  "Opponent line is not credited to the mover",
			setup: []cell{{0, 0, PlayerO}, {0, 1, PlayerO}},
			last:  cell{2, 2, PlayerX},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b SubBoard
			fill(t, &b, tt.setup)
			if b.Winner() != None {
				t.Fatalf("board won before the last move: %v", b.Winner())
			}
			if !b.ApplyMove(tt.last.row, tt.last.col, tt.last.mark) {
				t.Fatalf("last move %+v rejected", tt.last)
			}

			line, found := b.WinLine()
			if found != tt.wantFound {
				t.Fatalf("WinLine() found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				if b.Winner() != None {
					t.Errorf("Winner() got = %v without a win line", b.Winner())
				}
				return
			}
			if line != tt.wantLine {
				t.Errorf("WinLine() got = %v, want %v", line, tt.wantLine)
			}
			if b.Winner() != tt.last.mark {
				t.Errorf("Winner() got = %v, want %v", b.Winner(), tt.last.mark)
			}
		})
	}
}

func TestSubBoardWinnerIsFinal(t *testing.T) {
	var b SubBoard
	fill(t, &b, []cell{{1, 0, PlayerX}, {1, 1, PlayerX}, {1, 2, PlayerX}})

	if b.ApplyMove(0, 0, PlayerO) {
		t.Fatal("move accepted on a won board")
	}
	if b.Winner() != PlayerX {
		t.Errorf("Winner() got = %v, want %v", b.Winner(), PlayerX)
	}
	if line, _ := b.WinLine(); line != (WinLine{Kind: LineRow, Index: 1}) {
		t.Errorf("WinLine() got = %v, want row(1)", line)
	}
	if !b.IsDecided() {
		t.Error("IsDecided() got = false for a won board")
	}
}

func TestSubBoardIsFull(t *testing.T) {
	tests := []struct {
		name  string
		cells []cell
		want  bool
	}{
		{
			name: "Empty board is not full",
			want: false,
		},
		{
			name:  "Partial board is not full",
			cells: []cell{{0, 0, PlayerX}, {1, 1, PlayerO}},
			want:  false,
		},
		{
			name:  "Drawn board is full",
			cells: drawnCells,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b SubBoard
			fill(t, &b, tt.cells)
			if got := b.IsFull(); got != tt.want {
				t.Errorf("IsFull() got = %v, want %v", got, tt.want)
			}
			if got := b.IsDecided(); got != tt.want {
				t.Errorf("IsDecided() got = %v, want %v", got, tt.want)
			}
		})
	}
}

// drawnCells fills a board as
//
//	X O X
//	X O O
//	O X X
var drawnCells = []cell{
	{0, 0, PlayerX}, {0, 1, PlayerO}, {0, 2, PlayerX},
	{1, 0, PlayerX}, {1, 1, PlayerO}, {1, 2, PlayerO},
	{2, 0, PlayerO}, {2, 1, PlayerX}, {2, 2, PlayerX},
}
