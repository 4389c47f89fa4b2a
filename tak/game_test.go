package tak

import "testing"

func TestHasRoad(t *testing.T) {
	p := New(Config{Size: 5})

	p.analyze()
	_, ok := p.hasRoad()
	if ok {
		t.Errorf("empty board hasRoad!")
	}

	for y := 0; y < 5; y++ {
		p.set(2, y, Square{MakePiece(Black, Flat)})
	}

	p.analyze()
	c, ok := p.hasRoad()
	if !ok || c != Black {
		t.Errorf("c=%v hasRoad=%v", c, ok)
	}

	p.set(2, 0, nil)
	p.set(1, 0, Square{MakePiece(Black, Flat)})
	p.set(1, 1, Square{MakePiece(Black, Flat)})
	p.set(2, 1, Square{MakePiece(Black, Flat)})

	p.analyze()
	c, ok = p.hasRoad()
	if !ok || c != Black {
		t.Errorf("bent road: c=%v hasRoad=%v", c, ok)
	}

	p.set(1, 1, Square{MakePiece(Black, Wall)})
	p.analyze()
	_, ok = p.hasRoad()
	if ok {
		t.Errorf("wall at (1,1) still completes a road")
	}

	p.board = make([]Square, 5*5)
	p.set(0, 1, Square{MakePiece(White, Flat)})
	p.set(1, 1, Square{MakePiece(White, Flat)})
	p.set(1, 2, Square{MakePiece(White, Flat)})
	p.set(2, 2, Square{MakePiece(White, Flat)})
	p.set(2, 3, Square{MakePiece(White, Flat)})
	p.set(3, 3, Square{MakePiece(White, Capstone)})
	p.set(3, 4, Square{MakePiece(White, Flat)})
	p.set(4, 4, Square{MakePiece(White, Flat)})

	p.analyze()
	c, ok = p.hasRoad()
	if !ok || c != White {
		t.Errorf("winding road: c=%v hasRoad=%v", c, ok)
	}
}

func TestHasRoadRegression(t *testing.T) {
	p := New(Config{Size: 5})
	p.set(1, 4, Square{MakePiece(White, Flat)})
	p.set(1, 3, Square{MakePiece(White, Flat)})
	p.set(1, 2, Square{MakePiece(White, Flat)})
	p.set(2, 2, Square{MakePiece(White, Flat)})
	p.set(3, 2, Square{MakePiece(White, Flat)})
	p.set(4, 2, Square{MakePiece(White, Flat)})
	p.set(4, 1, Square{MakePiece(White, Flat)})
	p.set(4, 0, Square{MakePiece(White, Flat)})
	p.analyze()
	c, ok := p.hasRoad()
	if !ok || c != White {
		t.Errorf("c=%v hasRoad=%v", c, ok)
	}
}

func TestFlatsResult(t *testing.T) {
	cases := []struct {
		name     string
		halfKomi int
		white    int
		black    int
		out      GameResult
	}{
		{"white ahead", 0, 3, 2, WhiteWin},
		{"black ahead", 0, 2, 3, BlackWin},
		{"tie", 0, 3, 3, Draw},
		{"tie half komi", 1, 3, 3, BlackWin},
		{"komi overcome", 2, 4, 3, Draw},
		{"komi decides", 3, 4, 3, BlackWin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(Config{Size: 5, HalfKomi: tc.halfKomi})
			i := 0
			for n := 0; n < tc.white; n++ {
				p.set(i%5, i/5, Square{MakePiece(White, Flat)})
				i++
			}
			for n := 0; n < tc.black; n++ {
				p.set(i%5, i/5, Square{MakePiece(Black, Flat)})
				i++
			}
			if got := p.flatsResult(); got != tc.out {
				t.Errorf("flatsResult()=%v, want %v", got, tc.out)
			}
		})
	}
}

func TestWallsDontCountFlats(t *testing.T) {
	p := New(Config{Size: 5})
	p.set(0, 0, Square{MakePiece(White, Flat)})
	p.set(1, 0, Square{MakePiece(Black, Wall)})
	p.set(2, 0, Square{MakePiece(Black, Capstone)})
	w, b := p.countFlats()
	if w != 1 || b != 0 {
		t.Errorf("countFlats()=%d,%d, want 1,0", w, b)
	}
}

func TestGameOverReserves(t *testing.T) {
	p := New(Config{Size: 5})
	p.set(0, 0, Square{MakePiece(White, Flat)})
	p.whiteStones = 0
	p.analyze()
	if over, _ := p.GameOver(); over {
		t.Fatalf("over, but capstone is left")
	}
	p.whiteCaps = 0
	p.analyze()
	over, winner := p.GameOver()
	if !over || winner != White {
		t.Fatalf("over=%v winner=%v, want white flats win", over, winner)
	}
	if p.Result() != WhiteWin {
		t.Fatalf("Result()=%v", p.Result())
	}
	d := p.WinDetails()
	if d.Reason != FlatsWin || d.WhiteFlats != 1 || d.BlackFlats != 0 {
		t.Fatalf("WinDetails()=%+v", d)
	}
}

func TestGameOverBoardFull(t *testing.T) {
	p := New(Config{Size: 3, HalfKomi: 2})
	for i := 0; i < 9; i++ {
		c := White
		if i%2 == 1 {
			c = Black
		}
		p.set(i%3, i/3, Square{MakePiece(c, Flat)})
	}
	p.analyze()
	// 5 white flats vs 4 black plus a komi of 1
	if p.Result() != Draw {
		t.Errorf("Result()=%v, want draw", p.Result())
	}
	if over, _ := p.GameOver(); !over {
		t.Errorf("board is full but game is not over")
	}
}

func TestDoubleRoadMoverWins(t *testing.T) {
	// White lifts the top of (1,2), landing on (2,2). That completes
	// White's road up column 2 and uncovers the black flat that
	// completes Black's road up column 1. The mover takes the win.
	b := [][]Square{
		{nil, {MakePiece(Black, Flat)}, {MakePiece(White, Flat)}, nil, nil},
		{nil, {MakePiece(Black, Flat)}, {MakePiece(White, Flat)}, nil, nil},
		{nil, {MakePiece(Black, Flat), MakePiece(White, Flat)}, nil, nil, nil},
		{nil, {MakePiece(Black, Flat)}, {MakePiece(White, Flat)}, nil, nil},
		{nil, {MakePiece(Black, Flat)}, {MakePiece(White, Flat)}, nil, nil},
	}
	p, e := FromSquares(Config{Size: 5}, b, 6)
	if e != nil {
		t.Fatalf("FromSquares: %v", e)
	}
	if p.Result() != Ongoing {
		t.Fatalf("start position already decided: %v", p.Result())
	}
	n, e := p.Move(Move{X: 1, Y: 2, Type: SpreadRight, Drops: MkDrops(1)})
	if e != nil {
		t.Fatalf("spread: %v", e)
	}
	if n.Result() != WhiteWin {
		t.Errorf("Result()=%v, want white (mover) wins", n.Result())
	}
	d := n.WinDetails()
	if d.Reason != RoadWin || d.Winner != White {
		t.Errorf("WinDetails()=%+v", d)
	}
}

func TestFromSquaresReserves(t *testing.T) {
	b := [][]Square{
		{{MakePiece(White, Flat)}, {MakePiece(Black, Flat), MakePiece(White, Capstone)}, nil, nil, nil},
		{nil, {MakePiece(Black, Wall)}, nil, nil, nil},
		{nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil},
		{nil, nil, nil, nil, nil},
	}
	p, e := FromSquares(Config{Size: 5}, b, 4)
	if e != nil {
		t.Fatalf("FromSquares: %v", e)
	}
	if p.WhiteStones() != 20 || p.WhiteCaps() != 0 {
		t.Errorf("white reserves %d/%d, want 20/0", p.WhiteStones(), p.WhiteCaps())
	}
	if p.BlackStones() != 19 || p.BlackCaps() != 1 {
		t.Errorf("black reserves %d/%d, want 19/1", p.BlackStones(), p.BlackCaps())
	}
}
