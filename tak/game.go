package tak

import "errors"

type Config struct {
	Size      int
	Pieces    int
	Capstones int

	// HalfKomi is a flat-count bonus awarded to Black at a flats
	// ending, in half-point units: HalfKomi 5 is a komi of 2.5.
	HalfKomi int
}

var defaultPieces = []int{0, 0, 0, 10, 15, 21, 30, 40, 50}
var defaultCaps = []int{0, 0, 0, 0, 0, 1, 1, 1, 2}

func New(g Config) *Position {
	if g.Pieces == 0 {
		g.Pieces = defaultPieces[g.Size]
	}
	if g.Capstones == 0 {
		g.Capstones = defaultCaps[g.Size]
	}
	p := &Position{
		cfg:         &g,
		whiteStones: g.Pieces,
		whiteCaps:   g.Capstones,
		blackStones: g.Pieces,
		blackCaps:   g.Capstones,
		move:        0,
		board:       make([]Square, g.Size*g.Size),
	}
	p.analyze()
	return p
}

// Square is an ordered stack of pieces. The last element is the top
// of the stack and controls the square.
type Square []Piece

// Top returns the controlling piece of the square, or the zero Piece
// if the square is empty.
func (s Square) Top() Piece {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// Position is a board state together with the game configuration and
// the result as of this state. Positions are immutable once built;
// Move returns a fresh Position and never alters its receiver.
type Position struct {
	cfg         *Config
	whiteStones int
	whiteCaps   int
	blackStones int
	blackCaps   int

	move   int
	board  []Square
	result GameResult
	road   Color
}

// GameResult is the outcome of a game as of a given position.
type GameResult byte

const (
	Ongoing GameResult = iota
	WhiteWin
	BlackWin
	Draw
)

func (r GameResult) Over() bool {
	return r != Ongoing
}

func (r GameResult) String() string {
	switch r {
	case Ongoing:
		return "ongoing"
	case WhiteWin:
		return "white wins"
	case BlackWin:
		return "black wins"
	case Draw:
		return "draw"
	default:
		return "bad result"
	}
}

// FromSquares initializes a Position with the specified squares and
// ply number. `board` is a slice of rows, numbered from low to high,
// each of which is a slice of squares.
func FromSquares(cfg Config, board [][]Square, ply int) (*Position, error) {
	p := New(cfg)
	p.move = ply
	for x := 0; x < p.Size(); x++ {
		for y := 0; y < p.Size(); y++ {
			p.set(x, y, board[y][x])
			for _, piece := range board[y][x] {
				switch piece {
				case MakePiece(White, Capstone):
					p.whiteCaps--
				case MakePiece(Black, Capstone):
					p.blackCaps--
				case MakePiece(White, Flat), MakePiece(White, Wall):
					p.whiteStones--
				case MakePiece(Black, Flat), MakePiece(Black, Wall):
					p.blackStones--
				default:
					return nil, errors.New("bad stone")
				}
			}
		}
	}
	if p.whiteStones < 0 || p.whiteCaps < 0 ||
		p.blackStones < 0 || p.blackCaps < 0 {
		return nil, errors.New("too many stones")
	}
	p.analyze()
	return p, nil
}

func (p *Position) Size() int {
	return p.cfg.Size
}

func (p *Position) HalfKomi() int {
	return p.cfg.HalfKomi
}

func (p *Position) At(x, y int) Square {
	return p.board[y*p.cfg.Size+x]
}

func (p *Position) set(x, y int, s Square) {
	p.board[y*p.cfg.Size+x] = s
}

func (p *Position) ToMove() Color {
	if p.move%2 == 0 {
		return White
	}
	return Black
}

// Ply is the number of moves played so far; White moves on even
// plies.
func (p *Position) Ply() int {
	return p.move
}

func (p *Position) WhiteStones() int {
	return p.whiteStones
}

func (p *Position) BlackStones() int {
	return p.blackStones
}

func (p *Position) WhiteCaps() int {
	return p.whiteCaps
}

func (p *Position) BlackCaps() int {
	return p.blackCaps
}

// Result reports the game outcome as of this position. It is
// computed when the position is built, not on demand.
func (p *Position) Result() GameResult {
	return p.result
}

func (p *Position) GameOver() (over bool, winner Color) {
	switch p.result {
	case Ongoing:
		return false, NoColor
	case WhiteWin:
		return true, White
	case BlackWin:
		return true, Black
	default:
		return true, NoColor
	}
}

// analyze recomputes the cached result. Every constructor and Move
// calls it exactly once on the finished board.
func (p *Position) analyze() {
	if c, ok := p.hasRoad(); ok {
		p.road = c
		if c == White {
			p.result = WhiteWin
		} else {
			p.result = BlackWin
		}
		return
	}
	p.road = NoColor
	if (p.whiteStones+p.whiteCaps) > 0 && (p.blackStones+p.blackCaps) > 0 &&
		!p.boardFull() {
		p.result = Ongoing
		return
	}
	p.result = p.flatsResult()
}

func (p *Position) boardFull() bool {
	for _, sq := range p.board {
		if len(sq) == 0 {
			return false
		}
	}
	return true
}

func (p *Position) roadAt(i int, c Color) bool {
	t := p.board[i].Top()
	return t != 0 && t.Color() == c && t.IsRoad()
}

func (p *Position) hasRoad() (Color, bool) {
	white := p.connects(White)
	black := p.connects(Black)
	switch {
	case white && black:
		// A spread can complete roads for both players at once; the
		// player who made the move wins.
		return p.ToMove().Flip(), true
	case white:
		return White, true
	case black:
		return Black, true
	default:
		return NoColor, false
	}
}

// connects reports whether c's road pieces join the west edge to the
// east edge, or the south edge to the north edge.
func (p *Position) connects(c Color) bool {
	return p.flood(c, false) || p.flood(c, true)
}

func (p *Position) flood(c Color, vertical bool) bool {
	s := p.cfg.Size
	seen := make([]bool, s*s)
	queue := make([]int, 0, s*s)
	for j := 0; j < s; j++ {
		i := j * s
		if vertical {
			i = j
		}
		if p.roadAt(i, c) {
			seen[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := i%s, i/s
		if !vertical && x == s-1 {
			return true
		}
		if vertical && y == s-1 {
			return true
		}
		for _, n := range [4]int{i - 1, i + 1, i - s, i + s} {
			switch {
			case n == i-1 && x == 0:
				continue
			case n == i+1 && x == s-1:
				continue
			case n < 0 || n >= s*s:
				continue
			}
			if !seen[n] && p.roadAt(n, c) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

func (p *Position) countFlats() (w int, b int) {
	cw, cb := 0, 0
	for _, sq := range p.board {
		t := sq.Top()
		if t.Kind() == Flat {
			if t.Color() == White {
				cw++
			} else {
				cb++
			}
		}
	}
	return cw, cb
}

// flatsResult scores a flats ending. Totals are in half-point units
// so that a fractional komi needs no float arithmetic.
func (p *Position) flatsResult() GameResult {
	cw, cb := p.countFlats()
	w, b := 2*cw, 2*cb+p.cfg.HalfKomi
	switch {
	case w > b:
		return WhiteWin
	case b > w:
		return BlackWin
	default:
		return Draw
	}
}

type WinReason int

const (
	RoadWin WinReason = iota
	FlatsWin
	Resignation
)

type WinDetails struct {
	Reason     WinReason
	Winner     Color
	WhiteFlats int
	BlackFlats int
}

func (p *Position) WinDetails() WinDetails {
	if !p.result.Over() {
		panic("WinDetails on a game not over")
	}
	var d WinDetails
	_, d.Winner = p.GameOver()
	d.WhiteFlats, d.BlackFlats = p.countFlats()
	if p.road != NoColor {
		d.Reason = RoadWin
	} else {
		d.Reason = FlatsWin
	}
	return d
}
