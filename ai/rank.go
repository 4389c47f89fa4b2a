package ai

import (
	"math"

	"github.com/taklab/flatline/tak"
	"golang.org/x/exp/slices"
)

// Weights configures the move ranker. A Weights value is treated as
// immutable once handed to an AI; tuning runs construct fresh values
// rather than mutating shared ones.
type Weights struct {
	Placement float64
	Flat      float64
	Capstone  float64
	Wall      float64

	Center float64
	Road   float64

	NobleNeighbor float64
	NobleStack    float64

	UncoverFlat float64
	CoverSquare float64
}

var DefaultWeights = Weights{
	Placement: 100,
	Flat:      100,
	Capstone:  50,
	Wall:      0,

	Center: 20,
	Road:   10,

	NobleNeighbor: 50,
	NobleStack:    10,

	UncoverFlat: 100,
	CoverSquare: 20,
}

// ScoreMove returns the ranker's score for a single legal move of p.
// Scores are comparable only between moves of the same position.
func ScoreMove(w *Weights, p *tak.Position, m tak.Move) float64 {
	return newRanker(w, p).score(m)
}

// RankMoves generates the legal moves of p and sorts them most
// promising first. During the first two plies each side places a
// piece for the opponent, so the order reverses there. The sort is
// stable; equal scores keep the generator's order.
func RankMoves(w *Weights, p *tak.Position) []tak.Move {
	return rankMoves(newRanker(w, p), p.AllMoves(nil))
}

type rankedMove struct {
	m     tak.Move
	score float64
}

func rankMoves(r *ranker, moves []tak.Move) []tak.Move {
	ranked := make([]rankedMove, len(moves))
	for i, m := range moves {
		ranked[i] = rankedMove{m, r.score(m)}
	}
	flip := 1.0
	if r.p.Ply() < 2 {
		flip = -1.0
	}
	slices.SortStableFunc(ranked, func(a, b rankedMove) int {
		switch {
		case flip*a.score > flip*b.score:
			return -1
		case flip*a.score < flip*b.score:
			return 1
		}
		return 0
	})
	for i, rm := range ranked {
		moves[i] = rm.m
	}
	return moves
}

// ranker carries the per-position state shared by all move scores:
// the mover's road-piece counts per row and column, computed once.
type ranker struct {
	w    *Weights
	p    *tak.Position
	me   tak.Color
	rows []int
	cols []int
}

func newRanker(w *Weights, p *tak.Position) *ranker {
	r := &ranker{
		w:    w,
		p:    p,
		me:   p.ToMove(),
		rows: make([]int, p.Size()),
		cols: make([]int, p.Size()),
	}
	for y := 0; y < p.Size(); y++ {
		for x := 0; x < p.Size(); x++ {
			top := p.At(x, y).Top()
			if top.Color() == r.me && top.IsRoad() {
				r.rows[y]++
				r.cols[x]++
			}
		}
	}
	return r
}

func (r *ranker) score(m tak.Move) float64 {
	var s float64
	if m.IsSpread() {
		s = r.scoreSpread(m)
	} else {
		s = r.scorePlace(m)
	}
	c := float64(r.p.Size()-1) / 2
	dist := math.Abs(float64(m.X)-c) + math.Abs(float64(m.Y)-c)
	return s - r.w.Center*dist
}

func (r *ranker) scorePlace(m tak.Move) float64 {
	s := r.w.Placement
	switch m.Type {
	case tak.PlaceFlat:
		s += r.w.Flat
	case tak.PlaceCapstone:
		s += r.w.Capstone
	case tak.PlaceWall:
		s += r.w.Wall
	}
	s += r.w.Road * float64(r.rows[m.Y]+r.cols[m.X])
	if m.Type == tak.PlaceWall || m.Type == tak.PlaceCapstone {
		s += r.scoreNoble(int(m.X), int(m.Y))
	}
	return s
}

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// scoreNoble rewards dropping a wall or capstone next to tall stacks,
// and especially next to stacks the opponent controls.
func (r *ranker) scoreNoble(x, y int) float64 {
	var s float64
	for _, d := range orthogonal {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= r.p.Size() || ny < 0 || ny >= r.p.Size() {
			continue
		}
		sq := r.p.At(nx, ny)
		if len(sq) == 0 {
			continue
		}
		if sq.Top().Color() != r.me {
			s += r.w.NobleNeighbor
		}
		s += r.w.NobleStack * float64(len(sq))
	}
	return s
}

// scoreSpread charges for uncovering a friendly flat at the origin
// and pays for each intermediate drop square whose new top piece is
// the mover's. The final drop square is where the stack ends up and
// is not an intermediate.
func (r *ranker) scoreSpread(m tak.Move) float64 {
	var s float64
	sq := r.p.At(int(m.X), int(m.Y))
	if sq.Top().Kind() == tak.Flat {
		s -= r.w.UncoverFlat
	}
	carry := m.Drops.Carry()
	lifted := sq[len(sq)-carry:]
	dropped := 0
	for it := m.Drops.Iterator(); it.Next().Ok(); it = it.Next() {
		dropped += it.Elem()
		if lifted[dropped-1].Color() == r.me {
			s += r.w.CoverSquare
		}
	}
	return s
}
