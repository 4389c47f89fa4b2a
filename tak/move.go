package tak

import "errors"

type MoveType byte

const (
	PlaceFlat MoveType = 1 + iota
	PlaceWall
	PlaceCapstone
	SpreadLeft
	SpreadRight
	SpreadUp
	SpreadDown
)

type Move struct {
	X, Y  int8
	Type  MoveType
	Drops Drops
}

func (m Move) Equal(rhs Move) bool {
	if m.X != rhs.X || m.Y != rhs.Y {
		return false
	}
	if m.Type != rhs.Type {
		return false
	}
	if !m.IsSpread() {
		return true
	}
	if m.Drops != rhs.Drops {
		return false
	}
	return true
}

func (m Move) IsSpread() bool {
	return m.Type >= SpreadLeft
}

// Dir returns the per-square offset of a spread, and (0, 0) for a
// placement.
func (m Move) Dir() (dx, dy int8) {
	switch m.Type {
	case SpreadLeft:
		return -1, 0
	case SpreadRight:
		return 1, 0
	case SpreadUp:
		return 0, 1
	case SpreadDown:
		return 0, -1
	}
	return 0, 0
}

func (m Move) Dest() (int8, int8) {
	switch m.Type {
	case PlaceFlat, PlaceWall, PlaceCapstone:
		return m.X, m.Y
	case SpreadLeft:
		return m.X - int8(m.Drops.Len()), m.Y
	case SpreadRight:
		return m.X + int8(m.Drops.Len()), m.Y
	case SpreadUp:
		return m.X, m.Y + int8(m.Drops.Len())
	case SpreadDown:
		return m.X, m.Y - int8(m.Drops.Len())
	}
	panic("bad type")
}

var (
	ErrOccupied       = errors.New("position is occupied")
	ErrIllegalSpread  = errors.New("illegal spread")
	ErrNoPieces       = errors.New("no stones remaining")
	ErrNoCapstone     = errors.New("no capstone remaining")
	ErrIllegalOpening = errors.New("illegal opening move")
)

// Move applies m and returns the resulting position. The receiver is
// never modified; stacks shared between the two positions are never
// written through.
func (p *Position) Move(m Move) (*Position, error) {
	if m.X < 0 || m.X >= int8(p.cfg.Size) ||
		m.Y < 0 || m.Y >= int8(p.cfg.Size) {
		return nil, errors.New("move out of bounds")
	}
	next := &Position{
		cfg:         p.cfg,
		whiteStones: p.whiteStones,
		whiteCaps:   p.whiteCaps,
		blackStones: p.blackStones,
		blackCaps:   p.blackCaps,
		move:        p.move + 1,
		board:       make([]Square, len(p.board)),
	}
	copy(next.board, p.board)

	var place Piece
	var dx, dy int8
	switch m.Type {
	case PlaceFlat:
		place = MakePiece(p.ToMove(), Flat)
	case PlaceWall:
		place = MakePiece(p.ToMove(), Wall)
	case PlaceCapstone:
		place = MakePiece(p.ToMove(), Capstone)
	case SpreadLeft, SpreadRight, SpreadUp, SpreadDown:
		dx, dy = m.Dir()
	default:
		return nil, errors.New("invalid move type")
	}

	if place != 0 {
		if p.move < 2 {
			if place.Kind() != Flat {
				return nil, ErrIllegalOpening
			}
			place = MakePiece(place.Color().Flip(), Flat)
		}
		if len(p.At(int(m.X), int(m.Y))) != 0 {
			return nil, ErrOccupied
		}
		var stones *int
		if place.Kind() == Capstone {
			if place.Color() == White {
				stones = &next.whiteCaps
			} else {
				stones = &next.blackCaps
			}
			if *stones <= 0 {
				return nil, ErrNoCapstone
			}
		} else {
			if place.Color() == White {
				stones = &next.whiteStones
			} else {
				stones = &next.blackStones
			}
			if *stones <= 0 {
				return nil, ErrNoPieces
			}
		}
		*stones--
		next.set(int(m.X), int(m.Y), Square{place})
		next.analyze()
		return next, nil
	}

	if p.move < 2 {
		return nil, ErrIllegalOpening
	}
	sq := p.At(int(m.X), int(m.Y))
	if len(sq) == 0 || sq.Top().Color() != p.ToMove() {
		return nil, ErrIllegalSpread
	}
	carry := 0
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		if it.Elem() == 0 {
			return nil, ErrIllegalSpread
		}
		carry += it.Elem()
	}
	if carry < 1 || carry > p.cfg.Size || carry > len(sq) {
		return nil, ErrIllegalSpread
	}
	top := sq.Top()
	lifted := sq[len(sq)-carry:]
	next.set(int(m.X), int(m.Y), sq[:len(sq)-carry:len(sq)-carry])

	x, y := m.X, m.Y
	dropped := 0
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		c := it.Elem()
		x += dx
		y += dy
		if x < 0 || x >= int8(p.cfg.Size) ||
			y < 0 || y >= int8(p.cfg.Size) {
			return nil, ErrIllegalSpread
		}
		dest := next.At(int(x), int(y))
		if t := dest.Top(); t != 0 {
			switch t.Kind() {
			case Capstone:
				return nil, ErrIllegalSpread
			case Wall:
				// Only the capstone, moving alone at the end of the
				// spread, may drop onto a wall; the wall is flattened.
				if carry-dropped != 1 || top.Kind() != Capstone {
					return nil, ErrIllegalSpread
				}
				flat := make(Square, len(dest))
				copy(flat, dest)
				flat[len(flat)-1] = MakePiece(t.Color(), Flat)
				dest = flat
			}
		}
		ns := make(Square, 0, len(dest)+c)
		ns = append(ns, dest...)
		ns = append(ns, lifted[dropped:dropped+c]...)
		next.set(int(x), int(y), ns)
		dropped += c
	}

	next.analyze()
	return next, nil
}

var dropPatterns [][]Drops

func init() {
	dropPatterns = make([][]Drops, 10)
	for s := 1; s <= 8; s++ {
		dropPatterns[s] = calculateDrops(s)
	}
}

// calculateDrops returns every ordered drop sequence whose total is
// between 1 and stack.
func calculateDrops(stack int) []Drops {
	var out []Drops
	for i := 1; i <= stack; i++ {
		out = append(out, MkDrops(i))
		for _, sub := range dropPatterns[stack-i] {
			out = append(out, sub.Prepend(i))
		}
	}
	return out
}

// AllMoves appends the candidate moves for the side to move to
// `moves` and returns the result. Spreads are clipped against the
// board edge but not against intervening walls or capstones, so a
// candidate may still fail when passed to Move. The order is
// deterministic: squares in row-major order, placements before
// spreads, spread directions and drop sequences in a fixed order.
func (p *Position) AllMoves(moves []Move) []Move {
	if p.result.Over() {
		return moves
	}
	next := p.ToMove()
	hasCap := false
	if next == White {
		hasCap = p.whiteCaps > 0
	} else {
		hasCap = p.blackCaps > 0
	}

	for y := 0; y < p.cfg.Size; y++ {
		for x := 0; x < p.cfg.Size; x++ {
			sq := p.At(x, y)
			if len(sq) == 0 {
				moves = append(moves, Move{X: int8(x), Y: int8(y), Type: PlaceFlat})
				if p.move >= 2 {
					moves = append(moves, Move{X: int8(x), Y: int8(y), Type: PlaceWall})
					if hasCap {
						moves = append(moves, Move{X: int8(x), Y: int8(y), Type: PlaceCapstone})
					}
				}
				continue
			}
			if p.move < 2 || sq.Top().Color() != next {
				continue
			}

			type dircnt struct {
				d MoveType
				c int
			}
			dirs := [4]dircnt{
				{SpreadLeft, x},
				{SpreadRight, p.cfg.Size - x - 1},
				{SpreadDown, y},
				{SpreadUp, p.cfg.Size - y - 1},
			}
			h := len(sq)
			if h > p.cfg.Size {
				h = p.cfg.Size
			}
			for _, d := range dirs {
				mask := ^Drops((1 << (4 * uint(d.c))) - 1)
				for _, pat := range dropPatterns[h] {
					if pat&mask == 0 {
						moves = append(moves, Move{X: int8(x), Y: int8(y), Type: d.d, Drops: pat})
					}
				}
			}
		}
	}

	return moves
}
