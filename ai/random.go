package ai

import (
	"time"

	"github.com/taklab/flatline/tak"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
)

// RandomAI plays uniformly random legal moves. It is the weakest
// self-play baseline.
type RandomAI struct {
	r *rand.Rand
}

func NewRandom(seed int64) *RandomAI {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomAI{
		r: rand.New(rand.NewSource(uint64(seed))),
	}
}

func (r *RandomAI) GetMove(ctx context.Context, p *tak.Position) tak.Move {
	moves := p.AllMoves(nil)
	for len(moves) > 0 {
		i := r.r.Intn(len(moves))
		if _, e := p.Move(moves[i]); e == nil {
			return moves[i]
		}
		moves[i] = moves[len(moves)-1]
		moves = moves[:len(moves)-1]
	}
	panic(ErrNoMoves)
}
