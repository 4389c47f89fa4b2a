package ai

import (
	"golang.org/x/net/context"

	"github.com/taklab/flatline/tak"
)

// GreedyAI plays the move ranker as a one-ply policy: apply each
// candidate, keep the best immediate evaluation for the mover, and
// refuse moves that let the opponent win on the reply unless every
// move does.
type GreedyAI struct {
	weights  Weights
	evaluate EvaluationFunc
}

func NewGreedy(w *Weights) *GreedyAI {
	g := &GreedyAI{evaluate: DefaultEvaluate}
	if w != nil {
		g.weights = *w
	} else {
		g.weights = DefaultWeights
	}
	return g
}

func (g *GreedyAI) GetMove(ctx context.Context, p *tak.Position) tak.Move {
	mv, e := g.Select(p)
	if e != nil {
		panic(e)
	}
	return mv
}

// Select returns the greedy choice for p. Ties go to the earliest
// candidate in rank order.
func (g *GreedyAI) Select(p *tak.Position) (tak.Move, error) {
	if p.Result().Over() {
		return tak.Move{}, ErrGameOver
	}
	moves := RankMoves(&g.weights, p)
	if len(moves) == 0 {
		return tak.Move{}, ErrNoMoves
	}
	sign := 1.0
	if p.ToMove() == tak.Black {
		sign = -1.0
	}
	var best tak.Move
	var bestVal float64
	var bestSafe, have bool
	for _, mv := range moves {
		child, e := p.Move(mv)
		if e != nil {
			continue
		}
		v := sign * g.evaluate(child)
		safe := !winInOne(child)
		better := !have ||
			(safe && !bestSafe) ||
			(safe == bestSafe && v > bestVal)
		if better {
			best, bestVal, bestSafe, have = mv, v, safe, true
		}
	}
	if !have {
		return tak.Move{}, ErrNoMoves
	}
	return best, nil
}

// winInOne reports whether the side to move in p has an immediate
// winning move. A finished position has no moves at all.
func winInOne(p *tak.Position) bool {
	if p.Result().Over() {
		return false
	}
	them := p.ToMove()
	for _, mv := range p.AllMoves(nil) {
		child, e := p.Move(mv)
		if e != nil {
			continue
		}
		if over, winner := child.GameOver(); over && winner == them {
			return true
		}
	}
	return false
}
