package ai

import (
	"errors"
	"log"
	"time"

	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
	"golang.org/x/net/context"
)

const defaultDepth = 3

var (
	// ErrNoMoves is returned when a live position has no legal
	// moves. The rules guarantee a live position always has at
	// least a placement, so seeing this means a broken board.
	ErrNoMoves = errors.New("no legal moves in live position")

	// ErrGameOver is returned when a move is requested for a
	// finished game.
	ErrGameOver = errors.New("game is over")
)

// MinimaxAI picks moves by fixed-depth minimax with alpha-beta
// pruning. White maximizes the evaluation and Black minimizes it;
// values keep one orientation through the whole tree.
type MinimaxAI struct {
	cfg MinimaxConfig

	weights  Weights
	evaluate EvaluationFunc

	st Stats
}

type MinimaxConfig struct {
	Size  int
	Depth int
	Debug int

	Weights  *Weights
	Evaluate EvaluationFunc
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	m := &MinimaxAI{cfg: cfg}
	if m.cfg.Depth <= 0 {
		m.cfg.Depth = defaultDepth
	}
	if cfg.Weights != nil {
		m.weights = *cfg.Weights
	} else {
		m.weights = DefaultWeights
	}
	m.evaluate = cfg.Evaluate
	if m.evaluate == nil {
		m.evaluate = DefaultEvaluate
	}
	return m
}

func (m *MinimaxAI) GetMove(ctx context.Context, p *tak.Position) tak.Move {
	mv, _, e := m.Analyze(p)
	if e != nil {
		panic(e)
	}
	return mv
}

// Analyze searches p to the configured depth and returns the best
// move together with its value. Ties go to the earliest move in rank
// order, so results are deterministic for identical inputs.
func (m *MinimaxAI) Analyze(p *tak.Position) (tak.Move, float64, error) {
	if m.cfg.Size != 0 && m.cfg.Size != p.Size() {
		panic("Analyze: wrong size")
	}
	if p.Result().Over() {
		return tak.Move{}, 0, ErrGameOver
	}
	moves := RankMoves(&m.weights, p)
	if len(moves) == 0 {
		return tak.Move{}, 0, ErrNoMoves
	}

	m.st = Stats{Depth: m.cfg.Depth}
	start := time.Now()

	max := p.ToMove() == tak.White
	α, β := MinEval, MaxEval
	var best tak.Move
	var have bool
	value := MinEval
	if !max {
		value = MaxEval
	}
	for _, mv := range moves {
		child, e := p.Move(mv)
		if e != nil {
			continue
		}
		v := m.minimax(child, m.cfg.Depth-1, α, β)
		if m.cfg.Debug > 2 {
			log.Printf("[minimax]  root: move=%s v=%v", ptn.FormatMove(mv), v)
		}
		if max {
			if !have || v > value {
				value, best, have = v, mv, true
			}
			if value > α {
				α = value
			}
		} else {
			if !have || v < value {
				value, best, have = v, mv, true
			}
			if value < β {
				β = value
			}
		}
	}
	if !have {
		return tak.Move{}, 0, ErrNoMoves
	}
	if m.cfg.Debug > 0 {
		log.Printf("[minimax] depth=%d move=%s value=%v visited=%d evaluated=%d cut=%d time=%s",
			m.cfg.Depth, ptn.FormatMove(best), value,
			m.st.Visited, m.st.Evaluated, m.st.CutNodes,
			time.Since(start).Round(time.Millisecond))
	}
	return best, value, nil
}

// Stats reports counters from the most recent Analyze call.
func (m *MinimaxAI) Stats() Stats {
	return m.st
}

func (m *MinimaxAI) minimax(p *tak.Position, depth int, α, β float64) float64 {
	over := p.Result().Over()
	if over || depth == 0 {
		m.st.Evaluated++
		if over {
			m.st.Terminal++
		}
		return m.evaluate(p)
	}
	m.st.Visited++

	moves := RankMoves(&m.weights, p)
	if len(moves) == 0 {
		panic(ErrNoMoves)
	}
	if p.ToMove() == tak.White {
		value := MinEval
		for _, mv := range moves {
			child, e := p.Move(mv)
			if e != nil {
				continue
			}
			if v := m.minimax(child, depth-1, α, β); v > value {
				value = v
			}
			if value > α {
				α = value
			}
			if value >= β {
				m.st.CutNodes++
				break
			}
		}
		return value
	}
	value := MaxEval
	for _, mv := range moves {
		child, e := p.Move(mv)
		if e != nil {
			continue
		}
		if v := m.minimax(child, depth-1, α, β); v < value {
			value = v
		}
		if value < β {
			β = value
		}
		if value <= α {
			m.st.CutNodes++
			break
		}
	}
	return value
}
