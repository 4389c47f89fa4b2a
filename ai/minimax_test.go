package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/taklab/flatline/tak"
	"github.com/taklab/flatline/taktest"
)

// plainSearch is minimax with no pruning, the reference the
// alpha-beta search must agree with move for move and value for
// value.
func plainSearch(w *Weights, e EvaluationFunc, p *tak.Position, depth int) float64 {
	if p.Result().Over() || depth == 0 {
		return e(p)
	}
	if p.ToMove() == tak.White {
		best := MinEval
		for _, mv := range RankMoves(w, p) {
			child, err := p.Move(mv)
			if err != nil {
				continue
			}
			if v := plainSearch(w, e, child, depth-1); v > best {
				best = v
			}
		}
		return best
	}
	best := MaxEval
	for _, mv := range RankMoves(w, p) {
		child, err := p.Move(mv)
		if err != nil {
			continue
		}
		if v := plainSearch(w, e, child, depth-1); v < best {
			best = v
		}
	}
	return best
}

func plainBest(w *Weights, e EvaluationFunc, p *tak.Position, depth int) (tak.Move, float64) {
	max := p.ToMove() == tak.White
	var best tak.Move
	var have bool
	value := MinEval
	if !max {
		value = MaxEval
	}
	for _, mv := range RankMoves(w, p) {
		child, err := p.Move(mv)
		if err != nil {
			continue
		}
		v := plainSearch(w, e, child, depth-1)
		if !have || max && v > value || !max && v < value {
			value, best, have = v, mv, true
		}
	}
	return best, value
}

func TestPruningPreservesSearch(t *testing.T) {
	cases := []struct {
		tps      string
		maxDepth int
	}{
		{"x4/x,2,1,x/x,1,2,x/x4 1 5", 3},
		{"x4/x,21,1,x/2,12,x2/1,x3 2 6", 3},
		{"x5/x3,2,x/x2,1,2,x/x2,1,x2/x4,1 1 8", 2},
	}
	for _, tc := range cases {
		p := taktest.TPS(tc.tps)
		for depth := 1; depth <= tc.maxDepth; depth++ {
			m := NewMinimax(MinimaxConfig{Depth: depth})
			gotMove, gotVal, err := m.Analyze(p)
			require.NoError(t, err)
			wantMove, wantVal := plainBest(&DefaultWeights, Evaluate, p, depth)
			require.Equal(t, wantVal, gotVal, "tps=%q depth=%d", tc.tps, depth)
			require.Equal(t, wantMove, gotMove, "tps=%q depth=%d", tc.tps, depth)
		}
	}
}

func TestSearchDepthZero(t *testing.T) {
	m := NewMinimax(MinimaxConfig{Depth: 3})
	for _, tps := range []string{
		"x4/x,2,1,x/x,1,2,x/x4 1 5",
		"x5/x3,2,x/x2,1,2,x/x2,1,x2/x4,1 1 8",
	} {
		p := taktest.TPS(tps)
		require.Equal(t, Evaluate(p), m.minimax(p, 0, MinEval, MaxEval),
			"a zero-depth search is exactly the static evaluation")
	}
}

func TestSearchTakesWinInOne(t *testing.T) {
	white := taktest.TPS("x5/x3,1,x/x3,1,x/x3,1,x/2,x2,1,2 1 7")
	for depth := 1; depth <= 4; depth++ {
		m := NewMinimax(MinimaxConfig{Depth: depth})
		mv, v, err := m.Analyze(white)
		require.NoError(t, err)
		require.Equal(t, MaxEval, v, "depth=%d", depth)
		next, e := white.Move(mv)
		require.NoError(t, e)
		require.Equal(t, tak.WhiteWin, next.Result(), "depth=%d", depth)
	}

	black := taktest.TPS("x5/x3,2,x/x3,2,x/x3,2,x/1,x2,2,1 2 7")
	for depth := 1; depth <= 4; depth++ {
		m := NewMinimax(MinimaxConfig{Depth: depth})
		mv, v, err := m.Analyze(black)
		require.NoError(t, err)
		require.Equal(t, MinEval, v, "depth=%d", depth)
		next, e := black.Move(mv)
		require.NoError(t, e)
		require.Equal(t, tak.BlackWin, next.Result(), "depth=%d", depth)
	}
}

func TestAnalyzeTieBreak(t *testing.T) {
	p, e := tak.FromSquares(tak.Config{Size: 5}, emptySquares(5), 2)
	require.NoError(t, e)

	m := NewMinimax(MinimaxConfig{Depth: 1})
	mv, v, err := m.Analyze(p)
	require.NoError(t, err)
	require.Equal(t, tak.Move{X: 2, Y: 2, Type: tak.PlaceFlat}, mv,
		"every flat evaluates alike; rank order decides")
	require.Equal(t, 3.0, v)

	m2 := NewMinimax(MinimaxConfig{Depth: 2})
	mv2, v2, err := m2.Analyze(p)
	require.NoError(t, err)
	require.Equal(t, tak.Move{X: 2, Y: 2, Type: tak.PlaceFlat}, mv2)
	require.Equal(t, 0.0, v2, "any black flat answers any white flat")
}

func TestAnalyzeDeterministic(t *testing.T) {
	p := taktest.TPS("x5/x3,2,x/x2,1,2,x/x2,1,x2/x4,1 1 8")
	m := NewMinimax(MinimaxConfig{Depth: 3})
	mv1, v1, err1 := m.Analyze(p)
	mv2, v2, err2 := m.Analyze(p)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, mv1, mv2)
	require.Equal(t, v1, v2)
}

func TestAnalyzeGameOver(t *testing.T) {
	p := taktest.Position(5, "e5 a1 b1 d5 c1 d4 d1 d3 e1")
	require.True(t, p.Result().Over())

	m := NewMinimax(MinimaxConfig{Depth: 2})
	_, _, err := m.Analyze(p)
	require.ErrorIs(t, err, ErrGameOver)
	require.Panics(t, func() { m.GetMove(context.Background(), p) })
}

func TestAnalyzeWrongSize(t *testing.T) {
	m := NewMinimax(MinimaxConfig{Size: 4, Depth: 1})
	require.Panics(t, func() {
		m.Analyze(tak.New(tak.Config{Size: 5}))
	})
}

func TestAnalyzeDefaultDepth(t *testing.T) {
	m := NewMinimax(MinimaxConfig{})
	_, _, err := m.Analyze(taktest.TPS("x4/x,2,1,x/x,1,2,x/x4 1 5"))
	require.NoError(t, err)
	require.Equal(t, 3, m.Stats().Depth)
}

func TestAnalyzeStats(t *testing.T) {
	m := NewMinimax(MinimaxConfig{Depth: 2})
	_, _, err := m.Analyze(taktest.TPS("x5/x3,2,x/x2,1,2,x/x2,1,x2/x4,1 1 8"))
	require.NoError(t, err)
	st := m.Stats()
	require.Equal(t, 2, st.Depth)
	require.NotZero(t, st.Visited)
	require.NotZero(t, st.Evaluated)
}
