package serve

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/pb"
	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/taktest"
)

func TestAnalyze(t *testing.T) {
	s := &server{}
	pos := taktest.Position(5, "a1 e5 b1 d5")

	resp, err := s.Analyze(context.Background(), &pb.AnalyzeRequest{
		Position: ptn.FormatTPS(pos),
		Depth:    2,
	})
	require.NoError(t, err)
	mv, err := ptn.ParseMove(resp.Move)
	require.NoError(t, err, "response move parses as PTN")
	_, err = pos.Move(mv)
	require.NoError(t, err, "response move is legal in the position")
	require.Equal(t, int32(2), resp.Depth)
	require.NotZero(t, resp.Visited)
	require.NotZero(t, resp.Evaluated)
	require.False(t, math.IsInf(resp.Value, 0), "ongoing position has a finite value")

	_, err = s.Analyze(context.Background(), &pb.AnalyzeRequest{Position: "garbage"})
	require.Error(t, err, "bad TPS is rejected")

	won := taktest.Position(5, "e5 a1 b1 d5 c1 d4 d1 d3 e1")
	_, err = s.Analyze(context.Background(), &pb.AnalyzeRequest{
		Position: ptn.FormatTPS(won),
	})
	require.ErrorIs(t, err, ai.ErrGameOver)
}

func TestAnalyzeReusesPlayer(t *testing.T) {
	s := &server{}
	req := &pb.AnalyzeRequest{
		Position: ptn.FormatTPS(taktest.Position(5, "a1 e5")),
		Depth:    2,
	}
	_, err := s.Analyze(context.Background(), req)
	require.NoError(t, err)
	first := s.analyzeCache.player
	_, err = s.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Same(t, first, s.analyzeCache.player, "same config reuses the engine")

	req.Depth = 3
	_, err = s.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.NotSame(t, first, s.analyzeCache.player, "new depth rebuilds the engine")
}

func TestEvaluate(t *testing.T) {
	s := &server{}
	pos := taktest.Position(5, "a1 e5 b1 d5")

	resp, err := s.Evaluate(context.Background(), &pb.EvaluateRequest{
		Position: ptn.FormatTPS(pos),
	})
	require.NoError(t, err)
	require.Equal(t, ai.Evaluate(pos), resp.Value)
	require.Contains(t, resp.Breakdown, "white")
	require.Contains(t, resp.Breakdown, "black")

	_, err = s.Evaluate(context.Background(), &pb.EvaluateRequest{Position: "x9/"})
	require.Error(t, err)
}
