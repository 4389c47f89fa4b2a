package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/taklab/flatline/taktest"
)

func TestRandomSeeded(t *testing.T) {
	p := taktest.TPS("x4/x,2,1,x/x,1,2,x/x4 1 5")
	ctx := context.Background()
	a, b := NewRandom(7), NewRandom(7)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.GetMove(ctx, p), b.GetMove(ctx, p),
			"identical seeds draw identical moves")
	}
}

func TestRandomLegal(t *testing.T) {
	p := taktest.TPS("x5/x3,2,x/x2,1,2,x/x2,1,x2/x4,1 1 8")
	ctx := context.Background()
	r := NewRandom(1)
	for i := 0; i < 25; i++ {
		_, e := p.Move(r.GetMove(ctx, p))
		require.NoError(t, e)
	}
}
