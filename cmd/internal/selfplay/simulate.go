package selfplay

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

type Config struct {
	Games int

	Verbose bool

	Initial []*tak.Position

	P1, P2 Factory

	Size  int
	Debug int

	Swap    bool
	Threads int
	Seed    int64
	Cutoff  int
}

type Stats struct {
	Players [2]struct {
		Wins      int
		WhiteWins int
		BlackWins int
		FlatWins  int
		RoadWins  int
	}
	White, Black int
	Ties         int
	Cutoff       int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black + s.Ties + s.Cutoff
}

type gameSpec struct {
	c       *Config
	opening *tak.Position
	oi      int
	i       int
	seed    uint64
	p1color tak.Color
}

type Result struct {
	spec     gameSpec
	Initial  *tak.Position
	Position *tak.Position
	Moves    []tak.Move
	Winner   tak.Color
}

// P1Color reports which color player one held in this game.
func (r *Result) P1Color() tak.Color {
	return r.spec.p1color
}

// Simulate plays every configured pairing and aggregates the results.
func Simulate(c *Config) Stats {
	var st Stats
	rc := make(chan Result)
	go startGames(c, rc)
	for r := range rc {
		if c.Verbose {
			log.Info().Msgf("game %d/%d plies=%d p1=%s winner=%s",
				r.spec.oi, r.spec.i, r.Position.Ply(),
				r.spec.p1color, r.Winner)
		}
		switch {
		case r.Winner == tak.White:
			st.White++
		case r.Winner == tak.Black:
			st.Black++
		default:
			if over, _ := r.Position.GameOver(); over {
				st.Ties++
			} else {
				st.Cutoff++
			}
		}
		if r.Winner != tak.NoColor {
			pst := &st.Players[0]
			if r.Winner == r.spec.p1color.Flip() {
				pst = &st.Players[1]
			}
			if r.Winner == tak.White {
				pst.WhiteWins++
			} else {
				pst.BlackWins++
			}
			pst.Wins++
			switch r.Position.WinDetails().Reason {
			case tak.FlatsWin:
				pst.FlatWins++
			case tak.RoadWin:
				pst.RoadWins++
			}
		}
		st.Games = append(st.Games, r)
	}

	return st
}

func startGames(c *Config, rc chan<- Result) {
	gc := make(chan gameSpec)
	var grp errgroup.Group
	for i := 0; i < c.Threads; i++ {
		grp.Go(func() error {
			worker(c, gc, rc)
			return nil
		})
	}
	r := rand.New(rand.NewSource(uint64(c.Seed)))
	for oi, pos := range c.Initial {
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			p1color := tak.White
			if c.Swap && g%2 == 1 {
				p1color = tak.Black
			}
			gc <- gameSpec{
				c:       c,
				opening: pos,
				oi:      oi,
				i:       g,
				seed:    r.Uint64(),
				p1color: p1color,
			}
		}
	}
	close(gc)
	grp.Wait()
	close(rc)
}

func worker(c *Config, games <-chan gameSpec, out chan<- Result) {
	ctx := context.Background()
	for g := range games {
		r := rand.New(rand.NewSource(g.seed))
		white := c.P1.NewPlayer(r)
		black := c.P2.NewPlayer(r)
		if g.p1color != tak.White {
			white, black = black, white
		}

		var ms []tak.Move
		p := g.opening
		var winner tak.Color
		for i := 0; i < c.Cutoff; i++ {
			var player ai.TakPlayer
			if p.ToMove() == tak.White {
				player = white
			} else {
				player = black
			}
			m := player.GetMove(ctx, p)
			next, err := p.Move(m)
			if err != nil {
				panic(fmt.Sprintf("illegal move: %s: %v", ptn.FormatMove(m), err))
			}
			p = next
			ms = append(ms, m)
			if ok, w := p.GameOver(); ok {
				winner = w
				break
			}
		}
		out <- Result{
			spec:     g,
			Initial:  g.opening,
			Position: p,
			Moves:    ms,
			Winner:   winner,
		}
	}
}
