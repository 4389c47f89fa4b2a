package bot

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/net/context"

	"github.com/taklab/flatline/tak"
	"github.com/taklab/flatline/taktest"
)

// script is one step of a scripted server: wait for the bot to send
// expect (if any), then deliver the reply lines.
type script struct {
	expect string
	reply  []string
}

type testClient struct {
	t    *testing.T
	recv chan string
	send chan string
	done chan struct{}
}

func newTestClient(t *testing.T, steps []script) *testClient {
	c := &testClient{
		t:    t,
		recv: make(chan string),
		send: make(chan string),
		done: make(chan struct{}),
	}
	go c.run(steps)
	return c
}

func (c *testClient) run(steps []script) {
	defer close(c.done)
	defer close(c.recv)
	for _, s := range steps {
		if s.expect != "" {
			select {
			case got := <-c.send:
				if got != s.expect {
					c.t.Errorf("bot sent %q, want %q", got, s.expect)
					return
				}
			case <-time.After(5 * time.Second):
				c.t.Errorf("timed out waiting for %q", s.expect)
				return
			}
		}
		for _, line := range s.reply {
			c.recv <- line
		}
	}
}

func (c *testClient) Recv() <-chan string {
	return c.recv
}

func (c *testClient) SendCommand(words ...string) {
	c.send <- strings.Join(words, " ")
}

// staticBot plays a fixed move list and records what it observes.
type staticBot struct {
	moves []tak.Move

	g            *Game
	acceptUndo   bool
	mine, theirs time.Duration
	chat         []string
}

func (b *staticBot) NewGame(g *Game) { b.g = g }
func (b *staticBot) GameOver()       {}

func (b *staticBot) GetMove(ctx context.Context, p *tak.Position, mine, theirs time.Duration) tak.Move {
	if p.ToMove() != b.g.Color {
		return tak.Move{}
	}
	b.mine, b.theirs = mine, theirs
	return b.moves[p.Ply()/2]
}

func (b *staticBot) AcceptUndo() bool { return b.acceptUndo }

func (b *staticBot) HandleChat(who, msg string) {
	b.chat = append(b.chat, who+": "+msg)
}

func TestPlayGameWhite(t *testing.T) {
	b := &staticBot{moves: taktest.Moves("e5 b1 c1 d1 e1")}
	c := newTestClient(t, []script{
		{expect: "Game#100 P E5",
			reply: []string{
				"Shout <heckler> go flatline",
				"Game#100 P A1",
				"Game#100 Time 595 590",
			}},
		{expect: "Game#100 P B1",
			reply: []string{"Game#100 P D5", "Game#100 Time 595 590"}},
		{expect: "Game#100 P C1",
			reply: []string{"Game#100 P D4", "Game#100 Time 595 590"}},
		{expect: "Game#100 P D1",
			reply: []string{"Game#100 P D3", "Game#100 Time 595 590"}},
		{expect: "Game#100 P E1"},
	})

	PlayGame(c, b, "Game Start 100 5 flatline vs opponent white 600")
	<-c.done

	if b.g.Color != tak.White {
		t.Errorf("color = %v, want White", b.g.Color)
	}
	if b.g.Opponent != "opponent" {
		t.Errorf("opponent = %q", b.g.Opponent)
	}
	if len(b.g.Moves) != 9 {
		t.Fatalf("recorded %d moves, want 9", len(b.g.Moves))
	}
	final := b.g.Positions[len(b.g.Positions)-1]
	if over, winner := final.GameOver(); !over || winner != tak.White {
		t.Errorf("final position over=%v winner=%v", over, winner)
	}
	if b.mine != 595*time.Second || b.theirs != 590*time.Second {
		t.Errorf("clocks = %v/%v, want 595s/590s", b.mine, b.theirs)
	}
	if len(b.chat) != 1 || b.chat[0] != "heckler: go flatline" {
		t.Errorf("chat = %v", b.chat)
	}
}

func TestPlayGameBlack(t *testing.T) {
	b := &staticBot{moves: taktest.Moves("e5")}
	c := newTestClient(t, []script{
		{reply: []string{"Game#101 P A1", "Game#101 Time 600 600"}},
		{expect: "Game#101 P E5",
			reply: []string{"Game#101 Over 0-R"}},
	})

	PlayGame(c, b, "Game Start 101 5 opponent vs flatline black 600")
	<-c.done

	if b.g.Color != tak.Black {
		t.Errorf("color = %v, want Black", b.g.Color)
	}
	if b.g.Opponent != "opponent" {
		t.Errorf("opponent = %q", b.g.Opponent)
	}
	if len(b.g.Positions) != 3 {
		t.Errorf("saw %d positions, want 3", len(b.g.Positions))
	}
}

func TestPlayGameUndo(t *testing.T) {
	b := &staticBot{
		moves:      taktest.Moves("e5"),
		acceptUndo: true,
	}
	c := newTestClient(t, []script{
		{expect: "Game#102 P E5",
			reply: []string{"Game#102 RequestUndo"}},
		{expect: "Game#102 RequestUndo",
			reply: []string{"Game#102 Undo"}},
		{expect: "Game#102 P E5",
			reply: []string{"Game#102 Abandoned."}},
	})

	PlayGame(c, b, "Game Start 102 5 flatline vs opponent white 600")
	<-c.done

	if len(b.g.Moves) != 1 {
		t.Errorf("recorded %d moves, want 1", len(b.g.Moves))
	}
	if len(b.g.Positions) != 2 {
		t.Errorf("saw %d positions, want 2", len(b.g.Positions))
	}
}
