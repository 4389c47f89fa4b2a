package play

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/cli"
	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

type Command struct {
	white   string
	black   string
	size    int
	komi    float64
	debug   int
	limit   time.Duration
	weights string
	out     string

	unicode bool
	emoji   bool

	weightSet *ai.Weights
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Tak from the command line" }
func (*Command) Usage() string {
	return `play

Play Tak on the command-line, against a human or AI.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "human", "white player (human, rand[:seed], greedy, minimax[:depth])")
	flags.StringVar(&c.black, "black", "human", "black player")
	flags.IntVar(&c.size, "size", 5, "game size")
	flags.Float64Var(&c.komi, "komi", 0, "komi awarded to black at a flats ending")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.DurationVar(&c.limit, "limit", time.Minute, "ai time limit")
	flags.StringVar(&c.weights, "weights", "", "JSON file of ranker weights")
	flags.StringVar(&c.out, "out", "", "write ptn to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	flags.BoolVar(&c.emoji, "emoji", false, "render board with emoji glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.weights != "" {
		data, err := os.ReadFile(c.weights)
		if err != nil {
			log.Fatalf("read weights: %v", err)
		}
		var w ai.Weights
		if err := json.Unmarshal(data, &w); err != nil {
			log.Fatalf("parse weights: %v", err)
		}
		c.weightSet = &w
	}

	in := bufio.NewReader(os.Stdin)
	st := &cli.CLI{
		Config: tak.Config{Size: c.size, HalfKomi: int(2 * c.komi)},
		Out:    os.Stdout,
		White:  c.parsePlayer(in, c.white),
		Black:  c.parsePlayer(in, c.black),
		Glyphs: c.glyphs(),
	}
	final := st.Play()
	if c.out != "" {
		p := &ptn.PTN{}
		p.Tags = []ptn.Tag{
			{Name: "Size", Value: strconv.Itoa(c.size)},
			{Name: "Player1", Value: c.white},
			{Name: "Player2", Value: c.black},
		}
		if c.komi != 0 {
			p.Tags = append(p.Tags, ptn.Tag{
				Name: "Komi", Value: strconv.FormatFloat(c.komi, 'g', -1, 64)})
		}
		p.AddMoves(st.Moves())
		if over, _ := final.GameOver(); over {
			p.Ops = append(p.Ops, &ptn.GameOver{End: final.WinDetails()})
		}
		if err := os.WriteFile(c.out, []byte(p.Render()), 0644); err != nil {
			log.Printf("write %s: %v", c.out, err)
		}
	}

	return subcommands.ExitSuccess
}

func (c *Command) glyphs() *cli.Glyphs {
	switch {
	case c.emoji:
		return &cli.EmojiGlyphs
	case c.unicode:
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

type aiWrapper struct {
	limit time.Duration
	p     ai.TakPlayer
}

func (a *aiWrapper) GetMove(p *tak.Position) tak.Move {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(a.limit))
	defer cancel()
	return a.p.GetMove(ctx, p)
}

func (c *Command) parsePlayer(in *bufio.Reader, s string) cli.Player {
	if s == "human" {
		return cli.NewCLIPlayer(os.Stdout, in)
	}
	if s == "greedy" {
		return &aiWrapper{c.limit, ai.NewGreedy(c.weightSet)}
	}
	if strings.HasPrefix(s, "rand") {
		var seed int64
		if len(s) > len("rand") {
			i, err := strconv.Atoi(s[len("rand:"):])
			if err != nil {
				log.Fatal(err)
			}
			seed = int64(i)
		}
		return &aiWrapper{c.limit, ai.NewRandom(seed)}
	}
	if strings.HasPrefix(s, "minimax") {
		var depth = 3
		if len(s) > len("minimax") {
			i, err := strconv.Atoi(s[len("minimax:"):])
			if err != nil {
				log.Fatal(err)
			}
			depth = i
		}
		p := ai.NewMinimax(ai.MinimaxConfig{
			Size:    c.size,
			Depth:   depth,
			Debug:   c.debug,
			Weights: c.weightSet,
		})
		return &aiWrapper{c.limit, p}
	}
	log.Fatalf("unparseable player: %s", s)
	return nil
}
