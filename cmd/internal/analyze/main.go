package analyze

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/cli"
	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

type Command struct {
	tps     string
	ptnFile string

	depth   int
	debug   int
	komi    float64
	weights string
	top     int
	quiet   bool
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Analyze a single position" }
func (*Command) Usage() string {
	return `analyze [options] [TPS]

Print the board, the static evaluation with its breakdown, the
highest-ranked candidate moves, and the engine's move for a position
given in TPS (argument or -tps) or as the final position of a PTN
file (-ptn).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.tps, "tps", "", "position in TPS")
	flags.StringVar(&c.ptnFile, "ptn", "", "read the final position of this PTN file")
	flags.IntVar(&c.depth, "depth", 5, "minimax depth")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.Float64Var(&c.komi, "komi", 0, "komi awarded to black at a flats ending")
	flags.StringVar(&c.weights, "weights", "", "JSON file of ranker weights")
	flags.IntVar(&c.top, "top", 5, "number of ranked moves to print")
	flags.BoolVar(&c.quiet, "quiet", false, "don't print the board diagram")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var weights *ai.Weights
	if c.weights != "" {
		data, err := os.ReadFile(c.weights)
		if err != nil {
			log.Fatalf("read weights: %v", err)
		}
		var w ai.Weights
		if err := json.Unmarshal(data, &w); err != nil {
			log.Fatalf("parse weights: %v", err)
		}
		weights = &w
	}

	p, err := c.position(flag.Arg(0))
	if err != nil {
		log.Fatalf("position: %v", err)
	}

	if !c.quiet {
		cli.RenderBoard(nil, os.Stdout, p)
	}
	fmt.Printf("tps: %s\n", ptn.FormatTPS(p))

	fmt.Printf("evaluation: %v\n", ai.Evaluate(p))
	ai.ExplainScore(os.Stdout, p)

	if over, _ := p.GameOver(); over {
		fmt.Printf("game over: %s\n", ptn.FormatResult(p.WinDetails()))
		return subcommands.ExitSuccess
	}

	w := ai.DefaultWeights
	if weights != nil {
		w = *weights
	}
	ranked := ai.RankMoves(&w, p)
	n := c.top
	if n > len(ranked) {
		n = len(ranked)
	}
	fmt.Printf("top moves:\n")
	for i := 0; i < n; i++ {
		fmt.Printf("  %d. %s\tscore=%v\n",
			i+1, ptn.FormatMove(ranked[i]), ai.ScoreMove(&w, p, ranked[i]))
	}

	player := ai.NewMinimax(ai.MinimaxConfig{
		Size:    p.Size(),
		Depth:   c.depth,
		Debug:   c.debug,
		Weights: weights,
	})
	start := time.Now()
	move, value, err := player.Analyze(p)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}
	st := player.Stats()
	pr := message.NewPrinter(language.English)
	pr.Printf("best: %s value=%v depth=%d visited=%d evaluated=%d cut=%d time=%s\n",
		ptn.FormatMove(move), value, st.Depth,
		st.Visited, st.Evaluated, st.CutNodes,
		time.Since(start).Round(time.Millisecond))

	return subcommands.ExitSuccess
}

// position resolves the analysis target from -ptn, -tps, or the
// positional argument, applying -komi to TPS input.
func (c *Command) position(arg string) (*tak.Position, error) {
	if c.ptnFile != "" {
		f, err := os.Open(c.ptnFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		parsed, err := ptn.ParsePTN(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", c.ptnFile, err)
		}
		return parsed.Position()
	}
	tps := c.tps
	if tps == "" {
		tps = arg
	}
	if tps == "" {
		return nil, fmt.Errorf("need a TPS argument, -tps, or -ptn")
	}
	p, err := ptn.ParseTPS(tps)
	if err != nil {
		return nil, err
	}
	return withKomi(p, int(2*c.komi))
}

// withKomi rebuilds a parsed position with the configured komi; TPS
// itself carries no komi.
func withKomi(p *tak.Position, halfKomi int) (*tak.Position, error) {
	if halfKomi == 0 {
		return p, nil
	}
	size := p.Size()
	board := make([][]tak.Square, size)
	for y := 0; y < size; y++ {
		board[y] = make([]tak.Square, size)
		for x := 0; x < size; x++ {
			board[y][x] = p.At(x, y)
		}
	}
	return tak.FromSquares(tak.Config{Size: size, HalfKomi: halfKomi}, board, p.Ply())
}
