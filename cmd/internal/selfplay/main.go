package selfplay

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/logs"
	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

type Command struct {
	size int
	p1   string
	p2   string
	seed int64

	games  int
	cutoff int
	swap   bool
	komi   float64

	openings string
	weights  string

	debug   int
	threads int

	out     string
	summary string
	db      string
	verbose bool
}

func (*Command) Name() string { return "selfplay" }
func (*Command) Synopsis() string {
	return "Play two engines against each other and report results"
}
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 5, "board size")
	flags.StringVar(&c.p1, "p1", "minimax:3", "player one spec (minimax:N, greedy, rand)")
	flags.StringVar(&c.p2, "p2", "greedy", "player two spec")
	flags.Int64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per opening/color")
	flags.IntVar(&c.cutoff, "cutoff", 120, "cut games off after how many plies")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.Float64Var(&c.komi, "komi", 0, "komi awarded to black at a flats ending")
	flags.StringVar(&c.openings, "openings", "", "file of openings, one per line in TPS")
	flags.StringVar(&c.weights, "weights", "", "JSON file of ranker weights")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "number of parallel threads")
	flags.StringVar(&c.out, "out", "", "directory to write ptns to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "record finished games to a sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
}

func readOpenings(path string, halfKomi int) ([]*tak.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []*tak.Position
	r := bufio.NewScanner(f)
	for r.Scan() {
		line := strings.TrimSpace(r.Text())
		if line == "" {
			continue
		}
		pos, err := ptn.ParseTPS(line)
		if err != nil {
			return nil, fmt.Errorf("parse TPS: %q: %w", line, err)
		}
		pos, err = withKomi(pos, halfKomi)
		if err != nil {
			return nil, fmt.Errorf("apply komi: %q: %w", line, err)
		}
		out = append(out, pos)
	}
	return out, r.Err()
}

// withKomi rebuilds a parsed opening with the configured komi; TPS
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

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = time.Now().Unix()
	}
	halfKomi := int(2 * c.komi)

	var weights *ai.Weights
	if c.weights != "" {
		data, err := os.ReadFile(c.weights)
		if err != nil {
			log.Fatal().Msgf("read weights: %v", err)
		}
		var w ai.Weights
		if err := json.Unmarshal(data, &w); err != nil {
			log.Fatal().Msgf("parse weights: %v", err)
		}
		weights = &w
	}

	p1, err := ParseFactory(c.p1, c.size, c.debug, weights)
	if err != nil {
		log.Fatal().Msgf("-p1: %v", err)
	}
	p2, err := ParseFactory(c.p2, c.size, c.debug, weights)
	if err != nil {
		log.Fatal().Msgf("-p2: %v", err)
	}

	var openings []*tak.Position
	if c.openings != "" {
		openings, err = readOpenings(c.openings, halfKomi)
		if err != nil {
			log.Fatal().Msgf("-openings: %v", err)
		}
	}
	if len(openings) == 0 {
		openings = []*tak.Position{tak.New(tak.Config{Size: c.size, HalfKomi: halfKomi})}
	}

	cfg := &Config{
		Size:    c.size,
		Debug:   c.debug,
		Swap:    c.swap,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Cutoff:  c.cutoff,
		Initial: openings,
		Verbose: c.verbose,
		P1:      p1,
		P2:      p2,
	}

	st := Simulate(cfg)

	if c.out != "" {
		if c.summary == "" {
			c.summary = path.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if over, _ := st.Games[i].Position.GameOver(); !over {
				continue
			}
			c.writeGame(c.out, &st.Games[i])
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Msgf("writing summary: %v", err)
		}
	}
	if c.db != "" {
		if err := c.recordGames(&st); err != nil {
			log.Error().Msgf("recording games: %v", err)
		}
	}

	var plies int
	for i := range st.Games {
		plies += st.Games[i].Position.Ply()
	}
	log.Info().Msgf("done games=%d seed=%d ties=%d cutoff=%d white=%d black=%d mean-plies=%.1f",
		st.Count(), c.seed, st.Ties, st.Cutoff, st.White, st.Black,
		float64(plies)/float64(len(st.Games)))
	log.Info().Msgf("p1(%s) wins=%d (%d road/%d flat) p2(%s) wins=%d (%d road/%d flat)",
		p1, st.Players[0].Wins, st.Players[0].RoadWins, st.Players[0].FlatWins,
		p2, st.Players[1].Wins, st.Players[1].RoadWins, st.Players[1].FlatWins)
	endings := endingCounts(&st)
	for _, k := range sortedKeys(endings) {
		log.Info().Msgf("endings %s=%d", k, endings[k])
	}

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\twhite\tblack\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n",
		st.Players[0].WhiteWins, st.Players[0].BlackWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n",
		st.Players[1].WhiteWins, st.Players[1].BlackWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Info().Msgf("p[one-sided]=%f", binomTest(a, b, 0.5))

	return subcommands.ExitSuccess
}

func endingCounts(st *Stats) map[string]int {
	reasons := make(map[string]int)
	for i := range st.Games {
		r := &st.Games[i]
		switch {
		case r.Winner == tak.NoColor:
			if over, _ := r.Position.GameOver(); over {
				reasons["tie"]++
			} else {
				reasons["cutoff"]++
			}
		case r.Position.WinDetails().Reason == tak.RoadWin:
			reasons["road"]++
		default:
			reasons["flats"]++
		}
	}
	return reasons
}

func sortedKeys(m map[string]int) []string {
	ks := maps.Keys(m)
	slices.Sort(ks)
	return ks
}

func (c *Command) writeGame(d string, r *Result) {
	os.MkdirAll(d, 0755)
	p := &ptn.PTN{}
	white, black := c.p1, c.p2
	if r.P1Color() != tak.White {
		white, black = black, white
	}
	p.Tags = []ptn.Tag{
		{Name: "Size", Value: strconv.Itoa(r.Position.Size())},
		{Name: "Player1", Value: white},
		{Name: "Player2", Value: black},
	}
	if r.Initial.Ply() != 0 {
		p.Tags = append(p.Tags, ptn.Tag{Name: "TPS", Value: ptn.FormatTPS(r.Initial)})
	}
	p.AddMoves(r.Moves)
	if over, _ := r.Position.GameOver(); over {
		p.Ops = append(p.Ops, &ptn.GameOver{End: r.Position.WinDetails()})
	}
	ptnPath := path.Join(d, fmt.Sprintf("%d-%d.ptn", r.spec.oi, r.spec.i))
	if err := os.WriteFile(ptnPath, []byte(p.Render()), 0644); err != nil {
		log.Error().Msgf("write %s: %v", ptnPath, err)
	}
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Stats:   stats,
	}

	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(bs)
	return err
}

func (c *Command) recordGames(st *Stats) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	var rows []*logs.Game
	skipped := 0
	for i := range st.Games {
		r := &st.Games[i]
		if over, _ := r.Position.GameOver(); !over {
			continue
		}
		if r.Initial.Ply() != 0 {
			skipped++
			continue
		}
		white, black := c.p1, c.p2
		if r.P1Color() != tak.White {
			white, black = black, white
		}
		rows = append(rows, logs.Record(white, black, r.Position, r.Moves))
	}
	if skipped > 0 {
		log.Warn().Msgf("not recording %d games that started from openings", skipped)
	}
	return repo.InsertGames(rows)
}
