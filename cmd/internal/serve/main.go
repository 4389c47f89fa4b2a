package serve

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net"
	"sync"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/pb"
	"github.com/taklab/flatline/ptn"
)

type Command struct {
	port int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve analysis RPCs over GRPC" }
func (*Command) Usage() string {
	return `serve
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
}

// cache reuses one engine across requests as long as the requested
// configuration stays the same.
type cache struct {
	sync.Mutex
	player *ai.MinimaxAI
	cfg    ai.MinimaxConfig
}

type server struct {
	analyzeCache cache
}

func (c *cache) getPlayer(size int, depth int) *ai.MinimaxAI {
	if c.player == nil || c.cfg.Size != size || c.cfg.Depth != depth {
		c.cfg = ai.MinimaxConfig{
			Size:  size,
			Depth: depth,
			Debug: 1,
		}
		c.player = ai.NewMinimax(c.cfg)
	}
	return c.player
}

func (s *server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	p, e := ptn.ParseTPS(req.Position)
	if e != nil {
		return nil, e
	}

	s.analyzeCache.Lock()
	defer s.analyzeCache.Unlock()
	player := s.analyzeCache.getPlayer(p.Size(), int(req.Depth))

	move, value, e := player.Analyze(p)
	if e != nil {
		return nil, e
	}
	st := player.Stats()
	return &pb.AnalyzeResponse{
		Move:      ptn.FormatMove(move),
		Value:     value,
		Depth:     int32(st.Depth),
		Visited:   int64(st.Visited),
		Evaluated: int64(st.Evaluated),
	}, nil
}

func (s *server) Evaluate(ctx context.Context, req *pb.EvaluateRequest) (*pb.EvaluateResponse, error) {
	p, e := ptn.ParseTPS(req.Position)
	if e != nil {
		return nil, e
	}

	var breakdown bytes.Buffer
	ai.ExplainScore(&breakdown, p)
	return &pb.EvaluateResponse{
		Value:     ai.Evaluate(p),
		Breakdown: breakdown.String(),
	}, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatal().Msgf("listen: %v", err)
	}
	log.Info().Msgf("listening port=%d", c.port)
	grpcServer := grpc.NewServer()
	pb.RegisterAnalysisServer(grpcServer, &server{})

	grpcServer.Serve(lis)
	return subcommands.ExitSuccess
}
