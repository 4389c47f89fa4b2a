package selfplay

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/taklab/flatline/ai"
)

// Factory builds a fresh player for each game. The supplied Rand is
// seeded per game so runs reproduce under a fixed -seed.
type Factory interface {
	NewPlayer(r *rand.Rand) ai.TakPlayer
	String() string
}

type minimaxFactory struct {
	size, depth, debug int
	weights            *ai.Weights
}

func (f *minimaxFactory) NewPlayer(r *rand.Rand) ai.TakPlayer {
	return ai.NewMinimax(ai.MinimaxConfig{
		Size:    f.size,
		Depth:   f.depth,
		Debug:   f.debug,
		Weights: f.weights,
	})
}

func (f *minimaxFactory) String() string {
	return fmt.Sprintf("minimax@%d", f.depth)
}

type greedyFactory struct {
	weights *ai.Weights
}

func (f *greedyFactory) NewPlayer(r *rand.Rand) ai.TakPlayer {
	return ai.NewGreedy(f.weights)
}

func (f *greedyFactory) String() string { return "greedy" }

type randomFactory struct{}

func (randomFactory) NewPlayer(r *rand.Rand) ai.TakPlayer {
	return ai.NewRandom(int64(r.Uint64()))
}

func (randomFactory) String() string { return "rand" }

// ParseFactory builds a player factory from a spec such as
// "minimax:4", "greedy", or "rand".
func ParseFactory(spec string, size, debug int, weights *ai.Weights) (Factory, error) {
	name, arg := spec, ""
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		name, arg = spec[:i], spec[i+1:]
	}
	switch name {
	case "minimax":
		var depth int
		if arg != "" {
			d, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("bad minimax depth: %q", arg)
			}
			depth = d
		}
		return &minimaxFactory{size: size, depth: depth, debug: debug, weights: weights}, nil
	case "greedy":
		if arg != "" {
			return nil, fmt.Errorf("greedy takes no argument")
		}
		return &greedyFactory{weights: weights}, nil
	case "rand":
		if arg != "" {
			return nil, fmt.Errorf("rand seeds itself from -seed; drop the argument")
		}
		return randomFactory{}, nil
	}
	return nil, fmt.Errorf("unknown player: %q", spec)
}
