package ai

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/taklab/flatline/tak"
)

// MaxEval and MinEval are the values of positions already won by
// White and Black. They dominate every heuristic score and negate
// onto each other, so win-in-one always outranks any flat count.
var (
	MaxEval = math.Inf(1)
	MinEval = math.Inf(-1)
)

// An EvaluationFunc scores a position from White's point of view:
// positive favors White, negative favors Black, regardless of whose
// turn it is. Finished games must map to MaxEval, MinEval, or 0.
type EvaluationFunc func(p *tak.Position) float64

// Evaluate is the default static evaluator. A live position scores
// the flat-count difference less half the komi, plus one point for
// every row and column in which a side tops at least one stack.
func Evaluate(p *tak.Position) float64 {
	switch p.Result() {
	case tak.WhiteWin:
		return MaxEval
	case tak.BlackWin:
		return MinEval
	case tak.Draw:
		return 0
	}
	score := -float64(p.HalfKomi()) / 2
	for y := 0; y < p.Size(); y++ {
		for x := 0; x < p.Size(); x++ {
			top := p.At(x, y).Top()
			if top.Kind() != tak.Flat {
				continue
			}
			if top.Color() == tak.White {
				score++
			} else {
				score--
			}
		}
	}
	score += float64(lineControl(p, tak.White) - lineControl(p, tak.Black))
	return score
}

var DefaultEvaluate EvaluationFunc = Evaluate

// lineControl counts the rows plus columns where c tops at least one
// stack. Walls and capstones control a line even though they score no
// flat.
func lineControl(p *tak.Position, c tak.Color) int {
	n := 0
	for x := 0; x < p.Size(); x++ {
		for y := 0; y < p.Size(); y++ {
			if p.At(x, y).Top().Color() == c {
				n++
				break
			}
		}
	}
	for y := 0; y < p.Size(); y++ {
		for x := 0; x < p.Size(); x++ {
			if p.At(x, y).Top().Color() == c {
				n++
				break
			}
		}
	}
	return n
}

func ExplainScore(out io.Writer, p *tak.Position) {
	tw := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "\twhite\tblack\n")
	var flats [2]int
	for y := 0; y < p.Size(); y++ {
		for x := 0; x < p.Size(); x++ {
			top := p.At(x, y).Top()
			if top.Kind() != tak.Flat {
				continue
			}
			if top.Color() == tak.White {
				flats[0]++
			} else {
				flats[1]++
			}
		}
	}
	fmt.Fprintf(tw, "flats\t%d\t%d\n", flats[0], flats[1])
	fmt.Fprintf(tw, "lines\t%d\t%d\n",
		lineControl(p, tak.White), lineControl(p, tak.Black))
	fmt.Fprintf(tw, "komi\t\t%g\n", float64(p.HalfKomi())/2)
	fmt.Fprintf(tw, "total\t%g\t\n", Evaluate(p))
	tw.Flush()
}
