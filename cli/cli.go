package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

type Player interface {
	GetMove(p *tak.Position) tak.Move
}

type GlyphSet struct {
	Flat     string
	Wall     string
	Capstone string
}

type Glyphs struct {
	White, Black GlyphSet
	Empty        string
}

type CLI struct {
	moves []tak.Move
	p     *tak.Position

	Config tak.Config
	Glyphs *Glyphs
	Out    io.Writer
	White  Player
	Black  Player
}

var DefaultGlyphs = Glyphs{
	White: GlyphSet{
		Flat:     "W",
		Wall:     "WS",
		Capstone: "WC",
	},
	Black: GlyphSet{
		Flat:     "B",
		Wall:     "BS",
		Capstone: "BC",
	},
}

var UnicodeGlyphs = Glyphs{
	White: GlyphSet{
		Flat:     "□",
		Wall:     "║",
		Capstone: "♙",
	},
	Black: GlyphSet{
		Flat:     "▪",
		Wall:     "┃",
		Capstone: "♟",
	},
}

var EmojiGlyphs = Glyphs{
	White: GlyphSet{
		Flat:     "🟧",
		Wall:     "🔶",
		Capstone: "🟠",
	},
	Black: GlyphSet{
		Flat:     "🟦",
		Wall:     "🔷",
		Capstone: "🔵",
	},
	Empty: "🔳",
}

func (c *CLI) Play() *tak.Position {
	c.moves = nil
	c.p = tak.New(c.Config)
	for {
		c.render()
		if ok, _ := c.p.GameOver(); ok {
			d := c.p.WinDetails()
			fmt.Fprintf(c.Out, "Game Over! ")
			if d.Winner == tak.NoColor {
				fmt.Fprintf(c.Out, "Draw.")
			} else {
				fmt.Fprintf(c.Out, "%s wins by ", d.Winner)
				switch d.Reason {
				case tak.RoadWin:
					fmt.Fprintf(c.Out, "building a road")
				case tak.FlatsWin:
					fmt.Fprintf(c.Out, "flats count")
				}
			}
			fmt.Fprintf(c.Out, "\nflats count: white=%d black=%d\n",
				d.WhiteFlats,
				d.BlackFlats)
			return c.p
		}
		var m tak.Move
		if c.p.ToMove() == tak.White {
			m = c.White.GetMove(c.p)
		} else {
			m = c.Black.GetMove(c.p)
		}
		p, e := c.p.Move(m)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
		} else {
			if c.p.ToMove() == tak.White {
				fmt.Fprintf(c.Out, "%d. %s", c.p.Ply()/2+1, ptn.FormatMove(m))
			} else {
				fmt.Fprintf(c.Out, "%d. ... %s", c.p.Ply()/2+1, ptn.FormatMove(m))
			}
			c.p = p
			c.moves = append(c.moves, m)
		}
	}
}

func (c *CLI) Moves() []tak.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.p)
}

// RenderBoard draws p one rank per line, highest rank first. Stacks
// read top piece first, so the controlling piece is always leftmost
// in its square.
func RenderBoard(g *Glyphs, out io.Writer, p *tak.Position) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", p.ToMove())
	w := tabwriter.NewWriter(out, 4, 8, 1, '\t', 0)
	for y := p.Size() - 1; y >= 0; y-- {
		fmt.Fprintf(w, "%c.\t", '1'+y)
		for x := 0; x < p.Size(); x++ {
			sq := p.At(x, y)
			var stk []string
			for i := len(sq) - 1; i >= 0; i-- {
				switch sq[i] {
				case tak.MakePiece(tak.White, tak.Flat):
					stk = append(stk, g.White.Flat)
				case tak.MakePiece(tak.White, tak.Wall):
					stk = append(stk, g.White.Wall)
				case tak.MakePiece(tak.White, tak.Capstone):
					stk = append(stk, g.White.Capstone)
				case tak.MakePiece(tak.Black, tak.Flat):
					stk = append(stk, g.Black.Flat)
				case tak.MakePiece(tak.Black, tak.Wall):
					stk = append(stk, g.Black.Wall)
				case tak.MakePiece(tak.Black, tak.Capstone):
					stk = append(stk, g.Black.Capstone)
				default:
					panic(fmt.Sprintf("bad stone %v", sq[i]))
				}
			}
			if len(stk) == 0 && g.Empty != "" {
				stk = append(stk, g.Empty)
			}
			fmt.Fprintf(w, "[%s]\t", strings.Join(stk, " "))
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for x := 0; x < p.Size(); x++ {
		fmt.Fprintf(w, "%c.\t", 'a'+x)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "stones: W:%d B:%d\n", p.WhiteStones(), p.BlackStones())
}
