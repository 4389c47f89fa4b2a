// Package taktest provides helpers for building positions and moves
// in tests. All helpers panic on malformed input.
package taktest

import (
	"strings"

	"github.com/taklab/flatline/ptn"
	"github.com/taklab/flatline/tak"
)

func Move(s string) tak.Move {
	m, e := ptn.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []tak.Move {
	if s == "" {
		return nil
	}
	bits := strings.Split(s, " ")
	var ms []tak.Move
	for _, b := range bits {
		m, e := ptn.ParseMove(b)
		if e != nil {
			panic(e)
		}
		ms = append(ms, m)
	}
	return ms
}

func FormatMoves(ms []tak.Move) string {
	var bits []string
	for _, o := range ms {
		bits = append(bits, ptn.FormatMove(o))
	}
	return strings.Join(bits, " ")
}

// Position plays the given space-separated PTN moves from an empty
// board of the given size.
func Position(size int, ms string) *tak.Position {
	p := tak.New(tak.Config{Size: size})
	moves := Moves(ms)
	var e error
	for _, m := range moves {
		p, e = p.Move(m)
		if e != nil {
			panic(e)
		}
	}
	return p
}

// TPS parses a TPS position string.
func TPS(s string) *tak.Position {
	p, e := ptn.ParseTPS(s)
	if e != nil {
		panic(e)
	}
	return p
}
