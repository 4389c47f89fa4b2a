// Package ptn implements Portable Tak Notation: single moves, TPS
// position strings, and whole game records.
package ptn

import (
	"errors"
	"regexp"

	"github.com/taklab/flatline/tak"
)

var moveRE = regexp.MustCompile(
	// [place] [carry] position [direction] [drops] [top]
	`([CFS]?)([1-8]?)([a-h][1-9])([<>+-]?)([1-8]*)([CFS]?)`,
)

func ParseMove(move string) (tak.Move, error) {
	groups := moveRE.FindStringSubmatch(move)
	if groups == nil {
		return tak.Move{}, errors.New("illegal move")
	}
	var (
		place     = groups[1]
		carry     = groups[2]
		position  = groups[3]
		direction = groups[4]
		drops     = groups[5]
	)
	x := position[0] - 'a'
	y := position[1] - '1'

	m := tak.Move{X: int8(x), Y: int8(y)}
	if direction == "" {
		// place a piece
		if carry != "" || drops != "" {
			return tak.Move{}, errors.New("can't carry or drop without a direction")
		}
		switch place {
		case "F", "":
			m.Type = tak.PlaceFlat
		case "S":
			m.Type = tak.PlaceWall
		case "C":
			m.Type = tak.PlaceCapstone
		default:
			panic("parser error")
		}
		return m, nil
	}

	// a spread
	stack := 1
	if carry != "" {
		stack = int(carry[0] - '0')
	}
	var counts []int
	for _, d := range drops {
		counts = append(counts, int(d-'0'))
		stack -= int(d - '0')
	}
	if stack > 0 {
		counts = append(counts, stack)
	}
	m.Drops = tak.MkDrops(counts...)
	switch direction {
	case "<":
		m.Type = tak.SpreadLeft
	case ">":
		m.Type = tak.SpreadRight
	case "+":
		m.Type = tak.SpreadUp
	case "-":
		m.Type = tak.SpreadDown
	default:
		panic("parser error")
	}

	return m, nil
}

func FormatMove(m tak.Move) string {
	var out []byte
	if m.IsSpread() {
		if stack := m.Drops.Carry(); stack != 1 {
			out = append(out, byte('0'+stack))
		}
	}
	switch m.Type {
	case tak.PlaceFlat:
	case tak.PlaceCapstone:
		out = append(out, 'C')
	case tak.PlaceWall:
		out = append(out, 'S')
	}
	out = append(out, byte('a'+m.X))
	out = append(out, byte('1'+m.Y))
	switch m.Type {
	case tak.SpreadLeft:
		out = append(out, '<')
	case tak.SpreadRight:
		out = append(out, '>')
	case tak.SpreadUp:
		out = append(out, '+')
	case tak.SpreadDown:
		out = append(out, '-')
	}
	// the final drop count is implied by the carry
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		if it.Next().Ok() {
			out = append(out, byte('0'+it.Elem()))
		}
	}
	return string(out)
}
