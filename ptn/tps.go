package ptn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taklab/flatline/tak"
)

func ParseTPS(tps string) (*tak.Position, error) {
	var pieces [][]tak.Square
	words := strings.Split(tps, " ")
	if len(words) != 3 {
		return nil, errors.New("bad TPS: wrong number of words")
	}
	turn, err := strconv.Atoi(words[1])
	if err != nil {
		return nil, fmt.Errorf("bad turn: %s", words[1])
	}
	if turn != 1 && turn != 2 {
		return nil, fmt.Errorf("bad turn: %s", words[1])
	}
	move, err := strconv.Atoi(words[2])
	if err != nil {
		return nil, fmt.Errorf("bad move: %s", words[2])
	}
	move = 2*(move-1) + (turn - 1)

	rows := strings.Split(words[0], "/")
	for _, r := range rows {
		row, err := parseRow(r)
		if err != nil {
			return nil, err
		}
		pieces = append([][]tak.Square{row}, pieces...)
	}
	if len(pieces) < 3 || len(pieces) > 8 {
		return nil, fmt.Errorf("bad size board: %d", len(pieces))
	}
	for i, r := range pieces {
		if len(r) != len(pieces) {
			return nil, fmt.Errorf("row %d bad length: %d", i, len(r))
		}
	}
	return tak.FromSquares(tak.Config{Size: len(pieces)}, pieces, move)
}

func parseRow(row string) ([]tak.Square, error) {
	var out []tak.Square
	bits := strings.Split(row, ",")
	for _, bit := range bits {
		if bit == "" {
			return nil, errors.New("empty square spec")
		}
		if bit[0] == 'x' {
			count := 1
			if len(bit) > 1 {
				count = int(bit[1] - '0')
			}
			for i := 0; i < count; i++ {
				out = append(out, nil)
			}
			continue
		}
		var stack tak.Square
		for i, b := range bit {
			switch b {
			case '1':
				stack = append(stack, tak.MakePiece(tak.White, tak.Flat))
			case '2':
				stack = append(stack, tak.MakePiece(tak.Black, tak.Flat))
			case 'S', 'C':
				if i != len(bit)-1 || len(stack) == 0 {
					return nil, fmt.Errorf("stone type not at end of stack: %s", bit)
				}
				top := stack[len(stack)-1]
				kind := tak.Wall
				if b == 'C' {
					kind = tak.Capstone
				}
				stack[len(stack)-1] = tak.MakePiece(top.Color(), kind)
			default:
				return nil, fmt.Errorf("malformed stack: %s", bit)
			}
		}
		out = append(out, stack)
	}
	return out, nil
}

func FormatTPS(p *tak.Position) string {
	var rows []string
	for y := p.Size() - 1; y >= 0; y-- {
		rows = append(rows, tpsRow(p, y))
	}
	var toMove string
	if p.ToMove() == tak.White {
		toMove = "1"
	} else {
		toMove = "2"
	}
	return fmt.Sprintf("%s %s %d", strings.Join(rows, "/"), toMove, p.Ply()/2+1)
}

func tpsRow(p *tak.Position, y int) string {
	var bits []string
	for x := 0; x < p.Size(); {
		var i int
		for i = 0; x+i < p.Size() && len(p.At(x+i, y)) == 0; i++ {
		}
		switch i {
		case 0:
			bits = append(bits, tpsSquare(p.At(x, y)))
			x++
		case 1:
			bits = append(bits, "x")
		default:
			bits = append(bits, fmt.Sprintf("x%d", i))
		}
		x += i
	}
	return strings.Join(bits, ",")
}

// tpsSquare renders a stack bottom to top, with the kind of the top
// piece suffixed.
func tpsSquare(sq tak.Square) string {
	var out []byte
	for _, piece := range sq {
		if piece.Color() == tak.White {
			out = append(out, '1')
		} else {
			out = append(out, '2')
		}
	}
	switch sq.Top().Kind() {
	case tak.Wall:
		out = append(out, 'S')
	case tak.Capstone:
		out = append(out, 'C')
	}
	return string(out)
}
