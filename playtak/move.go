package playtak

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taklab/flatline/tak"
)

func parseSquare(square string) (x, y int8, err error) {
	if len(square) != 2 {
		return 0, 0, fmt.Errorf("bad square: %s", square)
	}
	if square[0] < 'A' || square[0] > 'H' {
		return 0, 0, fmt.Errorf("bad file: %s", square)
	}
	if square[1] < '1' || square[1] > '8' {
		return 0, 0, fmt.Errorf("bad rank: %s", square)
	}
	return int8(square[0] - 'A'), int8(square[1] - '1'), nil
}

func formatSquare(x, y int8) string {
	return string([]byte{byte(x) + 'A', byte(y) + '1'})
}

// ParseServer parses a move in the server's wire syntax, e.g.
// `P A1 C` or `M A1 A3 2 1`.
func ParseServer(server string) (tak.Move, error) {
	words := strings.Split(server, " ")
	switch words[0] {
	case "P":
		if len(words) != 2 && len(words) != 3 {
			return tak.Move{}, fmt.Errorf("bad place: %s", server)
		}
		x, y, err := parseSquare(words[1])
		if err != nil {
			return tak.Move{}, err
		}
		typ := tak.PlaceFlat
		if len(words) == 3 {
			switch words[2] {
			case "C":
				typ = tak.PlaceCapstone
			case "W":
				typ = tak.PlaceWall
			default:
				return tak.Move{}, fmt.Errorf("bad place: %s", server)
			}
		}
		return tak.Move{X: x, Y: y, Type: typ}, nil
	case "M":
		if len(words) < 4 {
			return tak.Move{}, fmt.Errorf("bad spread: %s", server)
		}
		sx, sy, err := parseSquare(words[1])
		if err != nil {
			return tak.Move{}, err
		}
		ex, ey, err := parseSquare(words[2])
		if err != nil {
			return tak.Move{}, err
		}
		var typ tak.MoveType
		switch {
		case sx == ex && sy < ey:
			typ = tak.SpreadUp
		case sx == ex && sy > ey:
			typ = tak.SpreadDown
		case sy == ey && sx < ex:
			typ = tak.SpreadRight
		case sy == ey && sx > ex:
			typ = tak.SpreadLeft
		default:
			return tak.Move{}, fmt.Errorf("bad spread: %s", server)
		}
		dist := ex - sx + ey - sy
		if dist < 0 {
			dist = -dist
		}
		if int(dist) != len(words)-3 {
			return tak.Move{}, fmt.Errorf("bad spread: %s", server)
		}
		var drops tak.Drops
		for i := len(words) - 1; i >= 3; i-- {
			d, err := strconv.Atoi(words[i])
			if err != nil || d < 1 || d > 8 {
				return tak.Move{}, fmt.Errorf("bad drop: %s", server)
			}
			drops = drops.Prepend(d)
		}
		return tak.Move{X: sx, Y: sy, Type: typ, Drops: drops}, nil
	}
	return tak.Move{}, fmt.Errorf("bad command: %s", server)
}

// FormatServer renders a move in the server's wire syntax.
func FormatServer(m tak.Move) string {
	switch m.Type {
	case tak.PlaceFlat:
		return fmt.Sprintf("P %s", formatSquare(m.X, m.Y))
	case tak.PlaceCapstone:
		return fmt.Sprintf("P %s C", formatSquare(m.X, m.Y))
	case tak.PlaceWall:
		return fmt.Sprintf("P %s W", formatSquare(m.X, m.Y))
	}
	var dx, dy int8
	switch m.Type {
	case tak.SpreadUp:
		dy = 1
	case tak.SpreadDown:
		dy = -1
	case tak.SpreadLeft:
		dx = -1
	case tak.SpreadRight:
		dx = 1
	}
	n := int8(m.Drops.Len())
	var out strings.Builder
	fmt.Fprintf(&out, "M %s %s",
		formatSquare(m.X, m.Y),
		formatSquare(m.X+dx*n, m.Y+dy*n))
	for it := m.Drops.Iterator(); it.Ok(); it = it.Next() {
		fmt.Fprintf(&out, " %d", it.Elem())
	}
	return out.String()
}
