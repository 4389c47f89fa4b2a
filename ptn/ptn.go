package ptn

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/taklab/flatline/tak"
)

type Tag struct {
	Name  string
	Value string
}

type Op interface {
	op()

	Source() string
}

type opCommon struct {
	src string
}

func (o opCommon) Source() string {
	return o.src
}

func (o opCommon) op() {}

type MoveNumber struct {
	opCommon
	Number int
}

type Move struct {
	opCommon
	Move      tak.Move
	Modifiers string
}

type Comment struct {
	opCommon
	Comment string
}

type GameOver struct {
	opCommon
	End tak.WinDetails
}

type PTN struct {
	Tags []Tag
	Ops  []Op
}

func ParsePTN(r io.Reader) (*PTN, error) {
	buf := bufio.NewReader(r)
	var ptn PTN
	if err := readTags(buf, &ptn); err != nil && err != io.EOF {
		return nil, err
	}
	if err := readMoves(buf, &ptn); err != nil && err != io.EOF {
		return nil, err
	}
	return &ptn, nil
}

func (p *PTN) FindTag(name string) string {
	for _, t := range p.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// AddMoves appends a game played from the initial position, numbering
// move pairs from 1.
func (p *PTN) AddMoves(moves []tak.Move) {
	for i, m := range moves {
		if i%2 == 0 {
			p.Ops = append(p.Ops, &MoveNumber{Number: i/2 + 1})
		}
		p.Ops = append(p.Ops, &Move{Move: m})
	}
}

// InitialPosition builds the position the game record starts from,
// honoring the Size, Komi, and TPS tags.
func (p *PTN) InitialPosition() (*tak.Position, error) {
	sizeTag := p.FindTag("Size")
	size, e := strconv.Atoi(sizeTag)
	if e != nil {
		return nil, fmt.Errorf("bad size: %s", sizeTag)
	}
	tps := p.FindTag("TPS")
	if tps != "" {
		out, e := ParseTPS(tps)
		if e != nil {
			return nil, fmt.Errorf("bad TPS: %v", e)
		}
		if out.Size() != size {
			return nil, fmt.Errorf("size mismatch: tag %d != TPS %d",
				size, out.Size())
		}
		return out, nil
	}
	cfg := tak.Config{Size: size}
	if komi := p.FindTag("Komi"); komi != "" {
		f, e := strconv.ParseFloat(komi, 64)
		if e != nil {
			return nil, fmt.Errorf("bad komi: %s", komi)
		}
		cfg.HalfKomi = int(2 * f)
	}
	return tak.New(cfg), nil
}

// Position replays the whole record and returns the final position.
func (p *PTN) Position() (*tak.Position, error) {
	pos, e := p.InitialPosition()
	if e != nil {
		return nil, e
	}
	for _, op := range p.Ops {
		m, ok := op.(*Move)
		if !ok {
			continue
		}
		pos, e = pos.Move(m.Move)
		if e != nil {
			return nil, fmt.Errorf("%s: %v", m.Source(), e)
		}
	}
	return pos, nil
}

func readTags(r *bufio.Reader, ptn *PTN) error {
	for {
		if e := skipWS(r); e != nil {
			return e
		}
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if c != '[' {
			return r.UnreadByte()
		}
		line, e := r.ReadString(']')
		if e != nil {
			return e
		}
		line = line[:len(line)-1]
		bits := strings.SplitN(line, " ", 2)
		if len(bits) != 2 {
			return errors.New("bad tag")
		}
		ptn.Tags = append(ptn.Tags, Tag{
			Name:  bits[0],
			Value: strings.Trim(bits[1], "\""),
		})
	}
}

func readMoves(r *bufio.Reader, ptn *PTN) error {
	s := bufio.NewScanner(r)
	s.Split(splitMoves)
	for s.Scan() {
		tok := s.Text()
		common := opCommon{tok}
		switch {
		case tok[0] == '{':
			ptn.Ops = append(ptn.Ops, &Comment{common, tok[1 : len(tok)-1]})
		case tok[len(tok)-1] == '.':
			n, e := strconv.Atoi(tok[:len(tok)-1])
			if e != nil {
				return e
			}
			ptn.Ops = append(ptn.Ops, &MoveNumber{common, n})
		case tok == "R-0":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.White, Reason: tak.RoadWin}})
		case tok == "0-R":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.Black, Reason: tak.RoadWin}})
		case tok == "F-0":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.White, Reason: tak.FlatsWin}})
		case tok == "0-F":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.Black, Reason: tak.FlatsWin}})
		case tok == "1/2-1/2":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.NoColor, Reason: tak.FlatsWin}})
		case tok == "1-0":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.White, Reason: tak.Resignation}})
		case tok == "0-1":
			ptn.Ops = append(ptn.Ops, &GameOver{common,
				tak.WinDetails{Winner: tak.Black, Reason: tak.Resignation}})
		default:
			trimmed := strings.TrimRight(tok, "?!'")
			move, e := ParseMove(trimmed)
			if e != nil {
				return e
			}
			ptn.Ops = append(ptn.Ops, &Move{common, move, tok[len(trimmed):]})
		}
	}
	return s.Err()
}

func splitMoves(buf []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(buf) && unicode.IsSpace(rune(buf[start])) {
		start++
	}
	if start == len(buf) {
		return start, nil, nil
	}
	if buf[start] == '{' {
		for i := start; i < len(buf); i++ {
			if buf[i] == '}' {
				return i + 1, buf[start : i+1], nil
			}
		}
	} else {
		for i := start; i < len(buf); i++ {
			if unicode.IsSpace(rune(buf[i])) {
				return i + 1, buf[start:i], nil
			}
		}
	}
	if atEOF {
		return len(buf), buf[start:], nil
	}
	return start, nil, nil
}

func skipWS(r *bufio.Reader) error {
	for {
		c, e := r.ReadByte()
		if e != nil {
			return e
		}
		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

func (p *PTN) Render() string {
	var out bytes.Buffer
	for _, tag := range p.Tags {
		fmt.Fprintf(&out, "[%s \"%s\"]\n",
			tag.Name, strings.Replace(tag.Value, "\"", "", -1),
		)
	}
	out.WriteString("\n")

	for _, op := range p.Ops {
		switch o := op.(type) {
		case *MoveNumber:
			fmt.Fprintf(&out, "\n%d.", o.Number)
		case *Move:
			fmt.Fprintf(&out, " %s%s", FormatMove(o.Move), o.Modifiers)
		case *Comment:
			fmt.Fprintf(&out, " {%s}", o.Comment)
		case *GameOver:
			fmt.Fprintf(&out, "\n%s\n", FormatResult(o.End))
		default:
		}
	}
	return out.String()
}

// FormatResult renders a game end as its result token, e.g. R-0 for a
// white road win.
func FormatResult(d tak.WinDetails) string {
	switch {
	case d.Winner == tak.NoColor:
		return "1/2-1/2"
	case d.Reason == tak.RoadWin && d.Winner == tak.White:
		return "R-0"
	case d.Reason == tak.RoadWin && d.Winner == tak.Black:
		return "0-R"
	case d.Reason == tak.FlatsWin && d.Winner == tak.White:
		return "F-0"
	case d.Reason == tak.FlatsWin && d.Winner == tak.Black:
		return "0-F"
	case d.Winner == tak.White:
		return "1-0"
	default:
		return "0-1"
	}
}
