package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/taklab/flatline/ai"
	"github.com/taklab/flatline/playtak"
	"github.com/taklab/flatline/playtak/bot"
	"github.com/taklab/flatline/tak"
)

// Flatline adapts the minimax engine to the playtak game loop.
type Flatline struct {
	cmd *Command

	g      *bot.Game
	client *playtak.Commands
	ai     ai.TakPlayer
}

func (f *Flatline) NewGame(g *bot.Game) {
	f.g = g
	f.ai = ai.NewMinimax(ai.MinimaxConfig{
		Size:  g.Size,
		Depth: f.cmd.depth,
		Debug: f.cmd.debug,
	})
}

func (f *Flatline) GetMove(ctx context.Context, p *tak.Position, mine, theirs time.Duration) tak.Move {
	if p.ToMove() != f.g.Color {
		return tak.Move{}
	}
	return f.ai.GetMove(ctx, p)
}

func (f *Flatline) GameOver() {
	f.ai = nil
}

func (f *Flatline) AcceptUndo() bool {
	return f.cmd.undo
}

func (f *Flatline) HandleChat(who string, msg string) {
	cmd, arg := parseCommand(f.cmd.botName(), msg)
	if cmd == "" {
		return
	}
	log.Info().Msgf("chat from=%q msg=%q", who, msg)
	f.handleCommand(cmd, arg)
}

func (f *Flatline) handleCommand(cmd, arg string) {
	switch strings.ToLower(cmd) {
	case "size":
		sz, err := strconv.Atoi(arg)
		if err != nil {
			log.Warn().Msgf("bad size size=%q", arg)
			return
		}
		if sz >= 4 && sz <= 6 && f.client != nil {
			f.cmd.size = sz
			f.client.Seek(sz, f.cmd.gameTime, f.cmd.increment)
		}
	}
}
