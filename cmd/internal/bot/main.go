package bot

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/taklab/flatline/logs"
	"github.com/taklab/flatline/playtak"
	"github.com/taklab/flatline/playtak/bot"
	"github.com/taklab/flatline/tak"
)

const ClientName = "Flatline AI"

type Command struct {
	server string
	ws     string
	user   string
	pass   string
	accept string

	gameTime  time.Duration
	increment time.Duration
	size      int
	once      bool
	undo      bool

	depth int
	debug int
	db    string

	debugClient bool

	repo *logs.Repository
}

func (*Command) Name() string     { return "bot" }
func (*Command) Synopsis() string { return "Play Tak on playtak.com" }
func (*Command) Usage() string {
	return `bot [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.server, "server", "playtak.com:10000", "playtak.com server to connect to")
	flags.StringVar(&c.ws, "ws", "", "connect over websocket at this URL instead of TCP")
	flags.StringVar(&c.user, "user", "", "username for login")
	flags.StringVar(&c.pass, "pass", "", "password for login")
	flags.StringVar(&c.accept, "accept", "", "accept a game from the specified user")
	flags.DurationVar(&c.gameTime, "time", 20*time.Minute, "length of game to offer")
	flags.DurationVar(&c.increment, "increment", 0, "time increment to offer")
	flags.IntVar(&c.size, "size", 5, "size of game to offer")
	flags.BoolVar(&c.once, "once", false, "play a single game and exit")
	flags.BoolVar(&c.undo, "undo", false, "accept undo requests")
	flags.IntVar(&c.depth, "depth", 0, "minimax depth")
	flags.IntVar(&c.debug, "debug", 1, "debug level")
	flags.StringVar(&c.db, "db", "", "record finished games to a sqlite database")
	flags.BoolVar(&c.debugClient, "debug-client", false, "log all playtak traffic")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accept != "" {
		c.once = true
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Fatal().Msgf("open %s: %v", c.db, err)
		}
		c.repo = repo
		defer repo.Close()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT)

	backoff := 1 * time.Second
	b := &Flatline{cmd: c}
	for {
		var client *playtak.Commands
		var cl playtak.Client
		var err error
		if c.ws != "" {
			cl, err = playtak.DialWS(c.debugClient, c.ws)
		} else {
			cl, err = playtak.Dial(c.debugClient, c.server)
		}
		if err != nil {
			log.Error().Msgf("connect: %v", err)
			goto reconnect
		}
		backoff = time.Second
		client = &playtak.Commands{Client: cl}
		client.SendClient(ClientName)
		if c.user != "" {
			err = client.Login(c.user, c.pass)
		} else {
			err = client.LoginGuest()
		}
		if err != nil {
			log.Fatal().Msgf("login: %v", err)
		}
		log.Info().Msgf("login ok user=%q", c.botName())
		b.client = client
		for {
			if c.accept == "" {
				client.Seek(c.size, c.gameTime, c.increment)
				log.Info().Msgf("seek ok size=%d time=%s increment=%s",
					c.size, c.gameTime, c.increment)
			}

		recvLoop:
			for {
				select {
				case line, ok := <-client.Recv():
					if !ok {
						break recvLoop
					}
					switch {
					case strings.HasPrefix(line, "Seek new"):
						bits := strings.Split(line, " ")
						if bits[3] == c.accept {
							log.Info().Msgf("accepting game %s from %s", bits[2], bits[3])
							client.Accept(bits[2])
						}
					case strings.HasPrefix(line, "Game Start"):
						bot.PlayGame(client, b, line)
						c.record(b.g)
						time.Sleep(100 * time.Millisecond)
						break recvLoop
					case strings.HasPrefix(line, "Shout"):
						who, msg := playtak.ParseShout(line)
						if who != "" {
							b.HandleChat(who, msg)
						}
					}
				case <-sigs:
					return subcommands.ExitSuccess
				}
			}
			if c.once {
				return subcommands.ExitSuccess
			}
			if client.Error() != nil {
				log.Error().Msgf("disconnected: %v", client.Error())
				break
			}
		}
	reconnect:
		log.Info().Msgf("sleeping %s before reconnect", backoff)
		select {
		case <-time.After(backoff):
		case <-sigs:
			return subcommands.ExitSuccess
		}
		backoff = backoff * 2
		if backoff > time.Minute {
			backoff = time.Minute
		}
	}
}

func (c *Command) botName() string {
	if c.user != "" {
		return c.user
	}
	return "flatline"
}

// record indexes a finished game. Games that ended off the board, by
// abandonment or resignation, have no final result position and are
// skipped.
func (c *Command) record(g *bot.Game) {
	if c.repo == nil || g == nil {
		return
	}
	final := g.Positions[len(g.Positions)-1]
	if over, _ := final.GameOver(); !over {
		log.Info().Msgf("not recording game-id=%s: no result on the board", g.ID)
		return
	}
	white, black := c.botName(), g.Opponent
	if g.Color != tak.White {
		white, black = black, white
	}
	row := logs.Record(white, black, final, g.Moves)
	if err := c.repo.InsertGame(row); err != nil {
		log.Error().Msgf("record game-id=%s: %v", g.ID, err)
		return
	}
	log.Info().Msgf("recorded game-id=%s id=%d result=%s", g.ID, row.ID, row.Result)
}
