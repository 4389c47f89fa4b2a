package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/taklab/flatline/cmd/internal/analyze"
	"github.com/taklab/flatline/cmd/internal/bot"
	"github.com/taklab/flatline/cmd/internal/play"
	"github.com/taklab/flatline/cmd/internal/selfplay"
	"github.com/taklab/flatline/cmd/internal/serve"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&analyze.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&bot.Command{}, "")
	subcommands.Register(&serve.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
