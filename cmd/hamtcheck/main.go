package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aglyzov/go-hamt/hamt/check"
)

var CLI struct {
	Seed    int64 `short:"s" help:"Seed of the random value generator" default:"1234567890"`
	Rounds  int   `short:"r" help:"Number of randomized rounds" default:"1000"`
	Size    int   `short:"n" help:"Maximum length of a generated sequence" default:"64"`
	Span    int   `help:"Small values are drawn from [-span, span]" default:"100"`
	Verbose bool  `short:"v" help:"Log every round"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hamtcheck"),
		kong.Description("Compare hamt set algebra against a reference set on random data."),
	)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	err := check.Run(check.Config{
		Seed:   CLI.Seed,
		Rounds: CLI.Rounds,
		Size:   CLI.Size,
		Span:   CLI.Span,
	})
	if err != nil {
		log.Error().Err(err).Msg("check failed")
	}

	ctx.FatalIfErrorf(err)
}
