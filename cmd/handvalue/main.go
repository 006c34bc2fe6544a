package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Count   CountCmd         `cmd:"" help:"Count how many games player one wins"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate one hand, or compare two"`
	Gen     GenCmd           `cmd:"" help:"Write a file of random games"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handvalue"),
		kong.Description("Five-card poker hand encoder and game counter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
