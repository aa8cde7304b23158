package main

import (
	"github.com/alecthomas/kong"

	"github.com/RandomArtist22/MA104-Notes/cmd/notesite/commands"
)

var version = "0.3.0"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("notesite"),
		kong.Description("Builds a themed HTML site from tagged markdown lecture notes."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{})
	commands.Exit(cli, err)
}
