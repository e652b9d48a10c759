package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

type CLI struct {
	Globals

	List     ListCmd     `cmd:"" help:"List schemes in the file."`
	Add      AddCmd      `cmd:"" help:"Add a scheme."`
	Edit     EditCmd     `cmd:"" help:"Change controls of a scheme."`
	Delete   DeleteCmd   `cmd:"" help:"Delete a scheme."`
	Activate ActivateCmd `cmd:"" help:"Make a scheme the active one."`
	Preset   PresetCmd   `cmd:"" help:"Add a built-in scheme."`
	Export   ExportCmd   `cmd:"" help:"Print the schemes in another format."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("schemectl"),
		kong.Description("Edit control scheme files"),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader, "schemectl.yaml"),
		kong.Configuration(kongtoml.Loader, "schemectl.toml"),
	)

	ctx.Bind(&cli.Globals)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
