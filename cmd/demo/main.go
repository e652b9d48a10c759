package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/controls/common"
)

func main() {
	yamlPaths, tomlPaths := configCandidatePaths(findUserConfig(os.Args[1:]))

	var cli CLI
	kong.Parse(&cli,
		kong.Name("controls-demo"),
		kong.Description("Control scheme example scenes"),
		kong.UsageOnError(),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	game, err := NewGame(cli)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("controls")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
