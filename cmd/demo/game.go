package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/controls/common"
	"github.com/milk9111/controls/input"
	"github.com/milk9111/controls/scheme"
	"github.com/milk9111/controls/schemefile"
	"github.com/milk9111/controls/script"
)

// Scene is one screen of the demo. Every scene builds its own registry on
// the game's shared store.
type Scene interface {
	Name() string
	Enter() error
	Update() (next string, err error)
	Draw(screen *ebiten.Image)
	Registry() *scheme.Registry
}

type Game struct {
	cli      CLI
	store    *scheme.Store
	keyboard *input.Keyboard
	handlers scheme.HandlerSet
	watcher  *schemefile.Watcher
	player   *playerBody

	scenes  map[string]Scene
	current Scene
}

func NewGame(cli CLI) (*Game, error) {
	g := &Game{
		cli:      cli,
		store:    scheme.DefaultStore(),
		keyboard: input.NewKeyboard(),
		handlers: scheme.HandlerSet{},
		player:   newPlayerBody(common.BaseWidth/2, common.BaseHeight/2, cli.Speed),
	}

	g.scenes = map[string]Scene{
		sceneBasic: newBasicScene(g),
		sceneCombo: newComboScene(g),
	}

	if cli.Watch && cli.Schemes != "" {
		w, err := schemefile.NewWatcher(filepath.Dir(cli.Schemes))
		if err != nil {
			return nil, fmt.Errorf("demo: watch %s: %w", cli.Schemes, err)
		}
		g.watcher = w
	}

	if err := g.switchScene(cli.Scene); err != nil {
		return nil, err
	}
	return g, nil
}

// loadSchemeFile merges the --schemes file into the current scene's registry.
func (g *Game) loadSchemeFile() error {
	if g.cli.Schemes == "" || g.current == nil {
		return nil
	}
	schemes, err := schemefile.Load(g.cli.Schemes)
	if err != nil {
		return err
	}
	g.registerHooks(schemes)
	return schemefile.Apply(g.current.Registry(), schemes)
}

func (g *Game) registerHooks(schemes []*scheme.Scheme) {
	for _, s := range schemes {
		if err := script.Register(g.handlers, s); err != nil {
			log.Printf("demo: hook for %s: %v", s.Name, err)
		}
	}
}

func (g *Game) switchScene(name string) error {
	next, ok := g.scenes[name]
	if !ok {
		return fmt.Errorf("demo: unknown scene %q", name)
	}
	if err := next.Enter(); err != nil {
		return fmt.Errorf("demo: enter %s: %w", name, err)
	}
	first := g.current == nil
	g.current = next
	if first {
		if err := g.loadSchemeFile(); err != nil {
			log.Printf("demo: load schemes: %v", err)
		}
	}
	log.Printf("demo: scene %s, scheme %s", name, next.Registry().ActiveName())
	return nil
}

func (g *Game) Update() error {
	g.keyboard.Update()
	g.pollWatcher()

	next, err := g.current.Update()
	if err != nil {
		return err
	}

	if err := g.handlers.Dispatch(g.current.Registry().DrainActivations()); err != nil {
		log.Printf("demo: %v", err)
	}

	if next != "" && next != g.current.Name() {
		return g.switchScene(next)
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if filepath.Clean(name) != filepath.Clean(g.cli.Schemes) {
			continue
		}
		if err := g.loadSchemeFile(); err != nil {
			log.Printf("demo: reload %s: %v", name, err)
			continue
		}
		log.Printf("demo: reloaded %s", name)
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("demo: watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the watcher and writes the schemes when --save is set.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.cli.Save == "" {
		return
	}
	if err := schemefile.Save(g.cli.Save, g.store.Schemes()); err != nil {
		log.Printf("demo: save: %v", err)
	}
}
