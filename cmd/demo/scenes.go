package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/controls/common"
	"github.com/milk9111/controls/input"
	"github.com/milk9111/controls/scheme"
	"github.com/milk9111/controls/schemefile"
	"github.com/milk9111/controls/ui"
	"golang.org/x/image/colornames"
)

const (
	sceneBasic = "basic"
	sceneCombo = "combo"
)

// baseScene holds what both scenes share: a registry on the game's store,
// the player body and the optional debug panel.
type baseScene struct {
	game     *Game
	name     string
	title    string
	next     string
	registry *scheme.Registry
	panel    *ui.DebugPanel
	bg       color.Color
}

func newBaseScene(g *Game, name, title, next string, bg color.Color) baseScene {
	return baseScene{
		game:     g,
		name:     name,
		title:    title,
		next:     next,
		registry: scheme.New(g.store, g.keyboard),
		bg:       bg,
	}
}

func (s *baseScene) Name() string {
	return s.name
}

func (s *baseScene) Registry() *scheme.Registry {
	return s.registry
}

func (s *baseScene) enterPanel() {
	if s.game.cli.Debug && s.panel == nil {
		s.panel = ui.NewDebugPanel(s.registry)
	}
	if s.panel != nil {
		s.panel.Refresh()
	}
}

// update moves the player and reports the scene to switch to when the
// scheme's space key, or Tab for schemes without one, is pressed.
func (s *baseScene) update() (string, error) {
	keys := s.registry.Keys()
	s.game.player.Update(keys)

	if s.panel != nil {
		s.panel.Update()
	}

	if k, ok := keys.Get("space").(*input.Key); ok && k.JustPressed() {
		return s.next, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return s.next, nil
	}
	return "", nil
}

func (s *baseScene) draw(screen *ebiten.Image, lines ...string) {
	screen.Fill(s.bg)
	s.game.player.Draw(screen)

	y := common.BaseHeight - 20*(len(lines)+2)
	ebitenutil.DebugPrintAt(screen, s.title, common.BaseWidth/2-60, y)
	ebitenutil.DebugPrintAt(screen, "Press SPACE to change scene", common.BaseWidth/2-90, y+20)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, common.BaseWidth/2-90, y+40+20*i)
	}

	if s.panel != nil {
		s.panel.Draw(screen)
	}
}

type basicScene struct {
	baseScene
	created bool
}

func newBasicScene(g *Game) *basicScene {
	return &basicScene{baseScene: newBaseScene(g, sceneBasic, "Basic Example Scene", sceneCombo, colornames.Lightsteelblue)}
}

// Enter creates the presets and default schemes on first entry and resumes
// the shared active scheme afterwards.
func (s *basicScene) Enter() error {
	if !s.created {
		s.created = true
		if _, err := s.registry.CreateCursorKeys(true); err != nil {
			return err
		}
		if _, err := s.registry.CreateWASDKeys(false); err != nil {
			return err
		}
		defaults, err := schemefile.Defaults()
		if err != nil {
			return err
		}
		s.game.registerHooks(defaults)
		if err := s.registry.AddMultiple(defaults); err != nil {
			return err
		}
	} else if err := s.registry.Resume(); err != nil {
		return err
	}
	s.enterPanel()
	return nil
}

func (s *basicScene) Update() (string, error) {
	return s.update()
}

func (s *basicScene) Draw(screen *ebiten.Image) {
	s.draw(screen, fmt.Sprintf("Scheme: %s", s.registry.ActiveName()))
}

type comboScene struct {
	baseScene
	konami  *input.Combo
	unlocks int
}

func newComboScene(g *Game) *comboScene {
	s := &comboScene{baseScene: newBaseScene(g, sceneCombo, "Combo Example Scene", sceneBasic, colornames.Palegoldenrod)}
	s.konami = input.KonamiCode(func() {
		s.unlocks++
		log.Printf("demo: 30+ lives!")
	})
	return s
}

// Enter resumes whatever scheme the other scene left active and arms the
// Konami code while this scene is shown.
func (s *comboScene) Enter() error {
	if err := s.registry.Resume(); err != nil {
		return err
	}
	s.konami.Reset()
	s.game.keyboard.AddCombo(s.konami)
	s.enterPanel()
	return nil
}

func (s *comboScene) Update() (string, error) {
	next, err := s.update()
	if next != "" {
		s.game.keyboard.RemoveCombo(s.konami)
	}
	return next, err
}

func (s *comboScene) Draw(screen *ebiten.Image) {
	s.draw(screen,
		fmt.Sprintf("Scheme: %s", s.registry.ActiveName()),
		fmt.Sprintf("Konami code: %d/%d  unlocked %d", s.konami.Progress(), s.konami.Len(), s.unlocks),
	)
}
