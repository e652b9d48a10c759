package ui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/controls/common"
	"github.com/milk9111/controls/scheme"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// DebugPanel shows the active scheme. Clicking the text activates the next
// scheme; the copy button puts the active scheme on the clipboard.
type DebugPanel struct {
	registry  *scheme.Registry
	ui        *ebitenui.UI
	schemeBtn *widget.Button
	status    *widget.Text

	clipboardReady bool
	shown          string
}

func NewDebugPanel(r *scheme.Registry) *DebugPanel {
	p := &DebugPanel{registry: r}

	if err := clipboard.Init(); err != nil {
		log.Printf("ui: clipboard unavailable: %v", err)
	} else {
		p.clipboardReady = true
	}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	p.schemeBtn = widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: panelImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text(debugLabel(nil), &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.cycle()
		}),
	)

	copyBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
		widget.ButtonOpts.Text("Copy scheme", &face, btnTextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if err := p.CopyActive(); err != nil {
				p.setStatus(err.Error())
			}
		}),
	)

	p.status = widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.DebugPanelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(p.schemeBtn)
	panel.AddChild(copyBtn)
	panel.AddChild(p.status)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	p.ui = &ebitenui.UI{Container: root}
	p.Refresh()
	return p
}

func (p *DebugPanel) Update() {
	if p.registry.ActiveName() != p.shown {
		p.Refresh()
	}
	p.ui.Update()
}

func (p *DebugPanel) Draw(screen *ebiten.Image) {
	p.ui.Draw(screen)
}

// Refresh redraws the label from the registry's active scheme.
func (p *DebugPanel) Refresh() {
	active, _ := p.registry.GetActive()
	p.schemeBtn.Text().Label = debugLabel(active)
	p.shown = p.registry.ActiveName()
}

// CopyActive writes the active scheme as YAML to the clipboard.
func (p *DebugPanel) CopyActive() error {
	if !p.clipboardReady {
		return fmt.Errorf("ui: clipboard unavailable")
	}
	active, ok := p.registry.GetActive()
	if !ok {
		return scheme.ErrNoActiveScheme
	}
	clipboard.Write(clipboard.FmtText, []byte(FormatScheme(active)))
	p.setStatus("copied " + active.Name)
	return nil
}

func (p *DebugPanel) cycle() {
	next, err := p.registry.Next()
	if err != nil {
		p.setStatus(err.Error())
		return
	}
	p.setStatus("")
	log.Printf("ui: switched to %s", next.Name)
	p.Refresh()
}

func (p *DebugPanel) setStatus(msg string) {
	p.status.Label = msg
}
