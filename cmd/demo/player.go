package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/controls/common"
	"github.com/milk9111/controls/scheme"
	"golang.org/x/image/colornames"
)

const (
	playerSize = 32.0
	wallSize   = 20.0
	stepDt     = 1.0 / 60.0
	// sprint multiplies the speed while the scheme's shift key is held.
	sprint = 2.0
	// accel is the fraction of the target velocity reached each frame.
	accel = 0.3
)

// playerBody is a box in a walled chipmunk space steered by a KeySet.
type playerBody struct {
	space *cp.Space
	body  *cp.Body
	speed float64
}

func newPlayerBody(x, y, speed float64) *playerBody {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})

	w, h := float64(common.BaseWidth), float64(common.BaseHeight)
	walls := []cp.BB{
		{L: -wallSize, B: -wallSize, R: w + wallSize, T: 0},
		{L: -wallSize, B: h, R: w + wallSize, T: h + wallSize},
		{L: -wallSize, B: 0, R: 0, T: h},
		{L: w, B: 0, R: w + wallSize, T: h},
	}
	for _, bb := range walls {
		wall := cp.NewBox2(space.StaticBody, bb, 0)
		wall.SetFriction(0)
		space.AddShape(wall)
	}

	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, playerSize, playerSize, 0)
	shape.SetFriction(0)
	space.AddBody(body)
	space.AddShape(shape)

	return &playerBody{space: space, body: body, speed: speed}
}

// Update steers toward the direction held on keys. Up wins over down and
// left over right.
func (p *playerBody) Update(keys *scheme.KeySet) {
	var dx, dy float64
	if keys.IsDown("up") {
		dy = -1
	} else if keys.IsDown("down") {
		dy = 1
	}
	if keys.IsDown("left") {
		dx = -1
	} else if keys.IsDown("right") {
		dx = 1
	}

	speed := p.speed
	if keys.IsDown("shift") {
		speed *= sprint
	}

	v := p.body.Velocity()
	p.body.SetVelocity(
		common.Lerp(v.X, dx*speed, accel),
		common.Lerp(v.Y, dy*speed, accel),
	)
	p.space.Step(stepDt)
}

func (p *playerBody) Position() cp.Vector {
	return p.body.Position()
}

func (p *playerBody) Draw(screen *ebiten.Image) {
	pos := p.body.Position()
	x := common.Clamp(pos.X-playerSize/2, 0, common.BaseWidth-playerSize)
	y := common.Clamp(pos.Y-playerSize/2, 0, common.BaseHeight-playerSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), playerSize, playerSize, colornames.Darkslategray, false)
}
