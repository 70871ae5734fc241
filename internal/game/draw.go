package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

const (
	stickRest     = 30 // stick length when idle
	stickExtended = 70 // stick length mid-swing
	headRadius    = 7
)

// terrainPatch is a subtle ground colour variation tile.
type terrainPatch struct {
	x, y  float32
	w, h  float32
	shade uint8 // offset from base green
}

// newTerrainPatches generates deterministic ground colour patches for a
// world of the given size.
func newTerrainPatches(world sim.Rect) []terrainPatch {
	rng := rand.New(rand.NewSource(54321)) // #nosec G404 -- cosmetic only
	count := int(world.W * world.H / 15000)
	patches := make([]terrainPatch, 0, count)
	for i := 0; i < count; i++ {
		patches = append(patches, terrainPatch{
			x:     float32(rng.Float64() * world.W),
			y:     float32(rng.Float64() * world.H),
			w:     float32(24 + rng.Intn(80)),
			h:     float32(24 + rng.Intn(80)),
			shade: uint8(rng.Intn(13)),
		})
	}
	return patches
}

// visible reports whether a world box intersects the viewport.
func visible(cam *sim.Camera, box sim.Rect) bool {
	return cam.Viewport().Overlaps(box)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	s := g.session
	cam := s.Camera
	sw, sh := float32(g.cfg.ScreenWidth), float32(g.cfg.ScreenHeight)

	vector.FillRect(screen, 0, 0, sw, sh, color.RGBA{R: 28, G: 42, B: 28, A: 255}, false)
	for _, tp := range g.terrain {
		box := sim.Rect{X: float64(tp.x), Y: float64(tp.y), W: float64(tp.w), H: float64(tp.h)}
		if !visible(cam, box) {
			continue
		}
		at := cam.WorldToScreen(box.Origin())
		baseG := 42 + int(tp.shade) - 6
		baseR := 28 + int(tp.shade)/2 - 3
		baseB := 28 + int(tp.shade)/3 - 2
		vector.FillRect(screen, float32(at.X), float32(at.Y), tp.w, tp.h,
			color.RGBA{R: uint8(baseR), G: uint8(baseG), B: uint8(baseB), A: 40}, false)
	}

	for _, o := range s.Env.Obstacles() {
		if visible(cam, o.Box) {
			drawObstacle(screen, cam, o.Box)
		}
	}
	for _, c := range s.Env.Collectibles() {
		if visible(cam, c.Box) {
			drawCollectible(screen, cam, c)
		}
	}
	for _, pg := range s.Pigs.Corpses() {
		g.drawPig(screen, pg, true)
	}
	for _, pg := range s.Pigs.Live() {
		g.drawPig(screen, pg, false)
	}
	for _, e := range s.Enemies {
		if e.Alive() {
			g.drawEnemy(screen, e)
		}
	}
	g.drawPlayer(screen)

	if s.Env.DayNight.Night {
		vector.FillRect(screen, 0, 0, sw, sh, color.RGBA{R: 0, G: 0, B: 30, A: 120}, false)
	}
	g.effects.Draw(screen, cam, g.face)
}

func drawObstacle(screen *ebiten.Image, cam *sim.Camera, box sim.Rect) {
	at := cam.WorldToScreen(box.Origin())
	x0, y0 := float32(at.X), float32(at.Y)
	bw, bh := float32(box.W), float32(box.H)
	vector.FillRect(screen, x0+4, y0+4, bw, bh, color.RGBA{R: 10, G: 8, B: 6, A: 80}, false)
	vector.FillRect(screen, x0, y0, bw, bh, color.RGBA{R: 85, G: 80, B: 68, A: 255}, false)
	vector.StrokeLine(screen, x0, y0, x0+bw, y0, 1, color.RGBA{R: 110, G: 105, B: 90, A: 200}, false)
	vector.StrokeLine(screen, x0, y0, x0, y0+bh, 1, color.RGBA{R: 110, G: 105, B: 90, A: 200}, false)
	vector.StrokeLine(screen, x0, y0+bh, x0+bw, y0+bh, 1, color.RGBA{R: 50, G: 47, B: 38, A: 200}, false)
	vector.StrokeLine(screen, x0+bw, y0, x0+bw, y0+bh, 1, color.RGBA{R: 50, G: 47, B: 38, A: 200}, false)
}

func drawCollectible(screen *ebiten.Image, cam *sim.Camera, c *sim.Collectible) {
	at := cam.WorldToScreen(c.Box.Origin())
	x0, y0 := float32(at.X), float32(at.Y)
	w, h := float32(c.Box.W), float32(c.Box.H)
	cx, cy := x0+w/2, y0+h/2
	switch c.Kind {
	case sim.Coin:
		vector.FillCircle(screen, cx, cy, w/2, color.RGBA{R: 230, G: 190, B: 30, A: 255}, true)
		vector.StrokeCircle(screen, cx, cy, w/2-3, 1.5, color.RGBA{R: 255, G: 235, B: 120, A: 255}, true)
	case sim.Health:
		vector.FillRect(screen, x0, y0, w, h, color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)
		vector.FillRect(screen, x0+w/2-3, y0+4, 6, h-8, color.RGBA{R: 210, G: 30, B: 30, A: 255}, false)
		vector.FillRect(screen, x0+4, y0+h/2-3, w-8, 6, color.RGBA{R: 210, G: 30, B: 30, A: 255}, false)
	case sim.Bacon:
		for i := 0; i < 3; i++ {
			band := color.RGBA{R: 200, G: 70, B: 60, A: 255}
			if i%2 == 1 {
				band = color.RGBA{R: 250, G: 210, B: 190, A: 255}
			}
			vector.FillRect(screen, x0, y0+float32(i)*h/3, w, h/3, band, false)
		}
	}
}

func (g *Game) drawPig(screen *ebiten.Image, pg *sim.Pig, dead bool) {
	cam := g.session.Camera
	if !visible(cam, pg.Box()) {
		return
	}
	at := cam.WorldToScreen(pg.Pos)
	x0, y0 := float32(at.X), float32(at.Y)
	w, h := float32(pg.Size.X), float32(pg.Size.Y)
	body := color.RGBA{R: 240, G: 160, B: 180, A: 255}
	if dead {
		body = color.RGBA{R: 150, G: 90, B: 100, A: 160}
	} else if g.effects.Flashing(pg.ID) {
		body = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.FillRect(screen, x0, y0+h/4, w, h*3/4, body, false)
	snoutX := x0 + w - 8
	if pg.Dir.X < 0 {
		snoutX = x0
	}
	vector.FillRect(screen, snoutX, y0+h/2-4, 8, 8, color.RGBA{R: 220, G: 120, B: 140, A: body.A}, false)
	if !dead {
		drawHealthBar(screen, x0, y0+h/4, w, pg.Health, pg.MaxHealth)
	}
}

func (g *Game) drawEnemy(screen *ebiten.Image, e *sim.Enemy) {
	cam := g.session.Camera
	if !visible(cam, e.Box()) {
		return
	}
	pos := e.Pos.Add(g.effects.Offset(e.ID))
	col := color.RGBA{R: 210, G: 60, B: 50, A: 255}
	if g.effects.Flashing(e.ID) {
		col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	reach := float64(stickRest)
	if g.effects.Swinging(e.ID) {
		reach = stickExtended
	}
	stick := color.RGBA{R: 120, G: 80, B: 40, A: 255}
	drawStickFigure(screen, cam, pos, e.Size, e.Facing, reach, col, stick, 3)

	at := cam.WorldToScreen(pos)
	drawHealthBar(screen, float32(at.X), float32(at.Y), float32(e.Size.X), e.Health, e.MaxHealth)
	ebitenutil.DebugPrintAt(screen, e.Name, int(at.X)-6, int(at.Y)-26)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.session.Player
	cam := g.session.Camera
	pos := p.Pos.Add(g.effects.Offset(p.ID))

	col := color.RGBA{R: 70, G: 140, B: 230, A: 255}
	if p.Inventory.Skin == sim.TierPremium {
		col = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	}
	if g.effects.Flashing(p.ID) {
		col = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	}
	stick := color.RGBA{R: 120, G: 80, B: 40, A: 255}
	width := float32(3)
	if p.Inventory.Stick == sim.TierPremium {
		stick = color.RGBA{R: 255, G: 220, B: 90, A: 255}
		width = 5
	}
	reach := float64(stickRest)
	if p.Attacking {
		reach = stickExtended
	}
	drawStickFigure(screen, cam, pos, p.Size, p.Rotation, reach, col, stick, width)

	if p.Inventory.BattlePass {
		at := cam.WorldToScreen(pos)
		vector.StrokeCircle(screen, float32(at.X+p.Size.X/2), float32(at.Y+headRadius), headRadius+4, 1.5,
			color.RGBA{R: 255, G: 240, B: 140, A: 200}, true)
	}
}

// drawStickFigure draws a head, body, limbs and a stick pointing along
// facing from the figure's shoulder.
func drawStickFigure(screen *ebiten.Image, cam *sim.Camera, pos, size sim.Vec, facing, reach float64, body, stick color.RGBA, stickW float32) {
	at := cam.WorldToScreen(pos)
	x0, y0 := float32(at.X), float32(at.Y)
	w, h := float32(size.X), float32(size.Y)
	cx := x0 + w/2
	neck := y0 + headRadius*2
	hip := y0 + h*0.7

	vector.FillCircle(screen, cx, y0+headRadius, headRadius, body, true)
	vector.StrokeLine(screen, cx, neck, cx, hip, 2, body, true)
	vector.StrokeLine(screen, cx, hip, x0+2, y0+h, 2, body, true)
	vector.StrokeLine(screen, cx, hip, x0+w-2, y0+h, 2, body, true)

	shoulder := neck + 4
	tipX := cx + float32(math.Cos(facing)*reach)
	tipY := shoulder + float32(math.Sin(facing)*reach)
	vector.StrokeLine(screen, cx, shoulder, tipX, tipY, stickW, stick, true)
}
