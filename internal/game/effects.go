package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

// floatRise is how far floating text drifts up over its lifetime, in pixels.
const floatRise = 30

// floatingText is a short-lived label. World text is anchored in world
// space; notices are centred on the screen.
type floatingText struct {
	text   string
	tone   sim.Tone
	pos    sim.Vec
	born   time.Duration
	until  time.Duration
	notice bool
}

type impact struct {
	pos   sim.Vec
	born  time.Duration
	until time.Duration
}

type knock struct {
	offset sim.Vec
	until  time.Duration
}

// Effects is the visual layer fed by simulation events. Lifetimes run on
// session time so they pause and step with the simulation.
type Effects struct {
	now     time.Duration
	texts   []floatingText
	impacts []impact
	knocks  map[sim.EntityID]knock
	swings  map[sim.EntityID]time.Duration
}

func NewEffects() *Effects {
	return &Effects{
		knocks: make(map[sim.EntityID]knock),
		swings: make(map[sim.EntityID]time.Duration),
	}
}

// Apply turns one event into zero or more visuals.
func (fx *Effects) Apply(e sim.Event) {
	switch e.Kind {
	case sim.EventText:
		fx.texts = append(fx.texts, floatingText{text: e.Text, tone: e.Tone, pos: e.Pos, born: e.At, until: e.At + e.Duration})
	case sim.EventNightFell, sim.EventDayBroke:
		fx.texts = append(fx.texts, floatingText{text: e.Text, tone: e.Tone, born: e.At, until: e.At + e.Duration, notice: true})
	case sim.EventImpact:
		fx.impacts = append(fx.impacts, impact{pos: e.Pos, born: e.At, until: e.At + e.Duration})
	case sim.EventKnockback:
		fx.knocks[e.Entity] = knock{offset: e.Dir, until: e.At + e.Duration}
	case sim.EventEnemyAttack:
		fx.swings[e.Entity] = e.At + e.Duration
	}
}

// Prune advances the effect clock and drops expired visuals.
func (fx *Effects) Prune(now time.Duration) {
	fx.now = now
	texts := fx.texts[:0]
	for _, t := range fx.texts {
		if t.until > now {
			texts = append(texts, t)
		}
	}
	fx.texts = texts

	impacts := fx.impacts[:0]
	for _, im := range fx.impacts {
		if im.until > now {
			impacts = append(impacts, im)
		}
	}
	fx.impacts = impacts

	for id, k := range fx.knocks {
		if k.until <= now {
			delete(fx.knocks, id)
		}
	}
	for id, until := range fx.swings {
		if until <= now {
			delete(fx.swings, id)
		}
	}
}

// Offset is the visual knockback displacement for an entity, or zero.
func (fx *Effects) Offset(id sim.EntityID) sim.Vec {
	if k, ok := fx.knocks[id]; ok && k.until > fx.now {
		return k.offset
	}
	return sim.Vec{}
}

// Flashing reports whether an entity was hit recently enough to flash.
func (fx *Effects) Flashing(id sim.EntityID) bool {
	k, ok := fx.knocks[id]
	return ok && k.until > fx.now
}

// Swinging reports whether an enemy's attack animation is playing.
func (fx *Effects) Swinging(id sim.EntityID) bool {
	until, ok := fx.swings[id]
	return ok && until > fx.now
}

// Len counts live visuals.
func (fx *Effects) Len() int {
	return len(fx.texts) + len(fx.impacts) + len(fx.knocks) + len(fx.swings)
}

// progress returns how far through [born, until) the effect clock is.
func (fx *Effects) progress(born, until time.Duration) float64 {
	span := until - born
	if span <= 0 {
		return 1
	}
	p := float64(fx.now-born) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func toneColor(t sim.Tone) color.RGBA {
	switch t {
	case sim.ToneDamage:
		return color.RGBA{R: 255, G: 70, B: 60, A: 255}
	case sim.ToneHeal:
		return color.RGBA{R: 80, G: 230, B: 90, A: 255}
	case sim.ToneCoin:
		return color.RGBA{R: 255, G: 215, B: 40, A: 255}
	case sim.ToneBonus:
		return color.RGBA{R: 255, G: 150, B: 200, A: 255}
	default:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	}
}

// Draw renders impacts and floating text.
func (fx *Effects) Draw(screen *ebiten.Image, cam *sim.Camera, face text.Face) {
	for _, im := range fx.impacts {
		p := fx.progress(im.born, im.until)
		at := cam.WorldToScreen(im.pos)
		alpha := uint8(220 * (1 - p))
		r := float32(8 + 18*p)
		vector.StrokeCircle(screen, float32(at.X), float32(at.Y), r, 3, color.RGBA{R: 255, G: 230, B: 120, A: alpha}, true)
		vector.FillCircle(screen, float32(at.X), float32(at.Y), r/3, color.RGBA{R: 255, G: 255, B: 255, A: alpha}, true)
	}

	screenSize := cam.Screen()
	noticeY := screenSize.Y / 3
	for _, t := range fx.texts {
		p := fx.progress(t.born, t.until)
		alpha := float32(1)
		if p > 0.7 {
			alpha = float32(1 - (p-0.7)/0.3)
		}
		op := &text.DrawOptions{}
		if t.notice {
			w, _ := text.Measure(t.text, face, 0)
			op.GeoM.Scale(2, 2)
			op.GeoM.Translate(screenSize.X/2-w, noticeY)
			noticeY += 30
		} else {
			at := cam.WorldToScreen(t.pos)
			op.GeoM.Translate(at.X, at.Y-floatRise*p)
		}
		op.ColorScale.ScaleWithColor(toneColor(t.tone))
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, t.text, face, op)
	}
}
