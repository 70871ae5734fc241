package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

const (
	hudLineH = 16 // basicfont 7x13 plus leading
	hudCharW = 7
	hudPadX  = 8
	hudPadY  = 6
)

// newHUDFace wraps the fixed 7x13 bitmap font for text/v2.
func newHUDFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// hudLines is the status block shown in the top-left corner.
func hudLines(s *sim.Session) []string {
	p := s.Player
	inv := p.Inventory
	pass := "no"
	if inv.BattlePass {
		pass = "yes"
	}
	return []string{
		fmt.Sprintf("Health: %d/%d", max(p.Health, 0), p.MaxHealth),
		fmt.Sprintf("Kills:  %d", p.Kills),
		fmt.Sprintf("Coins:  %d", p.Coins),
		fmt.Sprintf("Time:   %s %s", s.Env.DayNight.Phase(), clockText(s.Elapsed())),
		fmt.Sprintf("Skin: %s  Stick: %s  Pass: %s", inv.Skin, inv.Stick, pass),
	}
}

// clockText formats session time as mm:ss.
func clockText(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func controlsLine() string {
	return "WASD move  mouse aim  click/space attack  B store  L feed  C copy report"
}

// storeLines lists the catalog with the key that buys each item.
func storeLines(st *Store, inv sim.Inventory) []string {
	lines := []string{"STORE (B to close) - purchases are simulated"}
	for i, it := range st.Items() {
		state := FormatPrice(it.PriceCents)
		if Owned(inv, it) {
			state = "owned"
		}
		lines = append(lines, fmt.Sprintf("[%d] %-14s %s", i+1, it.Name, state))
	}
	return lines
}

func gameOverLines(r sim.Report) []string {
	lines := []string{"GAME OVER! You were defeated."}
	lines = append(lines, strings.Split(strings.TrimRight(r.String(), "\n"), "\n")...)
	return append(lines, "", "R restart   C copy report   Esc quit")
}

// drawPanel draws lines of text inside a framed box at
// (x, y) and returns the box size.
func drawPanel(screen *ebiten.Image, face text.Face, x, y float32, lines []string, accent color.RGBA) (float32, float32) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	w := float32(maxLen*hudCharW + hudPadX*2)
	h := float32(len(lines)*hudLineH + hudPadY*2)

	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, x, y, w, h, 1.0, accent, false)
	vector.StrokeLine(screen, x+1, y+1, x+w-1, y+1, 1.0, color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: 60}, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+hudPadX), float64(y+hudPadY)+float64(i*hudLineH))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 230, B: 220, A: 255})
		text.Draw(screen, l, face, op)
	}
	return w, h
}

// drawHealthBar draws a bar of width w above a box at screen (x, y).
func drawHealthBar(screen *ebiten.Image, x, y, w float32, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	frac := float32(max(health, 0)) / float32(maxHealth)
	vector.FillRect(screen, x, y-8, w, 4, color.RGBA{R: 60, G: 10, B: 10, A: 200}, false)
	vector.FillRect(screen, x, y-8, w*frac, 4, color.RGBA{R: 80, G: 220, B: 80, A: 230}, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	green := color.RGBA{R: 60, G: 100, B: 60, A: 180}
	drawPanel(screen, g.face, 8, 8, hudLines(s), green)

	sw, sh := g.cfg.ScreenWidth, g.cfg.ScreenHeight
	hint := []string{controlsLine()}
	if g.status != "" && s.Elapsed() < g.statusUntil {
		hint = append(hint, g.status)
	}
	drawPanel(screen, g.face, 8, float32(sh)-float32(len(hint)*hudLineH+hudPadY*2)-8, hint, green)

	if g.showStore {
		gold := color.RGBA{R: 200, G: 170, B: 60, A: 200}
		lines := storeLines(g.store, s.Player.Inventory)
		drawPanel(screen, g.face, float32(sw)/2-200, float32(sh)/2-100, lines, gold)
	}

	if s.Over() {
		red := color.RGBA{R: 200, G: 60, B: 50, A: 220}
		lines := gameOverLines(s.Report())
		drawPanel(screen, g.face, float32(sw)/2-180, float32(sh)/2-90, lines, red)
	}
}
