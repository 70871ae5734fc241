// Package game is the ebiten front-end: it polls input into the session,
// ticks it once per frame, and draws the world, HUD, store and effects
// from session state and drained events.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/pkg/clock"
	"github.com/Garsondee/stick-survivor/internal/sim"
)

// statusDuration is how long a status line stays in the HUD.
const statusDuration = 3 * time.Second

// Game is the ebiten front-end around one sim.Session at a time.
type Game struct {
	cfg   config.Config
	log   *slog.Logger
	clock clock.Clock

	session *sim.Session
	poller  *sim.IntentPoller
	feed    *EventFeed
	effects *Effects
	store   *Store
	face    text.Face
	terrain []terrainPatch

	showStore   bool
	showFeed    bool
	status      string
	statusUntil time.Duration

	copyText func(string) error
}

// New builds the game and its first session.
func New(cfg config.Config, log *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      log,
		clock:    clock.New(),
		store:    NewStore(DefaultCatalog(), log),
		face:     newHUDFace(),
		showFeed: true,
		copyText: writeClipboard,
	}
	if err := g.startSession(sim.Inventory{Skin: sim.TierDefault, Stick: sim.TierDefault}); err != nil {
		return nil, err
	}
	g.terrain = newTerrainPatches(g.session.Env.World())
	return g, nil
}

// startSession replaces the session. Purchased cosmetics carry over.
func (g *Game) startSession(inv sim.Inventory) error {
	s, err := sim.New(g.cfg, sim.WithClock(g.clock), sim.WithLogger(g.log))
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	s.Player.Inventory = inv
	g.session = s
	g.poller = sim.NewIntentPoller()
	g.feed = NewEventFeed()
	g.effects = NewEffects()
	g.consume(s.Events())
	return nil
}

// Update handles input, advances the session one frame and consumes its events.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.session.Tick()
	g.consume(g.session.Events())
	return nil
}

// consume hands drained events to the feed and the effect layer.
func (g *Game) consume(events []sim.Event) {
	frame := g.session.Frame()
	for _, e := range events {
		g.feed.Add(frame, e)
		g.effects.Apply(e)
	}
	g.effects.Prune(g.session.Elapsed())
}

func (g *Game) handleInput() error {
	s := g.session
	if s.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.log.Info("restarting session", "kills", s.Player.Kills, "coins", s.Player.Coins)
			return g.startSession(s.Player.Inventory)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.showStore = !g.showStore
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.showFeed = !g.showFeed
	}
	if g.showStore {
		for i, k := range storeKeys {
			if i < len(g.store.Items()) && inpututil.IsKeyJustPressed(k) {
				g.buy(g.store.Items()[i].ID)
			}
		}
	}

	held := heldIntents(ebiten.IsKeyPressed)
	for n := g.poller.Due(g.clock.Now()); n > 0; n-- {
		s.MovePlayer(held...)
	}
	mx, my := ebiten.CursorPosition()
	s.Aim(sim.Vec{X: float64(mx), Y: float64(my)})
	if !g.showStore && (inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		s.Attack()
	}
	return nil
}

// buy runs a simulated purchase and closes the store on success.
func (g *Game) buy(id string) {
	it, err := g.store.Purchase(&g.session.Player.Inventory, id)
	if err != nil {
		g.setStatus(err.Error())
		return
	}
	g.setStatus(fmt.Sprintf("Purchased %s for %s (simulated)", it.Name, FormatPrice(it.PriceCents)))
	g.showStore = false
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusUntil = g.session.Elapsed() + statusDuration
}

// Draw renders the world, effects and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})
	g.drawWorld(screen)
	if g.showFeed {
		g.feed.Draw(screen, int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight))
	}
	g.drawHUD(screen)
}

// Layout keeps the logical screen at the configured size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}
