package game

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Garsondee/stick-survivor/internal/config"
	"github.com/Garsondee/stick-survivor/internal/sim"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	g, err := New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.BoundsMode = "nowhere"
	if _, err := New(cfg, slog.New(slog.DiscardHandler)); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewGameFeedsSpawns(t *testing.T) {
	g := newTestGame(t)
	if len(g.feed.Recent()) == 0 {
		t.Fatal("initial pig spawns should reach the feed")
	}
	if len(g.terrain) == 0 {
		t.Fatal("terrain patches should be generated")
	}
}

func TestBuyClosesStoreAndCarriesOver(t *testing.T) {
	g := newTestGame(t)
	g.showStore = true

	g.buy("skin")
	if g.showStore {
		t.Fatal("a successful purchase closes the store")
	}
	if g.session.Player.Inventory.Skin != sim.TierPremium {
		t.Fatal("skin should be premium")
	}
	if !strings.Contains(g.status, "$4.99") {
		t.Fatalf("status should name the price, got %q", g.status)
	}

	g.buy("skin")
	if !strings.Contains(g.status, "already owned") {
		t.Fatalf("expected an already-owned status, got %q", g.status)
	}

	old := g.session
	if err := g.startSession(old.Player.Inventory); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if g.session == old {
		t.Fatal("restart should build a new session")
	}
	if g.session.Player.Inventory.Skin != sim.TierPremium {
		t.Fatal("purchases survive a restart")
	}
}

func TestCopyReport(t *testing.T) {
	g := newTestGame(t)
	var copied string
	g.copyText = func(s string) error {
		copied = s
		return nil
	}
	g.copyReport()
	if !strings.HasPrefix(copied, "Stick Survivor session report\n") {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if !strings.Contains(copied, "inventory skin=default stick=default battle_pass=false") {
		t.Fatalf("report should include the inventory, got %q", copied)
	}
	if g.status != "Report copied to clipboard" {
		t.Fatalf("unexpected status %q", g.status)
	}

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.copyReport()
	if g.status != "Clipboard unavailable" {
		t.Fatalf("unexpected status %q", g.status)
	}
}

func TestConsumeRoutesEvents(t *testing.T) {
	g := newTestGame(t)
	before := len(g.feed.Recent())
	g.consume([]sim.Event{
		{Kind: sim.EventKill, Label: "enemy1", Actor: sim.ActorEnemy},
		{Kind: sim.EventImpact, At: g.session.Elapsed(), Duration: time.Second},
	})
	if got := len(g.feed.Recent()); got != before+1 {
		t.Fatalf("feed grew by %d, want 1", got-before)
	}
	if len(g.effects.impacts) != 1 {
		t.Fatalf("expected one impact, got %d", len(g.effects.impacts))
	}
}

func TestHUDLines(t *testing.T) {
	g := newTestGame(t)
	p := g.session.Player
	p.Kills, p.Coins, p.Health = 3, 25, -10
	p.Inventory.BattlePass = true

	lines := hudLines(g.session)
	want := []string{
		"Health: 0/100",
		"Kills:  3",
		"Coins:  25",
		"Time:   day 00:00",
		"Skin: default  Stick: default  Pass: yes",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestClockText(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59*time.Second + 900*time.Millisecond, "00:59"},
		{61 * time.Second, "01:01"},
		{12*time.Minute + 5*time.Second, "12:05"},
	}
	for _, c := range cases {
		if got := clockText(c.d); got != c.want {
			t.Errorf("clockText(%s) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestGameOverLines(t *testing.T) {
	lines := gameOverLines(sim.Report{Over: true, Kills: 2})
	if lines[0] != "GAME OVER! You were defeated." {
		t.Fatalf("unexpected banner %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "outcome=defeated") {
		t.Fatalf("report should follow the banner, got %q", lines[1])
	}
	if !strings.Contains(lines[len(lines)-1], "R restart") {
		t.Fatalf("last line should list the controls, got %q", lines[len(lines)-1])
	}
}

func TestLayoutUsesConfiguredScreen(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(3840, 2160)
	if w != int(g.cfg.ScreenWidth) || h != int(g.cfg.ScreenHeight) {
		t.Fatalf("expected %vx%v, got %dx%d", g.cfg.ScreenWidth, g.cfg.ScreenHeight, w, h)
	}
}
