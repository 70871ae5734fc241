package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Label   string // e.g. "player", "enemy3", "pig12"
	Actor   sim.ActorKind
	Message string
}

// EventFeed is a ring buffer of notable session events rendered on-screen.
// Visual-only events are not kept.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add records e if it is worth a line and reports whether it did.
func (f *EventFeed) Add(frame int, e sim.Event) bool {
	msg := describe(e)
	if msg == "" {
		return false
	}
	label := e.Label
	if label == "" {
		label = "world"
	}
	f.entries[f.head] = FeedEntry{
		Frame:   frame,
		Label:   label,
		Actor:   e.Actor,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
	return true
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func describe(e sim.Event) string {
	switch e.Kind {
	case sim.EventKill:
		return "killed"
	case sim.EventHit:
		return fmt.Sprintf("took %d damage", e.Amount)
	case sim.EventEnemyAttack:
		return "swings at the player"
	case sim.EventCollect:
		return fmt.Sprintf("picked up %s", e.Collectible)
	case sim.EventRespawn:
		return "respawned"
	case sim.EventDespawn:
		return "corpse removed"
	case sim.EventSpawn:
		if e.Actor == sim.ActorPig {
			return "wandered in"
		}
	case sim.EventNightFell:
		return "night fell"
	case sim.EventDayBroke:
		return "day broke"
	case sim.EventGameOver:
		return "defeated"
	case sim.EventPlacementFailed:
		return "placement failed"
	}
	return ""
}

// Draw renders the feed panel along the right edge of the screen.
func (f *EventFeed) Draw(screen *ebiten.Image, screenW, screenH int) {
	panelX := screenW - feedPanelWidth
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(screenH), color.RGBA{R: 10, G: 12, B: 10, A: 200}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(screenH), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT FEED  (L to hide)", panelX+8, 0)

	entries := f.Recent()
	maxVisible := (screenH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3

	y := 20
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, actorColor(e.Actor), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s %s", e.Frame, e.Label, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}

func actorColor(k sim.ActorKind) color.RGBA {
	switch k {
	case sim.ActorPlayer:
		return color.RGBA{R: 70, G: 140, B: 230, A: 255}
	case sim.ActorEnemy:
		return color.RGBA{R: 220, G: 70, B: 60, A: 255}
	case sim.ActorPig:
		return color.RGBA{R: 240, G: 160, B: 180, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 120, A: 255}
	}
}
