package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless run.
type SimLogEntry struct {
	Frame    int
	Entity   string  // label e.g. "player", "enemy3", "pig12", or "--"
	Actor    string  // "player", "enemy", "pig", or "--"
	Category string  // combat, effect, pickup, population, cycle, session
	Key      string  // event kind within the category
	Value    string  // human-readable detail
	NumVal   float64 // amount, when the event carries one
}

// String formats the entry as a fixed-width log line.
//
//	[F=0412] enemy3   combat     kill             (812,402)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-8s %-10s %-16s %s",
		e.Frame, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured entries for every event a session emits.
// Unlike the on-screen feed it is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	effects bool
}

// NewSimLog creates a SimLog. Visual-only events (knockback, impact, floating
// text) are recorded only when effects is true.
func NewSimLog(effects bool) *SimLog {
	return &SimLog{effects: effects}
}

func (sl *SimLog) record(frame int, e Event) {
	cat := e.Kind.category()
	if cat == "effect" && !sl.effects {
		return
	}
	label := e.Label
	if label == "" {
		label = "--"
	}
	value := fmt.Sprintf("(%.0f,%.0f)", e.Pos.X, e.Pos.Y)
	switch {
	case e.Text != "":
		value = e.Text
	case e.Kind == EventCollect || (e.Kind == EventSpawn && e.Actor == ActorNone):
		value = fmt.Sprintf("%s %s", e.Collectible, value)
	}
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Entity:   label,
		Actor:    e.Actor.String(),
		Category: cat,
		Key:      e.Kind.String(),
		Value:    value,
		NumVal:   float64(e.Amount),
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for one entity label.
func (sl *SimLog) FilterEntity(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format renders every entry, one per line.
func (sl *SimLog) Format() string {
	var b strings.Builder
	for _, e := range sl.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
