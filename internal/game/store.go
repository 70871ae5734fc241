package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

var (
	ErrUnknownItem  = errors.New("unknown store item")
	ErrAlreadyOwned = errors.New("store item already owned")
)

// Slot is the inventory slot a store item unlocks.
type Slot int

const (
	SlotSkin Slot = iota
	SlotStick
	SlotBattlePass
)

func (s Slot) String() string {
	switch s {
	case SlotSkin:
		return "skin"
	case SlotStick:
		return "stick"
	case SlotBattlePass:
		return "battle pass"
	default:
		return "unknown"
	}
}

// Item is one cosmetic on sale. Prices are in cents.
type Item struct {
	ID         string
	Name       string
	Slot       Slot
	PriceCents int
}

// DefaultCatalog is what the in-game store offers.
func DefaultCatalog() []Item {
	return []Item{
		{ID: "skin", Name: "Premium Skin", Slot: SlotSkin, PriceCents: 499},
		{ID: "stick", Name: "Premium Stick", Slot: SlotStick, PriceCents: 299},
		{ID: "battlepass", Name: "Battle Pass", Slot: SlotBattlePass, PriceCents: 999},
	}
}

// FormatPrice renders cents as dollars, e.g. 499 -> "$4.99".
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Store sells cosmetics. No payment is taken: a purchase always succeeds
// and only writes the entitlement into the player's inventory.
type Store struct {
	items []Item
	log   *slog.Logger
}

func NewStore(items []Item, log *slog.Logger) *Store {
	return &Store{items: items, log: log}
}

// Items returns the catalog in display order.
func (st *Store) Items() []Item {
	return st.items
}

// Lookup finds an item by ID.
func (st *Store) Lookup(id string) (Item, bool) {
	for _, it := range st.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Purchase grants item id to inv.
func (st *Store) Purchase(inv *sim.Inventory, id string) (Item, error) {
	it, ok := st.Lookup(id)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if Owned(*inv, it) {
		return it, fmt.Errorf("%s: %w", it.Name, ErrAlreadyOwned)
	}
	switch it.Slot {
	case SlotSkin:
		inv.Skin = sim.TierPremium
	case SlotStick:
		inv.Stick = sim.TierPremium
	case SlotBattlePass:
		inv.BattlePass = true
	}
	st.log.Info("simulated purchase", "item", it.ID, "price", FormatPrice(it.PriceCents))
	return it, nil
}

// Owned reports whether inv already holds it.
func Owned(inv sim.Inventory, it Item) bool {
	switch it.Slot {
	case SlotSkin:
		return inv.Skin == sim.TierPremium
	case SlotStick:
		return inv.Stick == sim.TierPremium
	case SlotBattlePass:
		return inv.BattlePass
	}
	return false
}
