package game

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/Garsondee/stick-survivor/internal/sim"
)

func newTestStore() *Store {
	return NewStore(DefaultCatalog(), slog.New(slog.DiscardHandler))
}

func TestFormatPrice(t *testing.T) {
	cases := map[int]string{499: "$4.99", 1000: "$10.00", 5: "$0.05", 0: "$0.00"}
	for cents, want := range cases {
		if got := FormatPrice(cents); got != want {
			t.Errorf("FormatPrice(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestPurchaseWritesInventory(t *testing.T) {
	st := newTestStore()
	inv := sim.Inventory{Skin: sim.TierDefault, Stick: sim.TierDefault}

	for _, id := range []string{"skin", "stick", "battlepass"} {
		if _, err := st.Purchase(&inv, id); err != nil {
			t.Fatalf("purchase %s: %v", id, err)
		}
	}
	want := sim.Inventory{Skin: sim.TierPremium, Stick: sim.TierPremium, BattlePass: true}
	if inv != want {
		t.Fatalf("inventory = %+v, want %+v", inv, want)
	}
}

func TestPurchaseErrors(t *testing.T) {
	st := newTestStore()
	inv := sim.Inventory{Skin: sim.TierPremium, Stick: sim.TierDefault}

	if _, err := st.Purchase(&inv, "skin"); !errors.Is(err, ErrAlreadyOwned) {
		t.Fatalf("expected ErrAlreadyOwned, got %v", err)
	}
	if _, err := st.Purchase(&inv, "hat"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if inv.Stick != sim.TierDefault || inv.BattlePass {
		t.Fatalf("failed purchases must not change the inventory: %+v", inv)
	}
}

func TestStoreLines(t *testing.T) {
	st := newTestStore()
	lines := storeLines(st, sim.Inventory{Stick: sim.TierPremium})
	if len(lines) != len(st.Items())+1 {
		t.Fatalf("expected header plus one line per item, got %d lines", len(lines))
	}
	if lines[1] != "[1] Premium Skin   $4.99" {
		t.Errorf("unexpected skin line %q", lines[1])
	}
	if lines[2] != "[2] Premium Stick  owned" {
		t.Errorf("unexpected stick line %q", lines[2])
	}
}
