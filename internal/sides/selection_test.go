package sides_test

import (
	"errors"
	"testing"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

func opts(ids ...string) []sides.Option {
	out := make([]sides.Option, len(ids))
	for i, id := range ids {
		out[i] = sides.Option{ID: id, Name: id}
	}
	return out
}

func chosenIDs(s *sides.Selection) []string {
	var ids []string
	for _, o := range s.Chosen() {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestSelectionRadioSemantics(t *testing.T) {
	sel := sides.NewSelection(sides.Policy{
		Source:     sides.SourceConfigured,
		Candidates: opts("rizs", "krumpli"),
		MinSelect:  1,
		MaxSelect:  1,
		Required:   true,
	})

	sel.Pick(sides.Option{ID: "rizs", Name: "rizs"})
	sel.Pick(sides.Option{ID: "krumpli", Name: "krumpli"})

	got := chosenIDs(sel)
	if len(got) != 1 || got[0] != "krumpli" {
		t.Fatalf("chosen = %v, want the later pick to replace the earlier", got)
	}
}

func TestSelectionToggleDeselects(t *testing.T) {
	sel := sides.NewSelection(sides.Policy{
		Candidates: opts("a", "b", "c"),
		MaxSelect:  3,
	})

	sel.Pick(sides.Option{ID: "a"})
	sel.Pick(sides.Option{ID: "a"})

	if got := chosenIDs(sel); len(got) != 0 {
		t.Fatalf("chosen = %v, picking twice must deselect", got)
	}
}

func TestSelectionEvictsOldestAtCapacity(t *testing.T) {
	sel := sides.NewSelection(sides.Policy{
		Candidates: opts("a", "b", "c", "d"),
		MaxSelect:  2,
	})

	sel.Pick(sides.Option{ID: "a"})
	sel.Pick(sides.Option{ID: "b"})
	sel.Pick(sides.Option{ID: "c"})

	got := chosenIDs(sel)
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("chosen = %v, want [b c]: oldest pick evicted, not rejected", got)
	}
}

func TestSelectionStartsWithDefaults(t *testing.T) {
	sel := sides.NewSelection(sides.Policy{
		Candidates: opts("rizs", "krumpli"),
		Defaults:   []string{"rizs"},
		MinSelect:  1,
		MaxSelect:  1,
	})

	got := chosenIDs(sel)
	if len(got) != 1 || got[0] != "rizs" {
		t.Fatalf("chosen = %v, want the default pre-selected", got)
	}
	if err := sel.Confirm(); err != nil {
		t.Errorf("default-filled selection must confirm, got %v", err)
	}
}

func TestSelectionConfirmBelowMinimum(t *testing.T) {
	sel := sides.NewSelection(sides.Policy{
		Candidates: opts("rizs", "krumpli"),
		MinSelect:  1,
		MaxSelect:  1,
		Required:   true,
	})

	err := sel.Confirm()
	if !errors.Is(err, sides.ErrTooFewSides) {
		t.Fatalf("Confirm() = %v, want ErrTooFewSides", err)
	}

	sel.Pick(sides.Option{ID: "rizs"})
	if err := sel.Confirm(); err != nil {
		t.Errorf("Confirm() after picking = %v, want nil", err)
	}
}
