package sides_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/cart"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/catalog"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/daily"
	"github.com/BenceG-tech/kiscscibe-order-hub-sub002/internal/sides"
)

// fixture builds a catalog with one main course ("Rántott szelet")
// configured with two side options, one unconfigured main ("Gulyás"),
// and a side category holding the configured sides.
func fixture(t *testing.T) (*catalog.InMemoryRepository, *sides.Resolver, *daily.InMemoryRepository) {
	t.Helper()

	repo := catalog.NewInMemoryRepository()
	repo.Categories = []*catalog.Category{
		{ID: "mains", Name: "Főételek"},
		{ID: "koretek", Name: "Köretek", IsSide: true},
	}
	repo.Items["schnitzel"] = &catalog.MenuItem{
		ID: "schnitzel", Name: "Rántott szelet", Price: 1800, Active: true, CategoryID: "mains",
	}
	repo.Items["gulyas"] = &catalog.MenuItem{
		ID: "gulyas", Name: "Gulyás", Price: 1200, Active: true, CategoryID: "mains",
	}
	repo.Items["rizs"] = &catalog.MenuItem{
		ID: "rizs", Name: "Rizs", Price: 400, Active: true, CategoryID: "koretek",
	}
	repo.Items["krumpli"] = &catalog.MenuItem{
		ID: "krumpli", Name: "Sült krumpli", Price: 450, Active: true, CategoryID: "koretek",
	}
	repo.SideConfigs["schnitzel"] = []*catalog.SideConfiguration{
		{MainItemID: "schnitzel", SideItemID: "rizs", IsRequired: true, MinSelect: 1, MaxSelect: 1, IsDefault: true},
		{MainItemID: "schnitzel", SideItemID: "krumpli", IsRequired: true, MinSelect: 1, MaxSelect: 1},
	}

	dailyRepo := daily.NewInMemoryRepository()
	catalogService := catalog.NewService(repo, nil)
	dailyService := daily.NewService(dailyRepo, repo)
	return repo, sides.NewResolver(catalogService, dailyService), dailyRepo
}

func TestResolveConfiguredWinsOverFallbacks(t *testing.T) {
	_, resolver, _ := fixture(t)

	policy, err := resolver.Resolve(context.Background(), "schnitzel", "")
	if err != nil {
		t.Fatal(err)
	}
	if policy.Source != sides.SourceConfigured {
		t.Fatalf("source = %v, want SourceConfigured", policy.Source)
	}
	if len(policy.Candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(policy.Candidates))
	}
	if !policy.Required || policy.MinSelect != 1 || policy.MaxSelect != 1 {
		t.Errorf("policy = required=%v min=%d max=%d, want required 1..1",
			policy.Required, policy.MinSelect, policy.MaxSelect)
	}
	if len(policy.Defaults) != 1 || policy.Defaults[0] != "rizs" {
		t.Errorf("defaults = %v, want [rizs]", policy.Defaults)
	}
}

func TestResolveSkipsInactiveCandidates(t *testing.T) {
	repo, resolver, _ := fixture(t)
	repo.Items["krumpli"].Active = false

	policy, err := resolver.Resolve(context.Background(), "schnitzel", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(policy.Candidates) != 1 || policy.Candidates[0].ID != "rizs" {
		t.Fatalf("candidates = %v, want only rizs", policy.Candidates)
	}
}

func TestResolveDailyFallback(t *testing.T) {
	_, resolver, dailyRepo := fixture(t)
	dailyRepo.Offers["offer1"] = &daily.Offer{
		ID: "offer1", Date: "2026-09-01",
		Items: []*daily.Item{
			{ID: "d1", MenuItemID: "rizs", Name: "Rizs", Price: 400, CategoryID: "koretek"},
			{ID: "d2", MenuItemID: "gulyas", Name: "Gulyás", Price: 1200, CategoryID: "mains"},
		},
	}

	policy, err := resolver.Resolve(context.Background(), "gulyas", "offer1")
	if err != nil {
		t.Fatal(err)
	}
	if policy.Source != sides.SourceDailyFallback {
		t.Fatalf("source = %v, want SourceDailyFallback", policy.Source)
	}
	if len(policy.Candidates) != 1 || policy.Candidates[0].ID != "rizs" {
		t.Fatalf("candidates = %v, want the offer's side item only", policy.Candidates)
	}
	if policy.Required || policy.MinSelect != 0 || policy.MaxSelect != 1 {
		t.Errorf("fallback must be a soft 0..1 suggestion, got required=%v min=%d max=%d",
			policy.Required, policy.MinSelect, policy.MaxSelect)
	}
}

func TestResolveGeneralFallback(t *testing.T) {
	_, resolver, _ := fixture(t)

	// No configuration on gulyás, no daily offer: falls through to the
	// side categories.
	policy, err := resolver.Resolve(context.Background(), "gulyas", "")
	if err != nil {
		t.Fatal(err)
	}
	if policy.Source != sides.SourceGeneralFallback {
		t.Fatalf("source = %v, want SourceGeneralFallback", policy.Source)
	}
	if len(policy.Candidates) != 2 {
		t.Fatalf("candidates = %d, want both side-category items", len(policy.Candidates))
	}
	if policy.Required {
		t.Error("general fallback must never be required")
	}
}

func TestResolveNoneWhenNoSidesExistAnywhere(t *testing.T) {
	repo := catalog.NewInMemoryRepository()
	repo.Categories = []*catalog.Category{{ID: "mains", Name: "Főételek"}}
	repo.Items["gulyas"] = &catalog.MenuItem{
		ID: "gulyas", Name: "Gulyás", Price: 1200, Active: true, CategoryID: "mains",
	}
	resolver := sides.NewResolver(catalog.NewService(repo, nil), nil)

	policy, err := resolver.Resolve(context.Background(), "gulyas", "")
	if err != nil {
		t.Fatal(err)
	}
	if policy.Source != sides.SourceNone {
		t.Fatalf("source = %v, want SourceNone", policy.Source)
	}
	if policy.HasStep() {
		t.Error("HasStep() = true for SourceNone, the picker must be skipped")
	}
}

// flakyCatalog fails every item lookup, as a repository would during
// an outage, while leaving the rest of the catalog source intact.
type flakyCatalog struct {
	sides.CatalogSource
	itemErr error
}

func (f flakyCatalog) GetItem(_ context.Context, _ string) (*catalog.MenuItem, error) {
	return nil, f.itemErr
}

func TestResolvePropagatesCatalogErrors(t *testing.T) {
	repo, _, _ := fixture(t)
	svc := catalog.NewService(repo, nil)
	resolver := sides.NewResolver(
		flakyCatalog{CatalogSource: svc, itemErr: errors.New("connection reset")}, nil,
	)

	if _, err := resolver.Resolve(context.Background(), "schnitzel", ""); err == nil {
		t.Fatal("a failing repository must surface, not soften the policy to a fallback")
	}
}

func TestValidateCartFailsClosedOnCatalogErrors(t *testing.T) {
	repo, _, _ := fixture(t)
	svc := catalog.NewService(repo, nil)
	resolver := sides.NewResolver(
		flakyCatalog{CatalogSource: svc, itemErr: errors.New("connection reset")}, nil,
	)

	result, err := resolver.ValidateCart(context.Background(), []cart.Line{
		{LineID: "l1", ItemID: "schnitzel", Name: "Rántott szelet", Quantity: 1},
	})
	if err == nil {
		t.Fatal("validation during an outage must error, never pass the required policy")
	}
	if result.Valid {
		t.Error("a failed validation must not read as valid")
	}
}

func TestResolveSkipsVanishedSides(t *testing.T) {
	repo, resolver, _ := fixture(t)

	// A configuration row pointing at a deleted item: that side is
	// skipped, the rest of the configured policy stands.
	delete(repo.Items, "krumpli")

	policy, err := resolver.Resolve(context.Background(), "schnitzel", "")
	if err != nil {
		t.Fatal(err)
	}
	if policy.Source != sides.SourceConfigured {
		t.Fatalf("source = %v, want SourceConfigured", policy.Source)
	}
	if len(policy.Candidates) != 1 || policy.Candidates[0].ID != "rizs" {
		t.Errorf("candidates = %v, want only the surviving side", policy.Candidates)
	}
}

func TestValidateCartPassesUnconfiguredLine(t *testing.T) {
	_, resolver, _ := fixture(t)

	result, err := resolver.ValidateCart(context.Background(), []cart.Line{
		{LineID: "l1", ItemID: "gulyas", Name: "Gulyás", UnitPrice: 1200, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Fatalf("unconfigured line must pass, got errors %v", result.Errors)
	}
}

func TestValidateCartRejectsMissingRequiredSide(t *testing.T) {
	_, resolver, _ := fixture(t)

	result, err := resolver.ValidateCart(context.Background(), []cart.Line{
		{LineID: "l1", ItemID: "schnitzel", Name: "Rántott szelet", UnitPrice: 1800, Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid {
		t.Fatal("line without its required side must fail validation")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Rántott szelet") {
		t.Errorf("errors = %v, want one message naming the dish", result.Errors)
	}
}

func TestValidateCartRejectsTooManySides(t *testing.T) {
	_, resolver, _ := fixture(t)

	result, err := resolver.ValidateCart(context.Background(), []cart.Line{
		{
			LineID: "l1", ItemID: "schnitzel", Name: "Rántott szelet", Quantity: 1,
			Sides: []cart.SideRef{{ID: "rizs", Name: "Rizs"}, {ID: "krumpli", Name: "Sült krumpli"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid {
		t.Fatal("line above max_select must fail validation")
	}
}

func TestValidateCartUsesCurrentConfiguration(t *testing.T) {
	repo, resolver, _ := fixture(t)

	// Line added while the requirement existed, configuration dropped
	// since: the line must validate against what holds NOW.
	repo.SideConfigs["schnitzel"] = nil

	result, err := resolver.ValidateCart(context.Background(), []cart.Line{
		{LineID: "l1", ItemID: "schnitzel", Name: "Rántott szelet", Quantity: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid {
		t.Fatalf("dropped configuration must no longer fail the line, got %v", result.Errors)
	}
}
