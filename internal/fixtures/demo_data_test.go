package fixtures

import (
	"context"
	"testing"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
)

func TestSeedFillsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	if err := Seed(ctx, repos, now); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if n, _ := repos.Employees.Count(ctx); n != 5 {
		t.Errorf("expected 5 employees, got %d", n)
	}
	if n, _ := repos.Inventory.Count(ctx); n != 5 {
		t.Errorf("expected 5 inventory items, got %d", n)
	}
	if n, _ := repos.Projects.Count(ctx); n != 3 {
		t.Errorf("expected 3 projects, got %d", n)
	}
	if n, _ := repos.Events.Count(ctx); n != 3 {
		t.Errorf("expected 3 events, got %d", n)
	}
	if n, _ := repos.Notifications.Count(ctx); n != 4 {
		t.Errorf("expected 4 notifications, got %d", n)
	}
	if n, _ := repos.Finance.Count(ctx); n != 11 {
		t.Errorf("expected 11 finance records, got %d", n)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	now := time.Now()

	repos.Projects.Create(ctx, models.Project{ID: "mine", Title: "Existing"})

	if err := Seed(ctx, repos, now); err != nil {
		t.Fatalf("first Seed failed: %v", err)
	}
	if err := Seed(ctx, repos, now); err != nil {
		t.Fatalf("second Seed failed: %v", err)
	}

	if n, _ := repos.Employees.Count(ctx); n != 5 {
		t.Errorf("expected 5 employees after reseeding, got %d", n)
	}
	projects, _ := repos.Projects.List(ctx)
	if len(projects) != 1 || projects[0].ID != "mine" {
		t.Errorf("non-empty collection should be left alone, got %+v", projects)
	}
}

func TestInventoryStatusesAreDerived(t *testing.T) {
	want := map[string]models.StockStatus{
		"inv1": models.StockLowStock,
		"inv2": models.StockLowStock,
		"inv3": models.StockInStock,
		"inv4": models.StockInStock,
		"inv5": models.StockOutOfStock,
	}
	for _, item := range Inventory(time.Now()) {
		if item.Status != want[item.ID] {
			t.Errorf("%s: status %q, want %q", item.ID, item.Status, want[item.ID])
		}
	}
}

func TestFinanceRecordsCoverRecentMonths(t *testing.T) {
	now := time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for _, rec := range FinanceRecords(now) {
		seen[rec.Date.Format("2006-01")] = true
	}
	for _, month := range []string{"2025-01", "2024-12", "2024-11"} {
		if !seen[month] {
			t.Errorf("expected records in %s", month)
		}
	}
}
