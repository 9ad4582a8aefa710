package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"ai_manager_backend/internal/database"
	"ai_manager_backend/internal/models"
)

func exerciseCollection(t *testing.T, items Collection[models.InventoryItem]) {
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		if _, err := items.Create(ctx, models.InventoryItem{ID: id, Name: "item " + id, Quantity: 10, MinStockLevel: 5}); err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
	}

	t.Run("Create rejects duplicate id", func(t *testing.T) {
		_, err := items.Create(ctx, models.InventoryItem{ID: "2"})
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
	})

	t.Run("Modify persists change", func(t *testing.T) {
		updated, err := items.Modify(ctx, "2", func(it *models.InventoryItem) error {
			it.Quantity = 3
			return nil
		})
		if err != nil {
			t.Fatalf("Modify failed: %v", err)
		}
		if updated.Quantity != 3 {
			t.Errorf("expected returned quantity 3, got %d", updated.Quantity)
		}
		got, err := items.Get(ctx, "2")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Quantity != 3 {
			t.Errorf("expected stored quantity 3, got %d", got.Quantity)
		}
	})

	t.Run("Modify error leaves record untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := items.Modify(ctx, "1", func(it *models.InventoryItem) error {
			it.Quantity = 99
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected callback error, got %v", err)
		}
		got, _ := items.Get(ctx, "1")
		if got.Quantity != 10 {
			t.Errorf("expected quantity 10, got %d", got.Quantity)
		}
	})

	t.Run("missing id is not found and changes nothing", func(t *testing.T) {
		if _, err := items.Get(ctx, "9"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get: expected ErrNotFound, got %v", err)
		}
		if _, err := items.Modify(ctx, "9", func(*models.InventoryItem) error { return nil }); !errors.Is(err, ErrNotFound) {
			t.Errorf("Modify: expected ErrNotFound, got %v", err)
		}
		if _, err := items.Delete(ctx, "9"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Delete: expected ErrNotFound, got %v", err)
		}
		if n, _ := items.Count(ctx); n != 3 {
			t.Errorf("expected 3 records, got %d", n)
		}
	})

	t.Run("Delete keeps order of the rest", func(t *testing.T) {
		removed, err := items.Delete(ctx, "2")
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed.ID != "2" || removed.Name != "item 2" {
			t.Errorf("unexpected removed record: %+v", removed)
		}
		list, err := items.List(ctx)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(list) != 2 || list[0].ID != "1" || list[1].ID != "3" {
			t.Errorf("expected [1 3], got %+v", list)
		}
	})

	t.Run("Create after delete appends", func(t *testing.T) {
		if _, err := items.Create(ctx, models.InventoryItem{ID: "4"}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		list, _ := items.List(ctx)
		if len(list) != 3 || list[2].ID != "4" {
			t.Errorf("expected new record last, got %+v", list)
		}
	})
}

func TestMemoryCollection(t *testing.T) {
	exerciseCollection(t, NewMemoryCollection[models.InventoryItem]())
}

func TestSQLCollection(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), "sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	exerciseCollection(t, NewSQLCollection[models.InventoryItem](db, DialectSQLite, KindInventory))

	// Kinds share the table but not their records.
	other := NewSQLCollection[models.InventoryItem](db, DialectSQLite, "other")
	if n, _ := other.Count(context.Background()); n != 0 {
		t.Errorf("expected empty collection for another kind, got %d", n)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	items := NewMemoryCollection[models.InventoryItem]()
	items.Create(ctx, models.InventoryItem{ID: "1", Quantity: 1})

	list, _ := items.List(ctx)
	list[0].Quantity = 50

	got, _ := items.Get(ctx, "1")
	if got.Quantity != 1 {
		t.Errorf("List result aliased storage: quantity %d", got.Quantity)
	}
}

func TestRebind(t *testing.T) {
	query := `UPDATE records SET payload = $1 WHERE kind = $2 AND id = $3`
	if got := DialectPostgres.rebind(query); got != query {
		t.Errorf("postgres rebind changed query: %s", got)
	}
	want := `UPDATE records SET payload = ?1 WHERE kind = ?2 AND id = ?3`
	if got := DialectSQLite.rebind(query); got != want {
		t.Errorf("sqlite rebind = %s, want %s", got, want)
	}
}

func TestDialectFromDriver(t *testing.T) {
	if d, err := DialectFromDriver("sqlite"); err != nil || d != DialectSQLite {
		t.Errorf("sqlite: got %v, %v", d, err)
	}
	if d, err := DialectFromDriver("postgres"); err != nil || d != DialectPostgres {
		t.Errorf("postgres: got %v, %v", d, err)
	}
	if _, err := DialectFromDriver("mysql"); err == nil {
		t.Error("expected error for unsupported driver")
	}
}
