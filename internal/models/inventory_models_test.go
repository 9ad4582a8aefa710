package models

import (
	"testing"
	"time"
)

func TestDeriveStockStatus(t *testing.T) {
	for quantity := 0; quantity <= 40; quantity++ {
		for _, min := range []int{0, 1, 10, 20} {
			got := DeriveStockStatus(quantity, min)
			var want StockStatus
			switch {
			case quantity == 0:
				want = StockOutOfStock
			case quantity <= min:
				want = StockLowStock
			default:
				want = StockInStock
			}
			if got != want {
				t.Fatalf("DeriveStockStatus(%d, %d) = %q, want %q", quantity, min, got, want)
			}
		}
	}
}

func TestRefreshStatusAndNeedsRestock(t *testing.T) {
	item := InventoryItem{Quantity: 5, MinStockLevel: 5}
	item.RefreshStatus()
	if item.Status != StockLowStock || !item.NeedsRestock() {
		t.Fatalf("unexpected item state: %+v", item)
	}
	item.Quantity = 6
	item.RefreshStatus()
	if item.Status != StockInStock || item.NeedsRestock() {
		t.Fatalf("unexpected item state: %+v", item)
	}
}

func TestProjectIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	p := Project{Status: ProjectInProgress, PlannedEndDate: &past}
	if !p.IsOverdue(now) {
		t.Fatal("in-progress project past its end date should be overdue")
	}
	p.Status = ProjectCompleted
	if p.IsOverdue(now) {
		t.Fatal("completed project is never overdue")
	}
	if !ProjectOnHold.Valid() || ProjectStatus("done").Valid() {
		t.Fatal("status validation mismatch")
	}
}
