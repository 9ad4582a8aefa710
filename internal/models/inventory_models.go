package models

import "time"

// StockStatus is derived from quantity against minStockLevel; clients never set it.
type StockStatus string

const (
	StockInStock    StockStatus = "In Stock"
	StockLowStock   StockStatus = "Low Stock"
	StockOutOfStock StockStatus = "Out of Stock"
)

// DeriveStockStatus returns Out of Stock at zero (or below), Low Stock up to
// and including minStockLevel, In Stock otherwise.
func DeriveStockStatus(quantity, minStockLevel int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= minStockLevel:
		return StockLowStock
	default:
		return StockInStock
	}
}

// InventoryItem represents a stocked article.
type InventoryItem struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Quantity      int         `json:"quantity"`
	MinStockLevel int         `json:"minStockLevel"`
	ReorderPoint  float64     `json:"reorderPoint"`
	MaxStock      int         `json:"maxStock"`
	UnitPrice     float64     `json:"unitPrice"`
	Supplier      string      `json:"supplier"`
	Status        StockStatus `json:"status"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// RecordID implements repositories.Record.
func (i InventoryItem) RecordID() string { return i.ID }

// NeedsRestock matches the low-stock alert filter (out-of-stock items included).
func (i InventoryItem) NeedsRestock() bool { return i.Quantity <= i.MinStockLevel }

// RefreshStatus recomputes Status from the current quantities.
func (i *InventoryItem) RefreshStatus() {
	i.Status = DeriveStockStatus(i.Quantity, i.MinStockLevel)
}
