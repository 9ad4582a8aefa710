package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"
)

var ErrInventoryItemNotFound = errors.New("inventory item not found")

type CreateInventoryItemRequest struct {
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Quantity      *utils.FlexInt   `json:"quantity"`
	MinStockLevel *utils.FlexInt   `json:"minStockLevel"`
	UnitPrice     *utils.FlexFloat `json:"unitPrice"`
	Supplier      string           `json:"supplier"`
}

type UpdateInventoryItemRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	Quantity      *utils.FlexInt   `json:"quantity"`
	MinStockLevel *utils.FlexInt   `json:"minStockLevel"`
	ReorderPoint  *utils.FlexFloat `json:"reorderPoint"`
	MaxStock      *utils.FlexInt   `json:"maxStock"`
	UnitPrice     *utils.FlexFloat `json:"unitPrice"`
	Supplier      *string          `json:"supplier"`
}

type InventoryService interface {
	ListItems(ctx context.Context) ([]models.InventoryItem, error)
	GetItem(ctx context.Context, id string) (models.InventoryItem, error)
	CreateItem(ctx context.Context, req CreateInventoryItemRequest) (models.InventoryItem, error)
	UpdateItem(ctx context.Context, id string, req UpdateInventoryItemRequest) (models.InventoryItem, error)
	DeleteItem(ctx context.Context, id string) (models.InventoryItem, error)
	// LowStockItems lists items at or below their minimum level, out-of-stock ones included.
	LowStockItems(ctx context.Context) ([]models.InventoryItem, error)
}

type inventoryService struct {
	items repositories.Collection[models.InventoryItem]
	now   func() time.Time
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(items repositories.Collection[models.InventoryItem]) InventoryService {
	return &inventoryService{items: items, now: time.Now}
}

func (s *inventoryService) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	list, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return list, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (models.InventoryItem, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return models.InventoryItem{}, notFoundOr(err, ErrInventoryItemNotFound, "get inventory item")
	}
	return item, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, req CreateInventoryItemRequest) (models.InventoryItem, error) {
	item := models.InventoryItem{
		ID:        newID("inv"),
		Name:      req.Name,
		Category:  req.Category,
		Supplier:  req.Supplier,
		UpdatedAt: s.now(),
	}
	if req.Quantity != nil {
		item.Quantity = req.Quantity.Int()
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = req.MinStockLevel.Int()
	}
	if req.UnitPrice != nil {
		item.UnitPrice = req.UnitPrice.Float64()
	}
	item.ReorderPoint = float64(item.MinStockLevel) * 1.5
	item.MaxStock = item.Quantity * 2
	item.RefreshStatus()

	created, err := s.items.Create(ctx, item)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("failed to create inventory item: %w", err)
	}
	utils.LogInfo("Inventory item created", map[string]interface{}{"item_id": created.ID, "status": created.Status})
	return created, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req UpdateInventoryItemRequest) (models.InventoryItem, error) {
	updated, err := s.items.Modify(ctx, id, func(item *models.InventoryItem) error {
		applyString(&item.Name, req.Name)
		applyString(&item.Category, req.Category)
		applyString(&item.Supplier, req.Supplier)
		if req.Quantity != nil {
			item.Quantity = req.Quantity.Int()
		}
		if req.MinStockLevel != nil {
			item.MinStockLevel = req.MinStockLevel.Int()
		}
		if req.ReorderPoint != nil {
			item.ReorderPoint = req.ReorderPoint.Float64()
		}
		if req.MaxStock != nil {
			item.MaxStock = req.MaxStock.Int()
		}
		if req.UnitPrice != nil {
			item.UnitPrice = req.UnitPrice.Float64()
		}
		item.UpdatedAt = s.now()
		item.RefreshStatus()
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, notFoundOr(err, ErrInventoryItemNotFound, "update inventory item")
	}
	return updated, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) (models.InventoryItem, error) {
	removed, err := s.items.Delete(ctx, id)
	if err != nil {
		return models.InventoryItem{}, notFoundOr(err, ErrInventoryItemNotFound, "delete inventory item")
	}
	utils.LogInfo("Inventory item deleted", map[string]interface{}{"item_id": id})
	return removed, nil
}

func (s *inventoryService) LowStockItems(ctx context.Context) ([]models.InventoryItem, error) {
	list, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	low := []models.InventoryItem{}
	for _, item := range list {
		if item.NeedsRestock() {
			low = append(low, item)
		}
	}
	return low, nil
}
