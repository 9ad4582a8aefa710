package handlers

import (
	"errors"
	"net/http"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.inventoryService.ListItems(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetItems: Error from inventoryService.ListItems")
		respondInternal(c, "Failed to fetch inventory")
		return
	}
	utils.RespondWithData(c, http.StatusOK, items, gin.H{"count": len(items)})
}

func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id := c.Param("id")
	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			respondNotFound(c, "Inventory item not found", err)
			return
		}
		utils.LogError(err, "GetItemByID: Error from inventoryService.GetItem for ID "+id)
		respondInternal(c, "Failed to fetch inventory item")
		return
	}
	utils.RespondWithData(c, http.StatusOK, item)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if !bindJSON(c, &req, "CreateItem") {
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateItem: Error from inventoryService.CreateItem")
		respondInternal(c, "Failed to add inventory item")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, item, gin.H{"message": "Inventory item added successfully"})
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")
	var req services.UpdateInventoryItemRequest
	if !bindJSON(c, &req, "UpdateItem") {
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			respondNotFound(c, "Inventory item not found", err)
			return
		}
		utils.LogError(err, "UpdateItem: Error from inventoryService.UpdateItem for ID "+id)
		respondInternal(c, "Failed to update inventory item")
		return
	}
	utils.RespondWithData(c, http.StatusOK, item, gin.H{"message": "Inventory item updated successfully"})
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	item, err := h.inventoryService.DeleteItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrInventoryItemNotFound) {
			respondNotFound(c, "Inventory item not found", err)
			return
		}
		utils.LogError(err, "DeleteItem: Error from inventoryService.DeleteItem for ID "+id)
		respondInternal(c, "Failed to delete inventory item")
		return
	}
	utils.RespondWithData(c, http.StatusOK, item, gin.H{"message": "Inventory item deleted successfully"})
}

// GetLowStockItems handles GET /api/inventory/alerts/low-stock.
func (h *InventoryHandler) GetLowStockItems(c *gin.Context) {
	items, err := h.inventoryService.LowStockItems(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetLowStockItems: Error from inventoryService.LowStockItems")
		respondInternal(c, "Failed to fetch low stock alerts")
		return
	}
	utils.RespondWithData(c, http.StatusOK, items, gin.H{"count": len(items)})
}
