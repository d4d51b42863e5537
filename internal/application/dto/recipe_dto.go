package dto

import "github.com/shopspring/decimal"

// SaveRecipeRequest entrada para crear o reemplazar una receta.
type SaveRecipeRequest struct {
	ID         string              `json:"id"`
	Name       string              `json:"name" validate:"max=200"`
	MenuItemID string              `json:"menu_item_id" validate:"required"`
	PortionID  string              `json:"portion_id" validate:"required"`
	FixedCost  decimal.Decimal     `json:"fixed_cost"`
	Items      []RecipeItemRequest `json:"items"`
}

// RecipeItemRequest línea de receta: insumo y cantidad en unidad base.
type RecipeItemRequest struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	PortionID   string               `json:"portion_id"`
	PortionName string               `json:"portion_name"`
	MenuItemID  string               `json:"menu_item_id"`
	FixedCost   decimal.Decimal      `json:"fixed_cost"`
	Items       []RecipeItemResponse `json:"items"`
}

// RecipeItemResponse línea de receta en la salida.
type RecipeItemResponse struct {
	ID                string          `json:"id"`
	InventoryItemID   string          `json:"inventory_item_id"`
	InventoryItemName string          `json:"inventory_item_name"`
	Quantity          decimal.Decimal `json:"quantity"`
}
