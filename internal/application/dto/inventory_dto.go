package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest input to create an inventory item.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinStock     decimal.Decimal `json:"minStock"`
	MaxStock     decimal.Decimal `json:"maxStock"`
	Unit         string          `json:"unit" validate:"required"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
	SupplierID   *string         `json:"supplierId"`
	ExpiryDate   *time.Time      `json:"expiryDate"`
	BatchNumber  string          `json:"batchNumber"`
	Location     string          `json:"location"`
}

// UpdateInventoryItemRequest partial edit of descriptive fields. Stock moves
// only through the adjust and stock-in operations.
type UpdateInventoryItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category    *string          `json:"category"`
	MinStock    *decimal.Decimal `json:"minStock"`
	MaxStock    *decimal.Decimal `json:"maxStock"`
	Unit        *string          `json:"unit"`
	CostPerUnit *decimal.Decimal `json:"costPerUnit"`
	SupplierID  *string          `json:"supplierId"`
	ExpiryDate  *time.Time       `json:"expiryDate"`
	BatchNumber *string          `json:"batchNumber"`
	Location    *string          `json:"location"`
}

// AdjustStockRequest applies a stock movement.
type AdjustStockRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	Operation string          `json:"operation" validate:"required,oneof=add subtract"`
}

// InventoryItemResponse inventory item output.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shopId"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CurrentStock  decimal.Decimal `json:"currentStock"`
	MinStock      decimal.Decimal `json:"minStock"`
	MaxStock      decimal.Decimal `json:"maxStock"`
	Unit          string          `json:"unit"`
	CostPerUnit   decimal.Decimal `json:"costPerUnit"`
	SupplierID    *string         `json:"supplierId"`
	ExpiryDate    *time.Time      `json:"expiryDate"`
	BatchNumber   string          `json:"batchNumber,omitempty"`
	Location      string          `json:"location,omitempty"`
	LastRestocked *time.Time      `json:"lastRestocked"`
	IsLowStock    bool            `json:"isLowStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// InventoryListResponse paginated inventory listing.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// CreateStockInRequest input to record a goods receipt.
type CreateStockInRequest struct {
	SupplierID    string          `json:"supplierId" validate:"required"`
	ProductID     string          `json:"productId" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	InvoiceNumber string          `json:"invoiceNumber"`
	PurchaseDate  *time.Time      `json:"purchaseDate"`
	Notes         string          `json:"notes"`
}

// StockInResponse goods-receipt output.
type StockInResponse struct {
	ID            string          `json:"id"`
	ShopID        string          `json:"shopId"`
	SupplierID    string          `json:"supplierId"`
	ProductID     string          `json:"productId"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// StockInListResponse paginated receipt listing.
type StockInListResponse struct {
	Items []StockInResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
