package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rightchoice/medicare-api/internal/domain/entity"
)

type CreateCategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parent_category_id"`
}

type CategoryResponse struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parent_category_id"`
	IsActive         bool   `json:"is_active"`
}

func ToCategoryResponse(c *entity.ItemCategory) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		CompanyID:        c.CompanyID,
		Name:             c.Name,
		Description:      c.Description,
		ParentCategoryID: c.ParentCategoryID,
		IsActive:         c.IsActive,
	}
}

type CreateItemRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SKU            string          `json:"sku"`
	HSNCode        string          `json:"hsn_code"`
	CategoryID     string          `json:"category_id"`
	Unit           string          `json:"unit"`
	GSTRate        decimal.Decimal `json:"gst_rate"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	MinStockLevel  decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel  decimal.Decimal `json:"max_stock_level"`
	IsBatchTracked bool            `json:"is_batch_tracked"`
}

type UpdateItemRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	HSNCode       string          `json:"hsn_code"`
	CategoryID    string          `json:"category_id"`
	Unit          string          `json:"unit"`
	GSTRate       decimal.Decimal `json:"gst_rate"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel decimal.Decimal `json:"max_stock_level"`
	IsActive      *bool           `json:"is_active"`
}

type ItemResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	SKU            string          `json:"sku"`
	HSNCode        string          `json:"hsn_code"`
	CategoryID     string          `json:"category_id"`
	Unit           string          `json:"unit"`
	GSTRate        decimal.Decimal `json:"gst_rate"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"selling_price"`
	MinStockLevel  decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel  decimal.Decimal `json:"max_stock_level"`
	IsBatchTracked bool            `json:"is_batch_tracked"`
	IsActive       bool            `json:"is_active"`
}

func ToItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:             i.ID,
		CompanyID:      i.CompanyID,
		Name:           i.Name,
		Description:    i.Description,
		SKU:            i.SKU,
		HSNCode:        i.HSNCode,
		CategoryID:     i.CategoryID,
		Unit:           i.Unit,
		GSTRate:        i.GSTRate,
		PurchasePrice:  i.PurchasePrice,
		SellingPrice:   i.SellingPrice,
		MinStockLevel:  i.MinStockLevel,
		MaxStockLevel:  i.MaxStockLevel,
		IsBatchTracked: i.IsBatchTracked,
		IsActive:       i.IsActive,
	}
}
