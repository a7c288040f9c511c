package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRequest body para crear o actualizar un artículo.
// El stock actual no viaja aquí: solo cambia vía movimientos.
type ItemRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	UnitID      string          `json:"unit_id,omitempty"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	MinStock    int64           `json:"min_stock"`
	MaxStock    int64           `json:"max_stock"`
	Location    string          `json:"location,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// ItemDTO respuesta de artículo.
type ItemDTO struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	UnitID       string          `json:"unit_id,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	CurrentStock int64           `json:"current_stock"`
	MinStock     int64           `json:"min_stock"`
	MaxStock     int64           `json:"max_stock"`
	StockStatus  string          `json:"stock_status"` // low | normal | overstock
	Location     string          `json:"location,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// FromItem mapea la entidad a su DTO.
func FromItem(i *entity.Item) ItemDTO {
	return ItemDTO{
		ID:           i.ID,
		Code:         i.Code,
		Name:         i.Name,
		Description:  i.Description,
		CategoryID:   i.CategoryID,
		UnitID:       i.UnitID,
		SupplierID:   i.SupplierID,
		Price:        i.Price,
		Cost:         i.Cost,
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		MaxStock:     i.MaxStock,
		StockStatus:  i.StockStatus(),
		Location:     i.Location,
		Status:       i.Status,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// FromItems mapea una lista de entidades.
func FromItems(items []*entity.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}
