package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// PurchaseOrderLineRequest línea de orden de compra entrante.
type PurchaseOrderLineRequest struct {
	ItemID     string          `json:"item_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PurchaseOrderRequest body para crear o actualizar una orden de compra.
type PurchaseOrderRequest struct {
	OrderNumber  string                     `json:"order_number"`
	SupplierID   string                     `json:"supplier_id"`
	OrderDate    time.Time                  `json:"order_date,omitempty"`
	ExpectedDate *time.Time                 `json:"expected_date,omitempty"`
	TotalAmount  decimal.Decimal            `json:"total_amount"`
	Status       string                     `json:"status,omitempty"` // pending | approved | received | cancelled
	Notes        string                     `json:"notes,omitempty"`
	Lines        []PurchaseOrderLineRequest `json:"lines"`
}

// PurchaseOrderLineDTO línea de orden en respuestas.
type PurchaseOrderLineDTO struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"item_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PurchaseOrderDTO respuesta de orden de compra.
type PurchaseOrderDTO struct {
	ID           string                 `json:"id"`
	OrderNumber  string                 `json:"order_number"`
	SupplierID   string                 `json:"supplier_id"`
	OrderDate    time.Time              `json:"order_date"`
	ExpectedDate *time.Time             `json:"expected_date,omitempty"`
	TotalAmount  decimal.Decimal        `json:"total_amount"`
	Status       string                 `json:"status"`
	Notes        string                 `json:"notes,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
	Lines        []PurchaseOrderLineDTO `json:"lines"`
}

// FromPurchaseOrder mapea la entidad a su DTO.
func FromPurchaseOrder(po *entity.PurchaseOrder) PurchaseOrderDTO {
	lines := make([]PurchaseOrderLineDTO, 0, len(po.Lines))
	for _, l := range po.Lines {
		lines = append(lines, PurchaseOrderLineDTO{
			ID:         l.ID,
			ItemID:     l.ItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return PurchaseOrderDTO{
		ID:           po.ID,
		OrderNumber:  po.OrderNumber,
		SupplierID:   po.SupplierID,
		OrderDate:    po.OrderDate,
		ExpectedDate: po.ExpectedDate,
		TotalAmount:  po.TotalAmount,
		Status:       po.Status,
		Notes:        po.Notes,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
		Lines:        lines,
	}
}

// FromPurchaseOrders mapea una lista de órdenes.
func FromPurchaseOrders(pos []*entity.PurchaseOrder) []PurchaseOrderDTO {
	out := make([]PurchaseOrderDTO, 0, len(pos))
	for _, po := range pos {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}
