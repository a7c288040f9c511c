package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ReceiptLineRequest línea de recepción entrante.
type ReceiptLineRequest struct {
	ItemID           string          `json:"item_id"`
	QuantityOrdered  int64           `json:"quantity_ordered"`
	QuantityReceived int64           `json:"quantity_received"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

// ReceiptRequest body para crear o actualizar una recepción.
// ReceiptNumber vacío al crear => consecutivo RCPT-YYYYMMDD-NNN generado.
type ReceiptRequest struct {
	ReceiptNumber   string               `json:"receipt_number,omitempty"`
	PurchaseOrderID string               `json:"purchase_order_id,omitempty"`
	ReceiptDate     time.Time            `json:"receipt_date,omitempty"`
	TotalAmount     decimal.Decimal      `json:"total_amount"`
	Status          string               `json:"status,omitempty"` // pending | completed
	Notes           string               `json:"notes,omitempty"`
	Lines           []ReceiptLineRequest `json:"lines"`
}

// ReceiptLineDTO línea de recepción en respuestas.
type ReceiptLineDTO struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"item_id"`
	QuantityOrdered  int64           `json:"quantity_ordered"`
	QuantityReceived int64           `json:"quantity_received"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}

// ReceiptDTO respuesta de recepción.
type ReceiptDTO struct {
	ID              string           `json:"id"`
	ReceiptNumber   string           `json:"receipt_number"`
	PurchaseOrderID string           `json:"purchase_order_id,omitempty"`
	ReceiptDate     time.Time        `json:"receipt_date"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	Status          string           `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	Lines           []ReceiptLineDTO `json:"lines"`
}

// FromReceipt mapea la entidad a su DTO.
func FromReceipt(r *entity.Receipt) ReceiptDTO {
	lines := make([]ReceiptLineDTO, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, ReceiptLineDTO{
			ID:               l.ID,
			ItemID:           l.ItemID,
			QuantityOrdered:  l.QuantityOrdered,
			QuantityReceived: l.QuantityReceived,
			UnitPrice:        l.UnitPrice,
			TotalPrice:       l.TotalPrice,
		})
	}
	return ReceiptDTO{
		ID:              r.ID,
		ReceiptNumber:   r.ReceiptNumber,
		PurchaseOrderID: r.PurchaseOrderID,
		ReceiptDate:     r.ReceiptDate,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		Notes:           r.Notes,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		Lines:           lines,
	}
}

// FromReceipts mapea una lista de recepciones.
func FromReceipts(rs []*entity.Receipt) []ReceiptDTO {
	out := make([]ReceiptDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReceipt(r))
	}
	return out
}
