package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. Solo las órdenes pending se pueden editar o borrar.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusReceived  = "received"
	OrderStatusCancelled = "cancelled"
)

// PurchaseOrder solicitud de compra pendiente de recepción.
// TotalAmount lo calcula el caller (suma de líneas); el servidor no lo recalcula.
type PurchaseOrder struct {
	ID           string
	OrderNumber  string
	SupplierID   string
	OrderDate    time.Time
	ExpectedDate *time.Time
	TotalAmount  decimal.Decimal
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Lines []PurchaseOrderLine
}

// PurchaseOrderLine línea de una orden de compra.
type PurchaseOrderLine struct {
	ID              string
	PurchaseOrderID string
	ItemID          string
	Quantity        int64
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
}

// Editable indica si la orden admite cambios o borrado.
func (po *PurchaseOrder) Editable() bool {
	return po.Status == OrderStatusPending
}
