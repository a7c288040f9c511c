package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MonthlyPurchaseStat total comprado en un mes calendario.
type MonthlyPurchaseStat struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
	Orders int64
}

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	CreateLine(line *entity.PurchaseOrderLine) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(limit, offset int) ([]*entity.PurchaseOrder, error)
	Update(po *entity.PurchaseOrder) error
	DeleteLinesByOrder(orderID string) error
	Delete(id string) error
	CountByStatus(status string) (int64, error)
}
