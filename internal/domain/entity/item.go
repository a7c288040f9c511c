package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario.
// CurrentStock es un contador derivado del log de movimientos; solo el ledger lo muta.
// MinStock/MaxStock son umbrales de alerta: el sobrestock se señala, nunca se bloquea.
type Item struct {
	ID           string
	Code         string // código único
	Name         string
	Description  string
	CategoryID   string
	UnitID       string
	SupplierID   string
	Price        decimal.Decimal // precio de venta
	Cost         decimal.Decimal // costo unitario
	CurrentStock int64
	MinStock     int64
	MaxStock     int64
	Location     string
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StockStatus clasifica el nivel de stock contra los umbrales min/max.
func (i *Item) StockStatus() string {
	switch {
	case i.CurrentStock <= i.MinStock:
		return "low"
	case i.MaxStock > 0 && i.CurrentStock > i.MaxStock:
		return "overstock"
	default:
		return "normal"
	}
}
