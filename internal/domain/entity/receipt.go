package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una recepción de mercancía.
const (
	ReceiptStatusPending   = "pending"
	ReceiptStatusCompleted = "completed"
)

// Receipt registra mercancía físicamente recibida contra una orden de compra.
// Cada línea con QuantityReceived > 0 genera un movimiento "in" vía ledger al crearla.
type Receipt struct {
	ID              string
	ReceiptNumber   string // RCPT-YYYYMMDD-NNN, autogenerado si el caller no lo envía
	PurchaseOrderID string
	ReceiptDate     time.Time
	TotalAmount     decimal.Decimal
	Status          string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time

	Lines []ReceiptLine
}

// ReceiptLine línea de recepción: cantidad pedida vs cantidad realmente recibida.
type ReceiptLine struct {
	ID               string
	ReceiptID        string
	ItemID           string
	QuantityOrdered  int64
	QuantityReceived int64
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
}
