package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste (cantidad con signo)
)

// Tipos de referencia: el evento de negocio que originó el movimiento.
const (
	ReferenceTypePurchase   = "purchase"
	ReferenceTypeSale       = "sale"
	ReferenceTypeAdjustment = "adjustment"
	ReferenceTypeTransfer   = "transfer"
)

// StockMovement registro inmutable de un cambio de stock (append-only, fuente de verdad).
// Quantity lleva signo: positivo entrada, negativo salida; en ajustes cualquier signo.
type StockMovement struct {
	ID            string
	ItemID        string
	MovementType  string // in, out, adjustment
	Quantity      int64  // con signo
	ReferenceType string // purchase, sale, adjustment, transfer
	ReferenceID   string // id de orden de compra o recepción, si aplica
	Notes         string
	CreatedBy     string // UserID (opaco para el ledger)
	CreatedAt     time.Time
}
