package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/stock-movements.
// Quantity se interpreta según el tipo: "in" suma, "out" resta y
// "adjustment" aplica el signo tal cual venga.
type RegisterMovementRequest struct {
	ItemID        string `json:"item_id"`
	MovementType  string `json:"movement_type"` // in | out | adjustment
	Quantity      int64  `json:"quantity"`
	ReferenceType string `json:"reference_type,omitempty"` // purchase | sale | adjustment | transfer
	ReferenceID   string `json:"reference_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// MovementDTO respuesta de un movimiento de stock.
type MovementDTO struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"item_id"`
	MovementType  string    `json:"movement_type"`
	Quantity      int64     `json:"quantity"` // con signo: entradas > 0, salidas < 0
	ReferenceType string    `json:"reference_type,omitempty"`
	ReferenceID   string    `json:"reference_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// InsufficientStockDetail detalle del 409 por stock insuficiente.
type InsufficientStockDetail struct {
	ItemID       string `json:"item_id"`
	CurrentStock int64  `json:"current_stock"`
	Requested    int64  `json:"requested"`
}

// FromMovement mapea la entidad a su DTO.
func FromMovement(m *entity.StockMovement) MovementDTO {
	return MovementDTO{
		ID:            m.ID,
		ItemID:        m.ItemID,
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// FromMovements mapea una lista de movimientos.
func FromMovements(ms []*entity.StockMovement) []MovementDTO {
	out := make([]MovementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMovement(m))
	}
	return out
}
