package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MonthlyUsage uso agregado de un artículo en un mes calendario (solo salidas).
type MonthlyUsage struct {
	Month         string // YYYY-MM
	TotalUsage    int64
	AvgDailyUsage float64
}

// StockMovementRepository puerto de persistencia del log de movimientos.
// El log es append-only: no existen Update ni Delete.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// MonthlyUsageByItem agrupa las salidas del artículo por mes calendario
	// dentro de la ventana (meses hacia atrás desde hoy).
	MonthlyUsageByItem(itemID string, months int) ([]MonthlyUsage, error)
}
