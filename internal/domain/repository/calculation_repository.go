package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// EOQCalculationRepository snapshots de cálculos EOQ (crear, listar, borrar; nunca actualizar).
type EOQCalculationRepository interface {
	Create(c *entity.EOQCalculation) error
	GetByID(id string) (*entity.EOQCalculation, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.EOQCalculation, error)
	Delete(id string) error
}

// JITCalculationRepository snapshots de cálculos JIT.
type JITCalculationRepository interface {
	Create(c *entity.JITCalculation) error
	GetByID(id string) (*entity.JITCalculation, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.JITCalculation, error)
	Delete(id string) error
}
