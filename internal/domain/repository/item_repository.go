package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemRepository puerto de persistencia para artículos.
//
// UpdateStock es el único camino de escritura sobre current_stock y solo el
// ledger lo invoca (dentro de su transacción, tras GetForUpdate). Update nunca
// toca el stock.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	// GetForUpdate obtiene el artículo bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateStock(itemID string, newStock int64) error
	List(limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}
