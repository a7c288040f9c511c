package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryRepository CRUD de categorías.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(c *entity.Category) error
	Delete(id string) error
}

// SupplierRepository CRUD de proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(s *entity.Supplier) error
	Delete(id string) error
}

// UnitRepository CRUD de unidades de medida.
type UnitRepository interface {
	Create(u *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
	Update(u *entity.Unit) error
	Delete(id string) error
}
