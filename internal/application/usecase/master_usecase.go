package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MasterUseCase casos de uso de datos maestros: categorías, proveedores y unidades.
type MasterUseCase struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	unitRepo     repository.UnitRepository
}

// NewMasterUseCase construye el caso de uso.
func NewMasterUseCase(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	unitRepo repository.UnitRepository,
) *MasterUseCase {
	return &MasterUseCase{categoryRepo: categoryRepo, supplierRepo: supplierRepo, unitRepo: unitRepo}
}

// CreateCategory crea una categoría.
func (uc *MasterUseCase) CreateCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCategories lista todas las categorías.
func (uc *MasterUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List()
}

// UpdateCategory actualiza nombre, descripción y estado.
func (uc *MasterUseCase) UpdateCategory(ctx context.Context, id, name, description, status string) (*entity.Category, error) {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c.Name = name
	c.Description = description
	if status != "" {
		c.Status = status
	}
	c.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory borra una categoría.
func (uc *MasterUseCase) DeleteCategory(ctx context.Context, id string) error {
	c, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categoryRepo.Delete(id)
}

// SupplierInput campos editables de un proveedor.
type SupplierInput struct {
	Name    string
	Contact string
	Phone   string
	Email   string
	Address string
	Status  string
}

// CreateSupplier crea un proveedor.
func (uc *MasterUseCase) CreateSupplier(ctx context.Context, in SupplierInput) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = "active"
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListSuppliers lista todos los proveedores.
func (uc *MasterUseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List()
}

// UpdateSupplier actualiza un proveedor.
func (uc *MasterUseCase) UpdateSupplier(ctx context.Context, id string, in SupplierInput) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s.Name = in.Name
	s.Contact = in.Contact
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
	if in.Status != "" {
		s.Status = in.Status
	}
	s.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteSupplier borra un proveedor.
func (uc *MasterUseCase) DeleteSupplier(ctx context.Context, id string) error {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.supplierRepo.Delete(id)
}

// CreateUnit crea una unidad de medida.
func (uc *MasterUseCase) CreateUnit(ctx context.Context, name, abbreviation string) (*entity.Unit, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	u := &entity.Unit{
		ID:           uuid.New().String(),
		Name:         name,
		Abbreviation: abbreviation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.unitRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListUnits lista todas las unidades.
func (uc *MasterUseCase) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	return uc.unitRepo.List()
}

// UpdateUnit actualiza una unidad.
func (uc *MasterUseCase) UpdateUnit(ctx context.Context, id, name, abbreviation string) (*entity.Unit, error) {
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	u.Name = name
	u.Abbreviation = abbreviation
	u.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUnit borra una unidad.
func (uc *MasterUseCase) DeleteUnit(ctx context.Context, id string) error {
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.unitRepo.Delete(id)
}
