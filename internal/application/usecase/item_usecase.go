// Package usecase contiene los casos de uso de datos maestros, artículos y reportes.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase casos de uso de artículos. El stock actual nunca se toca aquí:
// toda mutación de stock pasa por el ledger de movimientos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// ItemInput campos editables de un artículo.
type ItemInput struct {
	Code        string
	Name        string
	Description string
	CategoryID  string
	UnitID      string
	SupplierID  string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	MinStock    int64
	MaxStock    int64
	Location    string
	Status      string
}

// Create crea un artículo con stock inicial cero. El código debe ser único.
func (uc *ItemUseCase) Create(ctx context.Context, in ItemInput) (*entity.Item, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || in.MaxStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	if in.Status == "" {
		in.Status = "active"
	}
	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		UnitID:       in.UnitID,
		SupplierID:   in.SupplierID,
		Price:        in.Price,
		Cost:         in.Cost,
		CurrentStock: 0,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		Location:     in.Location,
		Status:       in.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID obtiene un artículo.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// List lista artículos paginados.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza los campos editables. CurrentStock se conserva intacto.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in ItemInput) (*entity.Item, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || in.MaxStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Code != item.Code {
		other, err := uc.repo.GetByCode(in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}

	item.Code = in.Code
	item.Name = in.Name
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.UnitID = in.UnitID
	item.SupplierID = in.SupplierID
	item.Price = in.Price
	item.Cost = in.Cost
	item.MinStock = in.MinStock
	item.MaxStock = in.MaxStock
	item.Location = in.Location
	if in.Status != "" {
		item.Status = in.Status
	}
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete borra un artículo.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrItemNotFound
	}
	return uc.repo.Delete(id)
}
