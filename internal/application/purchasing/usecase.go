// Package purchasing gestiona órdenes de compra. Solo las órdenes pending se
// pueden editar o borrar; el total lo calcula el caller (suma de líneas).
package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase casos de uso de órdenes de compra.
type UseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.PurchaseOrderRepository) *UseCase {
	return &UseCase{repo: repo}
}

// LineInput línea de orden de compra entrante.
type LineInput struct {
	ItemID     string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// CreateInput entrada para crear una orden de compra.
type CreateInput struct {
	OrderNumber  string
	SupplierID   string
	OrderDate    time.Time
	ExpectedDate *time.Time
	TotalAmount  decimal.Decimal
	Status       string
	Notes        string
	Lines        []LineInput
}

// Create crea la orden con sus líneas.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.PurchaseOrder, error) {
	if in.OrderNumber == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = entity.OrderStatusPending
	}
	if !validStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	if in.OrderDate.IsZero() {
		in.OrderDate = time.Now()
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:           uuid.New().String(),
		OrderNumber:  in.OrderNumber,
		SupplierID:   in.SupplierID,
		OrderDate:    in.OrderDate,
		ExpectedDate: in.ExpectedDate,
		TotalAmount:  in.TotalAmount,
		Status:       in.Status,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(po); err != nil {
		return nil, err
	}
	for _, l := range in.Lines {
		line := &entity.PurchaseOrderLine{
			ID:              uuid.New().String(),
			PurchaseOrderID: po.ID,
			ItemID:          l.ItemID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TotalPrice:      l.TotalPrice,
		}
		if err := uc.repo.CreateLine(line); err != nil {
			return nil, err
		}
		po.Lines = append(po.Lines, *line)
	}
	return po, nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return uc.repo.GetByID(id)
}

// List lista órdenes paginadas.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.repo.List(limit, offset)
}

// Update reescribe cabecera y líneas. Solo órdenes pending.
func (uc *UseCase) Update(ctx context.Context, id string, in CreateInput) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if !existing.Editable() {
		return domain.ErrConflict
	}
	if in.Status != "" && !validStatus(in.Status) {
		return domain.ErrInvalidInput
	}

	existing.OrderNumber = in.OrderNumber
	existing.SupplierID = in.SupplierID
	existing.OrderDate = in.OrderDate
	existing.ExpectedDate = in.ExpectedDate
	existing.TotalAmount = in.TotalAmount
	if in.Status != "" {
		existing.Status = in.Status
	}
	existing.Notes = in.Notes
	existing.UpdatedAt = time.Now()

	if err := uc.repo.Update(existing); err != nil {
		return err
	}
	if err := uc.repo.DeleteLinesByOrder(id); err != nil {
		return err
	}
	for _, l := range in.Lines {
		line := &entity.PurchaseOrderLine{
			ID:              uuid.New().String(),
			PurchaseOrderID: id,
			ItemID:          l.ItemID,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TotalPrice:      l.TotalPrice,
		}
		if err := uc.repo.CreateLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Delete borra una orden. Solo órdenes pending.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if !existing.Editable() {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func validStatus(s string) bool {
	switch s {
	case entity.OrderStatusPending, entity.OrderStatusApproved,
		entity.OrderStatusReceived, entity.OrderStatusCancelled:
		return true
	}
	return false
}
