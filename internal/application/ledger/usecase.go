// Package ledger es el único punto de mutación de current_stock.
//
// Cada cambio de stock pasa por ApplyMovement: dentro de una transacción se
// bloquea la fila del artículo (SELECT FOR UPDATE), se verifica que el stock
// resultante no quede negativo, se inserta el movimiento inmutable y se
// actualiza el contador. Ningún otro código escribe current_stock.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase aplica movimientos de stock de forma transaccional.
// movRepo (sobre el pool) atiende las lecturas del log.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// MovementInput entrada para aplicar un movimiento.
// Quantity se interpreta según el tipo: "in" toma |q|, "out" toma -|q|,
// "adjustment" conserva el signo del caller.
type MovementInput struct {
	ItemID        string
	MovementType  string // in, out, adjustment
	Quantity      int64
	ReferenceType string // purchase, sale, adjustment, transfer (opcional)
	ReferenceID   string
	Notes         string
	UserID        string
}

// ApplyMovement valida la entrada, abre una transacción y aplica el movimiento.
// Devuelve el movimiento creado. Un rechazo (stock insuficiente, artículo
// inexistente) no deja rastro ni en el log ni en el contador.
func (uc *UseCase) ApplyMovement(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	signed, err := signedQuantity(in.MovementType, in.Quantity)
	if err != nil {
		return nil, err
	}
	if in.ReferenceType != "" && !validReferenceType(in.ReferenceType) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		m, err := applyInTx(movRepo, itemRepo, in, signed, time.Now())
		if err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetMovement obtiene un movimiento del log.
func (uc *UseCase) GetMovement(ctx context.Context, id string) (*entity.StockMovement, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// ListMovements lista el log completo paginado (más recientes primero).
func (uc *UseCase) ListMovements(ctx context.Context, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.List(limit, offset)
}

// ListMovementsByItem historial de un artículo, con rango de fechas opcional.
func (uc *UseCase) ListMovementsByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListByItem(itemID, from, to, limit, offset)
}

// ReceiveLine aplica la entrada de una línea de recepción usando los repositorios
// del caller (misma transacción). Solo actúa cuando quantityReceived > 0.
// La usa el caso de uso de recepciones para integrarse con la creación del receipt.
func (uc *UseCase) ReceiveLine(
	movRepo repository.StockMovementRepository,
	itemRepo repository.ItemRepository,
	itemID string,
	quantityReceived int64,
	receiptID, receiptNumber, userID string,
	now time.Time,
) error {
	if quantityReceived <= 0 {
		return nil
	}
	in := MovementInput{
		ItemID:        itemID,
		MovementType:  entity.MovementTypeIn,
		Quantity:      quantityReceived,
		ReferenceType: entity.ReferenceTypePurchase,
		ReferenceID:   receiptID,
		Notes:         "Recepción: " + receiptNumber,
		UserID:        userID,
	}
	_, err := applyInTx(movRepo, itemRepo, in, quantityReceived, now)
	return err
}

// applyInTx ejecuta la secuencia bloquear-verificar-insertar-actualizar con los
// repositorios ya atados a una transacción. signed ya viene con el signo correcto.
func applyInTx(
	movRepo repository.StockMovementRepository,
	itemRepo repository.ItemRepository,
	in MovementInput,
	signed int64,
	now time.Time,
) (*entity.StockMovement, error) {
	item, err := itemRepo.GetForUpdate(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	newStock := item.CurrentStock + signed
	if newStock < 0 {
		return nil, &domain.InsufficientStockError{
			ItemID:       in.ItemID,
			CurrentStock: item.CurrentStock,
			Requested:    -signed,
		}
	}

	mov := &entity.StockMovement{
		ID:            uuid.New().String(),
		ItemID:        in.ItemID,
		MovementType:  in.MovementType,
		Quantity:      signed,
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Notes:         in.Notes,
		CreatedBy:     in.UserID,
		CreatedAt:     now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	if err := itemRepo.UpdateStock(in.ItemID, newStock); err != nil {
		return nil, err
	}
	return mov, nil
}

// signedQuantity normaliza la cantidad según el tipo de movimiento.
func signedQuantity(movementType string, quantity int64) (int64, error) {
	if quantity == 0 {
		return 0, domain.ErrInvalidInput
	}
	abs := quantity
	if abs < 0 {
		abs = -abs
	}
	switch movementType {
	case entity.MovementTypeIn:
		return abs, nil
	case entity.MovementTypeOut:
		return -abs, nil
	case entity.MovementTypeAdjustment:
		return quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

func validReferenceType(t string) bool {
	switch t {
	case entity.ReferenceTypePurchase, entity.ReferenceTypeSale,
		entity.ReferenceTypeAdjustment, entity.ReferenceTypeTransfer:
		return true
	}
	return false
}
