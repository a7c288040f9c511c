// Package receiving registra recepciones de mercancía contra órdenes de compra.
// Cabecera, líneas y los movimientos "in" del ledger se escriben en una sola
// transacción: si algo falla no queda ni la recepción ni stock fantasma.
package receiving

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase casos de uso de recepciones.
type UseCase struct {
	txRunner    TxRunner
	ledger      *ledger.UseCase
	receiptRepo repository.ReceiptRepository
}

// NewUseCase construye el caso de uso. receiptRepo (sobre el pool) atiende las lecturas;
// las escrituras van por txRunner.
func NewUseCase(txRunner TxRunner, ledgerUC *ledger.UseCase, receiptRepo repository.ReceiptRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ledger: ledgerUC, receiptRepo: receiptRepo}
}

// LineInput línea de recepción entrante.
type LineInput struct {
	ItemID           string
	QuantityOrdered  int64
	QuantityReceived int64
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
}

// CreateInput entrada para crear una recepción.
// ReceiptNumber vacío => se genera RCPT-YYYYMMDD-NNN dentro de la transacción.
type CreateInput struct {
	ReceiptNumber   string
	PurchaseOrderID string
	ReceiptDate     time.Time
	TotalAmount     decimal.Decimal
	Status          string
	Notes           string
	UserID          string
	Lines           []LineInput
}

// Create crea la recepción con sus líneas y aplica un movimiento "in" por cada
// línea con cantidad recibida > 0 (referencia purchase/receipt id).
//
// El consecutivo se calcula dentro de la misma transacción leyendo el mayor
// número del día; el índice único sobre receipt_number convierte un duplicado
// concurrente en domain.ErrConflict en lugar de corromper la secuencia.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*entity.Receipt, error) {
	for _, l := range in.Lines {
		if l.ItemID == "" || l.QuantityReceived < 0 || l.QuantityOrdered < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ReceiptDate.IsZero() {
		in.ReceiptDate = time.Now()
	}
	if in.Status == "" {
		in.Status = entity.ReceiptStatusCompleted
	}

	now := time.Now()
	receipt := &entity.Receipt{
		ID:              uuid.New().String(),
		ReceiptNumber:   in.ReceiptNumber,
		PurchaseOrderID: in.PurchaseOrderID,
		ReceiptDate:     in.ReceiptDate,
		TotalAmount:     in.TotalAmount,
		Status:          in.Status,
		Notes:           in.Notes,
		CreatedBy:       in.UserID,
		CreatedAt:       now,
	}

	err := uc.txRunner.RunReceiving(ctx, func(
		receiptRepo repository.ReceiptRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.ItemRepository,
	) error {
		if receipt.ReceiptNumber == "" {
			last, err := receiptRepo.MaxReceiptNumber(NumberPrefix(in.ReceiptDate))
			if err != nil {
				return err
			}
			receipt.ReceiptNumber = NextNumber(in.ReceiptDate, last)
		}
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		for _, l := range in.Lines {
			line := &entity.ReceiptLine{
				ID:               uuid.New().String(),
				ReceiptID:        receipt.ID,
				ItemID:           l.ItemID,
				QuantityOrdered:  l.QuantityOrdered,
				QuantityReceived: l.QuantityReceived,
				UnitPrice:        l.UnitPrice,
				TotalPrice:       l.TotalPrice,
			}
			if err := receiptRepo.CreateLine(line); err != nil {
				return err
			}
			receipt.Lines = append(receipt.Lines, *line)

			if err := uc.ledger.ReceiveLine(
				movRepo, itemRepo,
				l.ItemID, l.QuantityReceived,
				receipt.ID, receipt.ReceiptNumber, in.UserID, now,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// GetByID obtiene una recepción con sus líneas.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	return uc.receiptRepo.GetByID(id)
}

// List lista recepciones paginadas.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Receipt, error) {
	return uc.receiptRepo.List(limit, offset)
}

// UpdateInput campos editables de una recepción existente.
type UpdateInput struct {
	ReceiptNumber   string
	PurchaseOrderID string
	ReceiptDate     time.Time
	TotalAmount     decimal.Decimal
	Status          string
	Notes           string
	Lines           []LineInput
}

// Update reescribe cabecera y líneas. No repostea movimientos: el stock solo
// se tocó al crear la recepción.
func (uc *UseCase) Update(ctx context.Context, id string, in UpdateInput) error {
	existing, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	existing.ReceiptNumber = in.ReceiptNumber
	existing.PurchaseOrderID = in.PurchaseOrderID
	existing.ReceiptDate = in.ReceiptDate
	existing.TotalAmount = in.TotalAmount
	existing.Status = in.Status
	existing.Notes = in.Notes

	return uc.txRunner.RunReceiving(ctx, func(
		receiptRepo repository.ReceiptRepository,
		_ repository.StockMovementRepository,
		_ repository.ItemRepository,
	) error {
		if err := receiptRepo.Update(existing); err != nil {
			return err
		}
		if err := receiptRepo.DeleteLinesByReceipt(id); err != nil {
			return err
		}
		for _, l := range in.Lines {
			line := &entity.ReceiptLine{
				ID:               uuid.New().String(),
				ReceiptID:        id,
				ItemID:           l.ItemID,
				QuantityOrdered:  l.QuantityOrdered,
				QuantityReceived: l.QuantityReceived,
				UnitPrice:        l.UnitPrice,
				TotalPrice:       l.TotalPrice,
			}
			if err := receiptRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete borra una recepción. Las recepciones completadas no se pueden borrar
// (sus movimientos ya están en el ledger).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if existing.Status == entity.ReceiptStatusCompleted {
		return domain.ErrConflict
	}
	return uc.receiptRepo.Delete(id)
}
