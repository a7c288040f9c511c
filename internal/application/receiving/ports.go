package receiving

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner transacción con los repositorios que necesita la creación de una
// recepción: cabecera+líneas y el par movimiento/artículo del ledger.
type TxRunner interface {
	RunReceiving(ctx context.Context, fn func(
		receiptRepo repository.ReceiptRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
