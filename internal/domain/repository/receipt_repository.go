package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReceiptRepository puerto de persistencia para recepciones de mercancía.
type ReceiptRepository interface {
	Create(r *entity.Receipt) error
	CreateLine(line *entity.ReceiptLine) error
	GetByID(id string) (*entity.Receipt, error)
	List(limit, offset int) ([]*entity.Receipt, error)
	Update(r *entity.Receipt) error
	DeleteLinesByReceipt(receiptID string) error
	Delete(id string) error
	// MaxReceiptNumber devuelve el mayor receipt_number con el prefijo dado
	// (ej. "RCPT-20240115-"), o cadena vacía si no hay ninguno.
	MaxReceiptNumber(prefix string) (string, error)
}
