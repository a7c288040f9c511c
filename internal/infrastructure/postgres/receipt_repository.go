package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la cabecera de una recepción. El índice único sobre
// receipt_number convierte un consecutivo duplicado en domain.ErrConflict.
func (r *ReceiptRepo) Create(rc *entity.Receipt) error {
	if rc.ID == "" {
		rc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipts (id, receipt_number, purchase_order_id, receipt_date, total_amount, status, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		rc.ID, rc.ReceiptNumber, nullable(rc.PurchaseOrderID), rc.ReceiptDate,
		rc.TotalAmount, rc.Status, nullable(rc.Notes), nullable(rc.CreatedBy), rc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de recepción.
func (r *ReceiptRepo) CreateLine(line *entity.ReceiptLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipt_lines (id, receipt_id, item_id, quantity_ordered, quantity_received, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ReceiptID, line.ItemID,
		line.QuantityOrdered, line.QuantityReceived, line.UnitPrice, line.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("create receipt line: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción con sus líneas.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, purchase_order_id, receipt_date, total_amount, status, notes, created_by, created_at
		FROM receipts WHERE id = $1`
	rc, err := scanReceipt(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	lines, err := r.linesByReceipt(id)
	if err != nil {
		return nil, err
	}
	rc.Lines = lines
	return rc, nil
}

// List lista recepciones paginadas (sin líneas), más recientes primero.
func (r *ReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	query := `
		SELECT id, receipt_number, purchase_order_id, receipt_date, total_amount, status, notes, created_by, created_at
		FROM receipts ORDER BY receipt_date DESC, receipt_number DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Receipt
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera de una recepción.
func (r *ReceiptRepo) Update(rc *entity.Receipt) error {
	query := `
		UPDATE receipts SET receipt_number = $2, purchase_order_id = $3, receipt_date = $4,
			total_amount = $5, status = $6, notes = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		rc.ID, rc.ReceiptNumber, nullable(rc.PurchaseOrderID), rc.ReceiptDate,
		rc.TotalAmount, rc.Status, nullable(rc.Notes),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLinesByReceipt borra todas las líneas de una recepción.
func (r *ReceiptRepo) DeleteLinesByReceipt(receiptID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receipt_lines WHERE receipt_id = $1`, receiptID)
	if err != nil {
		return fmt.Errorf("delete receipt lines: %w", err)
	}
	return nil
}

// Delete borra una recepción y sus líneas.
func (r *ReceiptRepo) Delete(id string) error {
	if err := r.DeleteLinesByReceipt(id); err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxReceiptNumber devuelve el mayor receipt_number con el prefijo dado, o ""
// si no hay ninguno. El orden lexicográfico coincide con el numérico porque la
// secuencia va con ceros a la izquierda (RCPT-YYYYMMDD-NNN).
func (r *ReceiptRepo) MaxReceiptNumber(prefix string) (string, error) {
	query := `SELECT COALESCE(MAX(receipt_number), '') FROM receipts WHERE receipt_number LIKE $1 || '%'`
	var max string
	if err := r.q.QueryRow(context.Background(), query, prefix).Scan(&max); err != nil {
		return "", fmt.Errorf("max receipt number: %w", err)
	}
	return max, nil
}

func (r *ReceiptRepo) linesByReceipt(receiptID string) ([]entity.ReceiptLine, error) {
	query := `
		SELECT id, receipt_id, item_id, quantity_ordered, quantity_received, unit_price, total_price
		FROM receipt_lines WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.ReceiptLine
	for rows.Next() {
		var l entity.ReceiptLine
		if err := rows.Scan(&l.ID, &l.ReceiptID, &l.ItemID,
			&l.QuantityOrdered, &l.QuantityReceived, &l.UnitPrice, &l.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanReceipt(row pgx.Row) (*entity.Receipt, error) {
	var rc entity.Receipt
	var purchaseOrderID, notes, createdBy *string
	err := row.Scan(
		&rc.ID, &rc.ReceiptNumber, &purchaseOrderID, &rc.ReceiptDate,
		&rc.TotalAmount, &rc.Status, &notes, &createdBy, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan receipt: %w", err)
	}
	rc.PurchaseOrderID = deref(purchaseOrderID)
	rc.Notes = deref(notes)
	rc.CreatedBy = deref(createdBy)
	return &rc, nil
}
