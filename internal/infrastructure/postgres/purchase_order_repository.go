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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera de una orden de compra.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	if po.ID == "" {
		po.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_orders (id, order_number, supplier_id, order_date, expected_date, total_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.OrderNumber, po.SupplierID, po.OrderDate, po.ExpectedDate,
		po.TotalAmount, po.Status, nullable(po.Notes), po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create purchase order: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de orden de compra.
func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_order_lines (id, purchase_order_id, item_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.PurchaseOrderID, line.ItemID, line.Quantity, line.UnitPrice, line.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("create purchase order line: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, order_number, supplier_id, order_date, expected_date, total_amount, status, notes, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	lines, err := r.linesByOrder(id)
	if err != nil {
		return nil, err
	}
	po.Lines = lines
	return po, nil
}

// List lista órdenes paginadas (sin líneas), más recientes primero.
func (r *PurchaseOrderRepo) List(limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, order_number, supplier_id, order_date, expected_date, total_amount, status, notes, created_at, updated_at
		FROM purchase_orders ORDER BY order_date DESC, order_number DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera de una orden.
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET order_number = $2, supplier_id = $3, order_date = $4,
			expected_date = $5, total_amount = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		po.ID, po.OrderNumber, po.SupplierID, po.OrderDate, po.ExpectedDate,
		po.TotalAmount, po.Status, nullable(po.Notes), po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLinesByOrder borra todas las líneas de una orden.
func (r *PurchaseOrderRepo) DeleteLinesByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_order_lines WHERE purchase_order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete purchase order lines: %w", err)
	}
	return nil
}

// Delete borra una orden y sus líneas.
func (r *PurchaseOrderRepo) Delete(id string) error {
	if err := r.DeleteLinesByOrder(id); err != nil {
		return err
	}
	tag, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus cuenta órdenes por estado.
func (r *PurchaseOrderRepo) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by status: %w", err)
	}
	return count, nil
}

func (r *PurchaseOrderRepo) linesByOrder(orderID string) ([]entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, purchase_order_id, item_id, quantity, unit_price, total_price
		FROM purchase_order_lines WHERE purchase_order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order lines: %w", err)
	}
	defer rows.Close()

	var lines []entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.PurchaseOrderID, &l.ItemID, &l.Quantity, &l.UnitPrice, &l.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	var notes *string
	err := row.Scan(
		&po.ID, &po.OrderNumber, &po.SupplierID, &po.OrderDate, &po.ExpectedDate,
		&po.TotalAmount, &po.Status, &notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan purchase order: %w", err)
	}
	po.Notes = deref(notes)
	return &po, nil
}
