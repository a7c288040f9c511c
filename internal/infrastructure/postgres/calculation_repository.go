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

var _ repository.EOQCalculationRepository = (*EOQCalculationRepo)(nil)
var _ repository.JITCalculationRepository = (*JITCalculationRepo)(nil)

// EOQCalculationRepo snapshots EOQ sobre PostgreSQL.
type EOQCalculationRepo struct {
	q Querier
}

// NewEOQCalculationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEOQCalculationRepository(q Querier) *EOQCalculationRepo {
	return &EOQCalculationRepo{q: q}
}

// Create persiste un snapshot EOQ.
func (r *EOQCalculationRepo) Create(c *entity.EOQCalculation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO eoq_calculations (id, item_id, annual_demand, ordering_cost, holding_cost, unit_cost,
			lead_time_days, eoq_quantity, total_cost, reorder_point, calculation_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ItemID, c.AnnualDemand, c.OrderingCost, c.HoldingCost, c.UnitCost,
		c.LeadTimeDays, c.EOQQuantity, c.TotalCost, c.ReorderPoint,
		c.CalculationDate, nullable(c.CreatedBy), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create eoq calculation: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot EOQ.
func (r *EOQCalculationRepo) GetByID(id string) (*entity.EOQCalculation, error) {
	query := `
		SELECT id, item_id, annual_demand, ordering_cost, holding_cost, unit_cost,
			lead_time_days, eoq_quantity, total_cost, reorder_point, calculation_date, created_by, created_at
		FROM eoq_calculations WHERE id = $1`
	c, err := scanEOQCalculation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// ListByItem lista snapshots EOQ de un artículo, más recientes primero.
func (r *EOQCalculationRepo) ListByItem(itemID string, limit, offset int) ([]*entity.EOQCalculation, error) {
	query := `
		SELECT id, item_id, annual_demand, ordering_cost, holding_cost, unit_cost,
			lead_time_days, eoq_quantity, total_cost, reorder_point, calculation_date, created_by, created_at
		FROM eoq_calculations WHERE item_id = $1
		ORDER BY calculation_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list eoq calculations: %w", err)
	}
	defer rows.Close()

	var list []*entity.EOQCalculation
	for rows.Next() {
		c, err := scanEOQCalculation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete borra un snapshot EOQ.
func (r *EOQCalculationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM eoq_calculations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete eoq calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEOQCalculation(row pgx.Row) (*entity.EOQCalculation, error) {
	var c entity.EOQCalculation
	var createdBy *string
	err := row.Scan(
		&c.ID, &c.ItemID, &c.AnnualDemand, &c.OrderingCost, &c.HoldingCost, &c.UnitCost,
		&c.LeadTimeDays, &c.EOQQuantity, &c.TotalCost, &c.ReorderPoint,
		&c.CalculationDate, &createdBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan eoq calculation: %w", err)
	}
	c.CreatedBy = deref(createdBy)
	return &c, nil
}

// JITCalculationRepo snapshots JIT sobre PostgreSQL.
type JITCalculationRepo struct {
	q Querier
}

// NewJITCalculationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJITCalculationRepository(q Querier) *JITCalculationRepo {
	return &JITCalculationRepo{q: q}
}

// Create persiste un snapshot JIT.
func (r *JITCalculationRepo) Create(c *entity.JITCalculation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO jit_calculations (id, item_id, daily_demand, lead_time_days, safety_stock,
			reorder_point, calculation_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ItemID, c.DailyDemand, c.LeadTimeDays, c.SafetyStock,
		c.ReorderPoint, c.CalculationDate, nullable(c.CreatedBy), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create jit calculation: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot JIT.
func (r *JITCalculationRepo) GetByID(id string) (*entity.JITCalculation, error) {
	query := `
		SELECT id, item_id, daily_demand, lead_time_days, safety_stock, reorder_point, calculation_date, created_by, created_at
		FROM jit_calculations WHERE id = $1`
	c, err := scanJITCalculation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// ListByItem lista snapshots JIT de un artículo, más recientes primero.
func (r *JITCalculationRepo) ListByItem(itemID string, limit, offset int) ([]*entity.JITCalculation, error) {
	query := `
		SELECT id, item_id, daily_demand, lead_time_days, safety_stock, reorder_point, calculation_date, created_by, created_at
		FROM jit_calculations WHERE item_id = $1
		ORDER BY calculation_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list jit calculations: %w", err)
	}
	defer rows.Close()

	var list []*entity.JITCalculation
	for rows.Next() {
		c, err := scanJITCalculation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete borra un snapshot JIT.
func (r *JITCalculationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM jit_calculations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete jit calculation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanJITCalculation(row pgx.Row) (*entity.JITCalculation, error) {
	var c entity.JITCalculation
	var createdBy *string
	err := row.Scan(
		&c.ID, &c.ItemID, &c.DailyDemand, &c.LeadTimeDays, &c.SafetyStock,
		&c.ReorderPoint, &c.CalculationDate, &createdBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan jit calculation: %w", err)
	}
	c.CreatedBy = deref(createdBy)
	return &c, nil
}
