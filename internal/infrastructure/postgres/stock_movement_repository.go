package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, item_id, movement_type, quantity, reference_type, reference_id, notes, created_by, created_at`

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El log es append-only: aquí no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemID, m.MovementType, m.Quantity,
		nullable(m.ReferenceType), nullable(m.ReferenceID),
		nullable(m.Notes), nullable(m.CreatedBy), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// List lista el log completo paginado, más recientes primero.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// ListByItem lista movimientos de un artículo en un rango de fechas opcional.
func (r *StockMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE item_id = $1`
	args := []any{itemID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by item: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// MonthlyUsageByItem agrupa las salidas del artículo por mes calendario dentro
// de la ventana. Las cantidades "out" se guardan negativas; aquí se reportan en
// valor absoluto. El promedio diario usa los días reales de cada mes.
func (r *StockMovementRepo) MonthlyUsageByItem(itemID string, months int) ([]repository.MonthlyUsage, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COALESCE(SUM(-quantity), 0) AS total_usage,
		       COALESCE(SUM(-quantity), 0)::float8
		           / EXTRACT(day FROM (date_trunc('month', created_at) + interval '1 month' - interval '1 day'))::float8 AS avg_daily
		FROM stock_movements
		WHERE item_id = $1
		  AND movement_type = 'out'
		  AND created_at >= date_trunc('month', now()) - make_interval(months => $2)
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at)`
	rows, err := r.q.Query(context.Background(), query, itemID, months)
	if err != nil {
		return nil, fmt.Errorf("monthly usage: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyUsage
	for rows.Next() {
		var u repository.MonthlyUsage
		if err := rows.Scan(&u.Month, &u.TotalUsage, &u.AvgDailyUsage); err != nil {
			return nil, fmt.Errorf("scan monthly usage: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var referenceType, referenceID, notes, createdBy *string
	err := row.Scan(
		&m.ID, &m.ItemID, &m.MovementType, &m.Quantity,
		&referenceType, &referenceID, &notes, &createdBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan movement: %w", err)
	}
	m.ReferenceType = deref(referenceType)
	m.ReferenceID = deref(referenceID)
	m.Notes = deref(notes)
	m.CreatedBy = deref(createdBy)
	return &m, nil
}
