package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el tablero y los reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetDashboardStats totales del tablero en una sola consulta.
func (r *ReportRepo) GetDashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM items WHERE status = 'active'),
			(SELECT COUNT(*) FROM items WHERE status = 'active' AND current_stock <= min_stock),
			(SELECT COUNT(*) FROM purchase_orders WHERE status = 'pending'),
			(SELECT COALESCE(SUM(current_stock * price), 0) FROM items WHERE status = 'active')`
	var s repository.DashboardStats
	err := r.q.QueryRow(ctx, query).Scan(
		&s.TotalItems, &s.LowStockItems, &s.PendingOrders, &s.TotalInventoryValue)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &s, nil
}

// GetRecentMovements últimos movimientos con nombre de artículo y usuario.
func (r *ReportRepo) GetRecentMovements(ctx context.Context, limit int) ([]repository.RecentMovement, error) {
	query := `
		SELECT m.id, m.item_id, i.name, m.movement_type, m.quantity,
		       COALESCE(m.notes, ''), COALESCE(u.full_name, u.username, ''), m.created_at
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		LEFT JOIN users u ON u.id = m.created_by
		ORDER BY m.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent movements: %w", err)
	}
	defer rows.Close()

	var list []repository.RecentMovement
	for rows.Next() {
		var m repository.RecentMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.ItemName, &m.MovementType,
			&m.Quantity, &m.Notes, &m.UserName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetMonthlyMovementStats entradas y salidas agregadas por mes. Las salidas se
// guardan negativas; aquí se reportan en valor absoluto.
func (r *ReportRepo) GetMonthlyMovementStats(ctx context.Context, months int) ([]repository.MonthlyMovementStat, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       COUNT(*),
		       COALESCE(SUM(CASE WHEN quantity > 0 THEN quantity ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN quantity < 0 THEN -quantity ELSE 0 END), 0)
		FROM stock_movements
		WHERE created_at >= date_trunc('month', now()) - make_interval(months => $1)
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at)`
	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("monthly movement stats: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyMovementStat
	for rows.Next() {
		var s repository.MonthlyMovementStat
		if err := rows.Scan(&s.Month, &s.TotalMovements, &s.TotalIn, &s.TotalOut); err != nil {
			return nil, fmt.Errorf("scan monthly movement stat: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetMonthlyPurchaseStats compras agregadas por mes (sin órdenes canceladas).
func (r *ReportRepo) GetMonthlyPurchaseStats(ctx context.Context, months int) ([]repository.MonthlyPurchaseStat, error) {
	query := `
		SELECT to_char(date_trunc('month', order_date), 'YYYY-MM') AS month,
		       COALESCE(SUM(total_amount), 0),
		       COUNT(*)
		FROM purchase_orders
		WHERE status <> 'cancelled'
		  AND order_date >= date_trunc('month', now()) - make_interval(months => $1)
		GROUP BY date_trunc('month', order_date)
		ORDER BY date_trunc('month', order_date)`
	rows, err := r.q.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("monthly purchase stats: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyPurchaseStat
	for rows.Next() {
		var s repository.MonthlyPurchaseStat
		if err := rows.Scan(&s.Month, &s.Amount, &s.Orders); err != nil {
			return nil, fmt.Errorf("scan monthly purchase stat: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetDailyUsage salidas agregadas por día dentro del rango.
func (r *ReportRepo) GetDailyUsage(ctx context.Context, from, to time.Time) ([]repository.DailyUsage, error) {
	query := `
		SELECT date_trunc('day', created_at)::date, COALESCE(SUM(-quantity), 0)
		FROM stock_movements
		WHERE movement_type = 'out' AND created_at >= $1 AND created_at <= $2
		GROUP BY date_trunc('day', created_at)
		ORDER BY date_trunc('day', created_at)`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily usage: %w", err)
	}
	defer rows.Close()

	var list []repository.DailyUsage
	for rows.Next() {
		var d repository.DailyUsage
		if err := rows.Scan(&d.Date, &d.Usage); err != nil {
			return nil, fmt.Errorf("scan daily usage: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetItemUsage consumo por artículo dentro del rango, con filtros opcionales
// por categoría y texto. La tendencia compara la segunda mitad del rango contra
// la primera: up/down si difiere más de un 10%, stable en otro caso.
func (r *ReportRepo) GetItemUsage(ctx context.Context, from, to time.Time, categoryID, search string) ([]repository.ItemUsage, error) {
	query := `
		SELECT i.id, i.code, i.name, COALESCE(c.name, ''),
		       COALESCE(SUM(-m.quantity), 0) AS total_usage,
		       COALESCE(SUM(CASE WHEN m.created_at < $3 THEN -m.quantity ELSE 0 END), 0) AS first_half,
		       COALESCE(SUM(CASE WHEN m.created_at >= $3 THEN -m.quantity ELSE 0 END), 0) AS second_half
		FROM stock_movements m
		JOIN items i ON i.id = m.item_id
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE m.movement_type = 'out' AND m.created_at >= $1 AND m.created_at <= $2`
	mid := from.Add(to.Sub(from) / 2)
	args := []any{from, to, mid}
	pos := 4
	if categoryID != "" {
		query += fmt.Sprintf(" AND i.category_id = $%d", pos)
		args = append(args, categoryID)
		pos++
	}
	if search != "" {
		query += fmt.Sprintf(" AND (i.name ILIKE '%%' || $%d || '%%' OR i.code ILIKE '%%' || $%d || '%%')", pos, pos)
		args = append(args, search)
	}
	query += `
		GROUP BY i.id, i.code, i.name, c.name
		ORDER BY total_usage DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("item usage: %w", err)
	}
	defer rows.Close()

	var list []repository.ItemUsage
	for rows.Next() {
		var u repository.ItemUsage
		var firstHalf, secondHalf int64
		if err := rows.Scan(&u.ItemID, &u.ItemCode, &u.ItemName, &u.CategoryName,
			&u.TotalUsage, &firstHalf, &secondHalf); err != nil {
			return nil, fmt.Errorf("scan item usage: %w", err)
		}
		u.Trend = usageTrend(firstHalf, secondHalf)
		list = append(list, u)
	}
	return list, rows.Err()
}

// GetStockReport valorización de stock de los artículos activos.
func (r *ReportRepo) GetStockReport(ctx context.Context) ([]repository.StockReportRow, error) {
	query := `
		SELECT i.id, i.code, i.name, COALESCE(c.name, ''),
		       i.current_stock, i.min_stock, i.max_stock, i.price,
		       i.current_stock * i.price AS stock_value,
		       CASE
		           WHEN i.current_stock <= i.min_stock THEN 'low'
		           WHEN i.max_stock > 0 AND i.current_stock > i.max_stock THEN 'overstock'
		           ELSE 'normal'
		       END AS status
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.status = 'active'
		ORDER BY i.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	defer rows.Close()

	var list []repository.StockReportRow
	for rows.Next() {
		var row repository.StockReportRow
		if err := rows.Scan(&row.ItemID, &row.ItemCode, &row.ItemName, &row.CategoryName,
			&row.CurrentStock, &row.MinStock, &row.MaxStock, &row.UnitPrice,
			&row.StockValue, &row.Status); err != nil {
			return nil, fmt.Errorf("scan stock report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func usageTrend(firstHalf, secondHalf int64) string {
	if firstHalf == 0 {
		if secondHalf > 0 {
			return "up"
		}
		return "stable"
	}
	ratio := float64(secondHalf) / float64(firstHalf)
	switch {
	case ratio > 1.1:
		return "up"
	case ratio < 0.9:
		return "down"
	default:
		return "stable"
	}
}
