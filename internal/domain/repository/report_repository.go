package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats totales del tablero principal.
type DashboardStats struct {
	TotalItems          int64
	LowStockItems       int64
	PendingOrders       int64
	TotalInventoryValue decimal.Decimal
}

// RecentMovement movimiento enriquecido con nombre de artículo y usuario para el tablero.
type RecentMovement struct {
	ID           string
	ItemID       string
	ItemName     string
	MovementType string
	Quantity     int64
	Notes        string
	UserName     string
	CreatedAt    time.Time
}

// MonthlyMovementStat entradas/salidas agregadas por mes calendario.
type MonthlyMovementStat struct {
	Month          string // YYYY-MM
	TotalMovements int64
	TotalIn        int64
	TotalOut       int64
}

// DailyUsage salidas agregadas por día.
type DailyUsage struct {
	Date  time.Time
	Usage int64
}

// ItemUsage uso agregado por artículo (reporte de consumo).
type ItemUsage struct {
	ItemID       string
	ItemCode     string
	ItemName     string
	CategoryName string
	TotalUsage   int64
	Trend        string // up | down | stable
}

// StockReportRow fila del reporte de valorización de stock.
type StockReportRow struct {
	ItemID       string
	ItemCode     string
	ItemName     string
	CategoryName string
	CurrentStock int64
	MinStock     int64
	MaxStock     int64
	UnitPrice    decimal.Decimal
	StockValue   decimal.Decimal
	Status       string // low | normal | overstock
}

// ReportRepository consultas de solo lectura sobre el log de movimientos y el
// maestro de artículos. El core no calcula estos agregados; los expone con
// campos estables para la capa de reportes.
type ReportRepository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	GetRecentMovements(ctx context.Context, limit int) ([]RecentMovement, error)
	GetMonthlyMovementStats(ctx context.Context, months int) ([]MonthlyMovementStat, error)
	GetMonthlyPurchaseStats(ctx context.Context, months int) ([]MonthlyPurchaseStat, error)
	GetDailyUsage(ctx context.Context, from, to time.Time) ([]DailyUsage, error)
	GetItemUsage(ctx context.Context, from, to time.Time, categoryID, search string) ([]ItemUsage, error)
	GetStockReport(ctx context.Context) ([]StockReportRow, error)
}
