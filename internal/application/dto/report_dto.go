package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	TotalItems          int64                `json:"total_items"`
	LowStockItems       int64                `json:"low_stock_items"`
	PendingOrders       int64                `json:"pending_orders"`
	TotalInventoryValue decimal.Decimal      `json:"total_inventory_value"`
	RecentMovements     []RecentMovementDTO  `json:"recent_movements"`
	MonthlyMovements    []MonthlyMovementDTO `json:"monthly_movements"`
}

// RecentMovementDTO movimiento reciente enriquecido para el tablero.
type RecentMovementDTO struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	MovementType string    `json:"movement_type"`
	Quantity     int64     `json:"quantity"`
	Notes        string    `json:"notes,omitempty"`
	UserName     string    `json:"user_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MonthlyMovementDTO entradas/salidas agregadas por mes.
type MonthlyMovementDTO struct {
	Month          string `json:"month"` // YYYY-MM
	TotalMovements int64  `json:"total_movements"`
	TotalIn        int64  `json:"total_in"`
	TotalOut       int64  `json:"total_out"`
}

// MonthlyPurchaseDTO compras agregadas por mes.
type MonthlyPurchaseDTO struct {
	Month  string          `json:"month"` // YYYY-MM
	Amount decimal.Decimal `json:"amount"`
	Orders int64           `json:"orders"`
}

// DailyUsageDTO salidas agregadas por día.
type DailyUsageDTO struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Usage int64  `json:"usage"`
}

// ItemUsageDTO consumo agregado por artículo.
type ItemUsageDTO struct {
	ItemID       string `json:"item_id"`
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	CategoryName string `json:"category_name,omitempty"`
	TotalUsage   int64  `json:"total_usage"`
	Trend        string `json:"trend"` // up | down | stable
}

// StockReportRowDTO fila del reporte de valorización de stock.
type StockReportRowDTO struct {
	ItemID       string          `json:"item_id"`
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"`
	CategoryName string          `json:"category_name,omitempty"`
	CurrentStock int64           `json:"current_stock"`
	MinStock     int64           `json:"min_stock"`
	MaxStock     int64           `json:"max_stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockValue   decimal.Decimal `json:"stock_value"`
	Status       string          `json:"status"` // low | normal | overstock
}

// UsageReportDTO respuesta de GET /api/reports/usage.
type UsageReportDTO struct {
	Daily []DailyUsageDTO `json:"daily_usage"`
	Items []ItemUsageDTO  `json:"item_usage"`
}

// StockReportDTO respuesta de GET /api/reports/stock.
type StockReportDTO struct {
	Rows       []StockReportRowDTO `json:"rows"`
	TotalValue decimal.Decimal     `json:"total_value"`
}

// PurchaseReportDTO respuesta de GET /api/reports/purchases.
type PurchaseReportDTO struct {
	Monthly []MonthlyPurchaseDTO `json:"monthly_purchases"`
}

// FromRecentMovements mapea los movimientos recientes del tablero.
func FromRecentMovements(ms []repository.RecentMovement) []RecentMovementDTO {
	out := make([]RecentMovementDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, RecentMovementDTO{
			ID:           m.ID,
			ItemID:       m.ItemID,
			ItemName:     m.ItemName,
			MovementType: m.MovementType,
			Quantity:     m.Quantity,
			Notes:        m.Notes,
			UserName:     m.UserName,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out
}

// FromMonthlyMovementStats mapea los agregados mensuales de movimientos.
func FromMonthlyMovementStats(ss []repository.MonthlyMovementStat) []MonthlyMovementDTO {
	out := make([]MonthlyMovementDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, MonthlyMovementDTO{
			Month:          s.Month,
			TotalMovements: s.TotalMovements,
			TotalIn:        s.TotalIn,
			TotalOut:       s.TotalOut,
		})
	}
	return out
}

// FromMonthlyPurchaseStats mapea los agregados mensuales de compras.
func FromMonthlyPurchaseStats(ss []repository.MonthlyPurchaseStat) []MonthlyPurchaseDTO {
	out := make([]MonthlyPurchaseDTO, 0, len(ss))
	for _, s := range ss {
		out = append(out, MonthlyPurchaseDTO{Month: s.Month, Amount: s.Amount, Orders: s.Orders})
	}
	return out
}

// FromDailyUsage mapea las salidas diarias.
func FromDailyUsage(ds []repository.DailyUsage) []DailyUsageDTO {
	out := make([]DailyUsageDTO, 0, len(ds))
	for _, d := range ds {
		out = append(out, DailyUsageDTO{Date: d.Date.Format("2006-01-02"), Usage: d.Usage})
	}
	return out
}

// FromItemUsage mapea el consumo por artículo.
func FromItemUsage(is []repository.ItemUsage) []ItemUsageDTO {
	out := make([]ItemUsageDTO, 0, len(is))
	for _, i := range is {
		out = append(out, ItemUsageDTO{
			ItemID:       i.ItemID,
			ItemCode:     i.ItemCode,
			ItemName:     i.ItemName,
			CategoryName: i.CategoryName,
			TotalUsage:   i.TotalUsage,
			Trend:        i.Trend,
		})
	}
	return out
}

// FromStockReport mapea el reporte de stock y acumula el valor total.
func FromStockReport(rows []repository.StockReportRow) StockReportDTO {
	out := make([]StockReportRowDTO, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		out = append(out, StockReportRowDTO{
			ItemID:       r.ItemID,
			ItemCode:     r.ItemCode,
			ItemName:     r.ItemName,
			CategoryName: r.CategoryName,
			CurrentStock: r.CurrentStock,
			MinStock:     r.MinStock,
			MaxStock:     r.MaxStock,
			UnitPrice:    r.UnitPrice,
			StockValue:   r.StockValue,
			Status:       r.Status,
		})
		total = total.Add(r.StockValue)
	}
	return StockReportDTO{Rows: out, TotalValue: total}
}
