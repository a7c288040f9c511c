package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const (
	dashboardRecentMovements = 10 // movimientos en el widget del tablero
	dashboardMonths          = 6  // meses de la gráfica de movimientos
)

// ReportUseCase arma el tablero y los reportes de consumo, stock y compras.
// Solo lecturas; todo sale del ReportRepository.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetDashboard construye el DashboardDTO.
//
// Tres llamadas en paralelo:
//  1. GetDashboardStats          → totales
//  2. GetRecentMovements(10)     → últimos movimientos
//  3. GetMonthlyMovementStats(6) → gráfica mensual
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	type statsResult struct {
		stats *repository.DashboardStats
		err   error
	}
	type recentResult struct {
		movements []repository.RecentMovement
		err       error
	}
	type monthlyResult struct {
		stats []repository.MonthlyMovementStat
		err   error
	}

	statsCh := make(chan statsResult, 1)
	recentCh := make(chan recentResult, 1)
	monthlyCh := make(chan monthlyResult, 1)

	go func() {
		s, err := uc.reportRepo.GetDashboardStats(ctx)
		statsCh <- statsResult{s, err}
	}()
	go func() {
		ms, err := uc.reportRepo.GetRecentMovements(ctx, dashboardRecentMovements)
		recentCh <- recentResult{ms, err}
	}()
	go func() {
		ss, err := uc.reportRepo.GetMonthlyMovementStats(ctx, dashboardMonths)
		monthlyCh <- monthlyResult{ss, err}
	}()

	stats := <-statsCh
	recent := <-recentCh
	monthly := <-monthlyCh

	if stats.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", stats.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}
	if monthly.err != nil {
		return nil, fmt.Errorf("dashboard: agregados mensuales: %w", monthly.err)
	}

	return &dto.DashboardDTO{
		TotalItems:          stats.stats.TotalItems,
		LowStockItems:       stats.stats.LowStockItems,
		PendingOrders:       stats.stats.PendingOrders,
		TotalInventoryValue: stats.stats.TotalInventoryValue,
		RecentMovements:     dto.FromRecentMovements(recent.movements),
		MonthlyMovements:    dto.FromMonthlyMovementStats(monthly.stats),
	}, nil
}

// GetUsageReport consumo diario y por artículo dentro del rango.
// Rango vacío => últimos 30 días.
func (uc *ReportUseCase) GetUsageReport(ctx context.Context, from, to time.Time, categoryID, search string) (*dto.UsageReportDTO, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		from, to = to, from
	}

	daily, err := uc.reportRepo.GetDailyUsage(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte de consumo: diario: %w", err)
	}
	items, err := uc.reportRepo.GetItemUsage(ctx, from, to, categoryID, search)
	if err != nil {
		return nil, fmt.Errorf("reporte de consumo: por artículo: %w", err)
	}
	return &dto.UsageReportDTO{
		Daily: dto.FromDailyUsage(daily),
		Items: dto.FromItemUsage(items),
	}, nil
}

// GetStockReport valorización de stock de todos los artículos activos.
func (uc *ReportUseCase) GetStockReport(ctx context.Context) (*dto.StockReportDTO, error) {
	rows, err := uc.reportRepo.GetStockReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte de stock: %w", err)
	}
	report := dto.FromStockReport(rows)
	return &report, nil
}

// GetPurchaseReport compras agregadas por mes (últimos `months` meses; 0 => 12).
func (uc *ReportUseCase) GetPurchaseReport(ctx context.Context, months int) (*dto.PurchaseReportDTO, error) {
	if months <= 0 {
		months = 12
	}
	stats, err := uc.reportRepo.GetMonthlyPurchaseStats(ctx, months)
	if err != nil {
		return nil, fmt.Errorf("reporte de compras: %w", err)
	}
	return &dto.PurchaseReportDTO{Monthly: dto.FromMonthlyPurchaseStats(stats)}, nil
}
