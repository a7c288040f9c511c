package planning

import (
	"context"
	"math"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DefaultLookbackMonths ventana por defecto del estimador histórico.
const DefaultLookbackMonths = 12

// DemandEstimate entradas sugeridas para EOQ/JIT derivadas del historial de salidas.
// Son sugerencias: nunca reemplazan lo que el usuario escriba explícitamente.
type DemandEstimate struct {
	Monthly               []repository.MonthlyUsage
	AvgMonthlyUsage       float64
	EstimatedAnnualDemand int64
	AvgDailyDemand        float64
	DataPeriodMonths      int
}

// EstimateDemand agrupa las salidas del artículo por mes calendario dentro de la
// ventana y promedia: demanda anual estimada = promedio mensual * 12; la demanda
// diaria es el promedio de los promedios diarios mensuales.
// Sin historial devuelve estimaciones en cero con DataPeriodMonths = 0.
func (uc *UseCase) EstimateDemand(ctx context.Context, itemID string, months int) (*DemandEstimate, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if months <= 0 {
		months = DefaultLookbackMonths
	}
	rows, err := uc.movRepo.MonthlyUsageByItem(itemID, months)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &DemandEstimate{Monthly: []repository.MonthlyUsage{}}, nil
	}

	var totalUsage int64
	var dailySum float64
	for _, r := range rows {
		totalUsage += r.TotalUsage
		dailySum += r.AvgDailyUsage
	}
	n := float64(len(rows))
	avgMonthly := float64(totalUsage) / n

	return &DemandEstimate{
		Monthly:               rows,
		AvgMonthlyUsage:       avgMonthly,
		EstimatedAnnualDemand: int64(math.Round(avgMonthly * 12)),
		AvgDailyDemand:        dailySum / n,
		DataPeriodMonths:      len(rows),
	}, nil
}
