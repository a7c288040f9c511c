// Package planning contiene los calculadores puros de planificación de inventario
// (EOQ y punto de reorden JIT). Sin acceso a datos: entran parámetros, salen métricas.
package planning

import (
	"math"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// DefaultLeadTimeDays lead time por defecto para el punto de reorden EOQ.
const DefaultLeadTimeDays = 7

// EOQInput parámetros del cálculo de cantidad económica de pedido.
type EOQInput struct {
	AnnualDemand float64 // D, unidades/año (>= 0)
	OrderingCost float64 // S, costo por pedido (>= 0)
	HoldingCost  float64 // H, costo de mantener una unidad un año (> 0)
	UnitCost     float64 // C, costo unitario (>= 0, opcional)
	LeadTimeDays float64 // para el punto de reorden; 0 => DefaultLeadTimeDays
}

// EOQResult métricas derivadas, sin redondear. El redondeo es de presentación
// (el DTO lo aplica) para no acumular error en pasos intermedios.
type EOQResult struct {
	EOQ               float64
	TotalOrderingCost float64
	TotalHoldingCost  float64
	TotalItemCost     float64
	TotalCost         float64
	NumberOfOrders    float64
	TimeBetweenOrders float64 // días
	ReorderPoint      float64
}

// CalculateEOQ evalúa EOQ = sqrt(2DS/H) y sus costos asociados.
//
// Demanda cero es un caso definido: devuelve resultado todo-cero en lugar de
// propagar NaN/Inf por las divisiones entre EOQ.
func CalculateEOQ(in EOQInput) (*EOQResult, error) {
	if in.AnnualDemand < 0 {
		return nil, &domain.InvalidParameterError{Name: "annual_demand", Reason: "debe ser >= 0"}
	}
	if in.OrderingCost < 0 {
		return nil, &domain.InvalidParameterError{Name: "ordering_cost", Reason: "debe ser >= 0"}
	}
	if in.HoldingCost <= 0 {
		return nil, &domain.InvalidParameterError{Name: "holding_cost", Reason: "debe ser > 0"}
	}
	if in.UnitCost < 0 {
		return nil, &domain.InvalidParameterError{Name: "unit_cost", Reason: "debe ser >= 0"}
	}
	if in.LeadTimeDays < 0 {
		return nil, &domain.InvalidParameterError{Name: "lead_time_days", Reason: "debe ser >= 0"}
	}

	if in.AnnualDemand == 0 {
		return &EOQResult{}, nil
	}

	leadTime := in.LeadTimeDays
	if leadTime == 0 {
		leadTime = DefaultLeadTimeDays
	}

	d, s, h, c := in.AnnualDemand, in.OrderingCost, in.HoldingCost, in.UnitCost

	eoq := math.Sqrt(2 * d * s / h)
	orderingCost := (d / eoq) * s
	holdingCost := (eoq / 2) * h
	itemCost := d * c
	numberOfOrders := d / eoq

	return &EOQResult{
		EOQ:               eoq,
		TotalOrderingCost: orderingCost,
		TotalHoldingCost:  holdingCost,
		TotalItemCost:     itemCost,
		TotalCost:         orderingCost + holdingCost + itemCost,
		NumberOfOrders:    numberOfOrders,
		TimeBetweenOrders: 365 / numberOfOrders,
		ReorderPoint:      (d / 365) * leadTime,
	}, nil
}
