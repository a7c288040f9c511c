package planning

import "github.com/jhoicas/almacen-api/internal/domain"

// Niveles de riesgo de quiebre de stock.
const (
	StockoutRiskLow  = "Low"
	StockoutRiskHigh = "High"
)

// DefaultWorkingDays días laborables por año si el caller no especifica.
const DefaultWorkingDays = 365

// JITInput parámetros del cálculo de reposición just-in-time.
type JITInput struct {
	DailyDemand  float64 // unidades/día (>= 0)
	LeadTimeDays float64 // días (> 0)
	SafetyStock  float64 // unidades (>= 0)
	WorkingDays  float64 // días/año; 0 => DefaultWorkingDays
}

// JITResult métricas derivadas, sin redondear (redondeo en el DTO).
type JITResult struct {
	ReorderPoint        float64
	AnnualDemand        float64
	TotalLeadTimeDemand float64
	AverageInventory    float64
	StockoutRisk        string
	TimeToStockout      float64 // días
	MinOrderFrequency   float64 // pedidos/año
}

// CalculateJIT evalúa punto de reorden y métricas de riesgo para política JIT.
//
// Un lead time de cero no es una política JIT con sentido: se rechaza como
// parámetro inválido en lugar de definir la frecuencia de pedido como 0.
// Con demanda diaria cero, TimeToStockout se define como 0.
func CalculateJIT(in JITInput) (*JITResult, error) {
	if in.DailyDemand < 0 {
		return nil, &domain.InvalidParameterError{Name: "daily_demand", Reason: "debe ser >= 0"}
	}
	if in.LeadTimeDays <= 0 {
		return nil, &domain.InvalidParameterError{Name: "lead_time", Reason: "debe ser > 0"}
	}
	if in.SafetyStock < 0 {
		return nil, &domain.InvalidParameterError{Name: "safety_stock", Reason: "debe ser >= 0"}
	}
	if in.WorkingDays < 0 {
		return nil, &domain.InvalidParameterError{Name: "working_days", Reason: "debe ser >= 0"}
	}

	wd := in.WorkingDays
	if wd == 0 {
		wd = DefaultWorkingDays
	}

	dd, lt, ss := in.DailyDemand, in.LeadTimeDays, in.SafetyStock

	risk := StockoutRiskHigh
	if ss > 0 {
		risk = StockoutRiskLow
	}

	timeToStockout := 0.0
	if dd > 0 {
		timeToStockout = ss / dd
	}

	return &JITResult{
		ReorderPoint:        dd*lt + ss,
		AnnualDemand:        dd * wd,
		TotalLeadTimeDemand: dd * lt,
		AverageInventory:    ss + (dd * lt / 2),
		StockoutRisk:        risk,
		TimeToStockout:      timeToStockout,
		MinOrderFrequency:   wd / lt,
	}, nil
}
