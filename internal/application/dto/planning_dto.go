package dto

import (
	"math"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/planning"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domainplanning "github.com/jhoicas/almacen-api/internal/domain/planning"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// EOQCalculationRequest body de POST /api/calculations/eoq.
// lead_time_days 0 => valor configurado del servidor.
type EOQCalculationRequest struct {
	ItemID       string  `json:"item_id"`
	AnnualDemand float64 `json:"annual_demand"`
	OrderingCost float64 `json:"ordering_cost"`
	HoldingCost  float64 `json:"holding_cost"`
	UnitCost     float64 `json:"unit_cost,omitempty"`
	LeadTimeDays float64 `json:"lead_time_days,omitempty"`
}

// EOQResultDTO métricas EOQ redondeadas para presentación: enteros salvo
// number_of_orders, que se muestra con un decimal.
type EOQResultDTO struct {
	EOQQuantity       int64   `json:"eoq_quantity"`
	TotalOrderingCost int64   `json:"total_ordering_cost"`
	TotalHoldingCost  int64   `json:"total_holding_cost"`
	TotalItemCost     int64   `json:"total_item_cost"`
	TotalCost         int64   `json:"total_cost"`
	NumberOfOrders    float64 `json:"number_of_orders"`
	TimeBetweenOrders int64   `json:"time_between_orders_days"`
	ReorderPoint      int64   `json:"reorder_point"`
}

// FromEOQResult aplica el redondeo de presentación al resultado crudo.
func FromEOQResult(r *domainplanning.EOQResult) EOQResultDTO {
	return EOQResultDTO{
		EOQQuantity:       roundInt(r.EOQ),
		TotalOrderingCost: roundInt(r.TotalOrderingCost),
		TotalHoldingCost:  roundInt(r.TotalHoldingCost),
		TotalItemCost:     roundInt(r.TotalItemCost),
		TotalCost:         roundInt(r.TotalCost),
		NumberOfOrders:    round1(r.NumberOfOrders),
		TimeBetweenOrders: roundInt(r.TimeBetweenOrders),
		ReorderPoint:      roundInt(r.ReorderPoint),
	}
}

// EOQCalculationDTO snapshot EOQ persistido.
type EOQCalculationDTO struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	AnnualDemand    float64   `json:"annual_demand"`
	OrderingCost    float64   `json:"ordering_cost"`
	HoldingCost     float64   `json:"holding_cost"`
	UnitCost        float64   `json:"unit_cost,omitempty"`
	LeadTimeDays    float64   `json:"lead_time_days"`
	EOQQuantity     int64     `json:"eoq_quantity"`
	TotalCost       int64     `json:"total_cost"`
	ReorderPoint    int64     `json:"reorder_point"`
	CalculationDate time.Time `json:"calculation_date"`
	CreatedBy       string    `json:"created_by,omitempty"`
}

// FromEOQCalculation mapea el snapshot persistido.
func FromEOQCalculation(c *entity.EOQCalculation) EOQCalculationDTO {
	return EOQCalculationDTO{
		ID:              c.ID,
		ItemID:          c.ItemID,
		AnnualDemand:    c.AnnualDemand,
		OrderingCost:    c.OrderingCost,
		HoldingCost:     c.HoldingCost,
		UnitCost:        c.UnitCost,
		LeadTimeDays:    c.LeadTimeDays,
		EOQQuantity:     c.EOQQuantity,
		TotalCost:       c.TotalCost,
		ReorderPoint:    c.ReorderPoint,
		CalculationDate: c.CalculationDate,
		CreatedBy:       c.CreatedBy,
	}
}

// FromEOQCalculations mapea una lista de snapshots EOQ.
func FromEOQCalculations(cs []*entity.EOQCalculation) []EOQCalculationDTO {
	out := make([]EOQCalculationDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromEOQCalculation(c))
	}
	return out
}

// JITCalculationRequest body de POST /api/calculations/jit.
// working_days 0 => valor configurado del servidor.
type JITCalculationRequest struct {
	ItemID       string  `json:"item_id"`
	DailyDemand  float64 `json:"daily_demand"`
	LeadTimeDays float64 `json:"lead_time_days"`
	SafetyStock  float64 `json:"safety_stock,omitempty"`
	WorkingDays  float64 `json:"working_days,omitempty"`
}

// JITResultDTO métricas JIT redondeadas para presentación: enteros salvo
// time_to_stockout_days, que se muestra con un decimal.
type JITResultDTO struct {
	ReorderPoint        int64   `json:"reorder_point"`
	AnnualDemand        int64   `json:"annual_demand"`
	TotalLeadTimeDemand int64   `json:"total_lead_time_demand"`
	AverageInventory    int64   `json:"average_inventory"`
	StockoutRisk        string  `json:"stockout_risk"`
	TimeToStockout      float64 `json:"time_to_stockout_days"`
	MinOrderFrequency   int64   `json:"min_order_frequency"`
}

// FromJITResult aplica el redondeo de presentación al resultado crudo.
func FromJITResult(r *domainplanning.JITResult) JITResultDTO {
	return JITResultDTO{
		ReorderPoint:        roundInt(r.ReorderPoint),
		AnnualDemand:        roundInt(r.AnnualDemand),
		TotalLeadTimeDemand: roundInt(r.TotalLeadTimeDemand),
		AverageInventory:    roundInt(r.AverageInventory),
		StockoutRisk:        r.StockoutRisk,
		TimeToStockout:      round1(r.TimeToStockout),
		MinOrderFrequency:   roundInt(r.MinOrderFrequency),
	}
}

// JITCalculationDTO snapshot JIT persistido.
type JITCalculationDTO struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	DailyDemand     float64   `json:"daily_demand"`
	LeadTimeDays    float64   `json:"lead_time_days"`
	SafetyStock     int64     `json:"safety_stock"`
	ReorderPoint    int64     `json:"reorder_point"`
	CalculationDate time.Time `json:"calculation_date"`
	CreatedBy       string    `json:"created_by,omitempty"`
}

// FromJITCalculation mapea el snapshot persistido.
func FromJITCalculation(c *entity.JITCalculation) JITCalculationDTO {
	return JITCalculationDTO{
		ID:              c.ID,
		ItemID:          c.ItemID,
		DailyDemand:     c.DailyDemand,
		LeadTimeDays:    c.LeadTimeDays,
		SafetyStock:     c.SafetyStock,
		ReorderPoint:    c.ReorderPoint,
		CalculationDate: c.CalculationDate,
		CreatedBy:       c.CreatedBy,
	}
}

// FromJITCalculations mapea una lista de snapshots JIT.
func FromJITCalculations(cs []*entity.JITCalculation) []JITCalculationDTO {
	out := make([]JITCalculationDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromJITCalculation(c))
	}
	return out
}

// MonthlyUsageDTO uso mensual histórico de un artículo.
type MonthlyUsageDTO struct {
	Month         string  `json:"month"` // YYYY-MM
	TotalUsage    int64   `json:"total_usage"`
	AvgDailyUsage float64 `json:"avg_daily_usage"`
}

// DemandEstimateDTO respuesta de GET /api/calculations/historical-data/:itemId.
type DemandEstimateDTO struct {
	Monthly               []MonthlyUsageDTO `json:"monthly_usage"`
	AvgMonthlyUsage       float64           `json:"avg_monthly_usage"`
	EstimatedAnnualDemand int64             `json:"estimated_annual_demand"`
	AvgDailyDemand        float64           `json:"avg_daily_demand"`
	DataPeriodMonths      int               `json:"data_period_months"`
}

// FromDemandEstimate mapea la estimación de demanda.
func FromDemandEstimate(e *planning.DemandEstimate) DemandEstimateDTO {
	monthly := make([]MonthlyUsageDTO, 0, len(e.Monthly))
	for _, m := range e.Monthly {
		monthly = append(monthly, fromMonthlyUsage(m))
	}
	return DemandEstimateDTO{
		Monthly:               monthly,
		AvgMonthlyUsage:       round1(e.AvgMonthlyUsage),
		EstimatedAnnualDemand: e.EstimatedAnnualDemand,
		AvgDailyDemand:        round1(e.AvgDailyDemand),
		DataPeriodMonths:      e.DataPeriodMonths,
	}
}

func fromMonthlyUsage(m repository.MonthlyUsage) MonthlyUsageDTO {
	return MonthlyUsageDTO{
		Month:         m.Month,
		TotalUsage:    m.TotalUsage,
		AvgDailyUsage: round1(m.AvgDailyUsage),
	}
}

func roundInt(v float64) int64 {
	return int64(math.Round(v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
