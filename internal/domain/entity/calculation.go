package entity

import "time"

// EOQCalculation snapshot persistido de un cálculo EOQ (entradas + salidas derivadas).
// Informativo: nunca se muta, se puede borrar individualmente.
type EOQCalculation struct {
	ID              string
	ItemID          string
	AnnualDemand    float64
	OrderingCost    float64
	HoldingCost     float64
	UnitCost        float64
	LeadTimeDays    float64
	EOQQuantity     int64
	TotalCost       int64
	ReorderPoint    int64
	CalculationDate time.Time
	CreatedBy       string
	CreatedAt       time.Time
}

// JITCalculation snapshot persistido de un cálculo JIT.
type JITCalculation struct {
	ID              string
	ItemID          string
	DailyDemand     float64
	LeadTimeDays    float64
	SafetyStock     int64
	ReorderPoint    int64
	CalculationDate time.Time
	CreatedBy       string
	CreatedAt       time.Time
}
