package planning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/planning"
)

// Escenario de referencia: dd=50, lt=7, ss=50.
func TestCalculateJIT_EscenarioReferencia(t *testing.T) {
	res, err := planning.CalculateJIT(planning.JITInput{
		DailyDemand:  50,
		LeadTimeDays: 7,
		SafetyStock:  50,
	})
	require.NoError(t, err)

	assert.InDelta(t, 400, res.ReorderPoint, 1e-9) // 50*7 + 50
	assert.InDelta(t, 225, res.AverageInventory, 1e-9)
	assert.Equal(t, planning.StockoutRiskLow, res.StockoutRisk)
	assert.InDelta(t, 350, res.TotalLeadTimeDemand, 1e-9)
	assert.InDelta(t, 50*365.0, res.AnnualDemand, 1e-9)
	assert.InDelta(t, 1.0, res.TimeToStockout, 1e-9) // 50/50
	assert.InDelta(t, 365.0/7, res.MinOrderFrequency, 1e-9)
}

func TestCalculateJIT_SinSafetyStockRiesgoAlto(t *testing.T) {
	res, err := planning.CalculateJIT(planning.JITInput{DailyDemand: 20, LeadTimeDays: 5})
	require.NoError(t, err)

	assert.Equal(t, planning.StockoutRiskHigh, res.StockoutRisk)
	assert.InDelta(t, 100, res.ReorderPoint, 1e-9)
	assert.Zero(t, res.TimeToStockout)
}

// Demanda diaria cero: TimeToStockout se define como 0 en lugar de Inf.
func TestCalculateJIT_DemandaCero(t *testing.T) {
	res, err := planning.CalculateJIT(planning.JITInput{DailyDemand: 0, LeadTimeDays: 3, SafetyStock: 10})
	require.NoError(t, err)

	assert.Zero(t, res.ReorderPoint-10) // solo el safety stock
	assert.Zero(t, res.TimeToStockout)
	assert.False(t, math.IsInf(res.TimeToStockout, 1))
}

func TestCalculateJIT_DiasLaborablesPersonalizados(t *testing.T) {
	res, err := planning.CalculateJIT(planning.JITInput{
		DailyDemand:  10,
		LeadTimeDays: 10,
		WorkingDays:  250,
	})
	require.NoError(t, err)

	assert.InDelta(t, 2500, res.AnnualDemand, 1e-9)
	assert.InDelta(t, 25, res.MinOrderFrequency, 1e-9)
}

func TestCalculateJIT_LeadTimeCeroEsInvalido(t *testing.T) {
	res, err := planning.CalculateJIT(planning.JITInput{DailyDemand: 50, LeadTimeDays: 0})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	var pErr *domain.InvalidParameterError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "lead_time", pErr.Name)
}

func TestCalculateJIT_NegativosInvalidos(t *testing.T) {
	for name, in := range map[string]planning.JITInput{
		"demanda negativa":      {DailyDemand: -1, LeadTimeDays: 5},
		"safety stock negativo": {DailyDemand: 1, LeadTimeDays: 5, SafetyStock: -1},
		"dias negativos":        {DailyDemand: 1, LeadTimeDays: 5, WorkingDays: -1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := planning.CalculateJIT(in)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}
