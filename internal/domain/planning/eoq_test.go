package planning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/planning"
)

// Escenario de referencia: D=12000, S=50000, H=10000.
// EOQ = sqrt(2*12000*50000/10000) = sqrt(120000) ≈ 346.41; con EOQ en el punto
// óptimo los costos de pedido y de mantenimiento coinciden (≈ 1.732.051).
func TestCalculateEOQ_EscenarioReferencia(t *testing.T) {
	res, err := planning.CalculateEOQ(planning.EOQInput{
		AnnualDemand: 12000,
		OrderingCost: 50000,
		HoldingCost:  10000,
	})
	require.NoError(t, err)

	wantEOQ := math.Sqrt(2 * 12000 * 50000 / 10000.0)
	assert.InDelta(t, wantEOQ, res.EOQ, 1e-9)
	assert.Equal(t, int64(346), int64(math.Round(res.EOQ)))

	// En el óptimo, costo de pedido == costo de mantenimiento
	assert.InDelta(t, res.TotalOrderingCost, res.TotalHoldingCost, 1e-6)
	assert.InDelta(t, (12000/wantEOQ)*50000, res.TotalOrderingCost, 1e-6)
	assert.InDelta(t, 1732051, math.Round(res.TotalOrderingCost), 1.0)

	// Sin costo unitario, el costo total es pedido + mantenimiento
	assert.InDelta(t, res.TotalOrderingCost+res.TotalHoldingCost, res.TotalCost, 1e-6)

	assert.InDelta(t, 12000/wantEOQ, res.NumberOfOrders, 1e-9)
	assert.InDelta(t, 365/(12000/wantEOQ), res.TimeBetweenOrders, 1e-9)

	// Lead time por defecto de 7 días
	assert.InDelta(t, (12000.0/365)*7, res.ReorderPoint, 1e-9)
}

func TestCalculateEOQ_CostoUnitarioSumaAlTotal(t *testing.T) {
	sin, err := planning.CalculateEOQ(planning.EOQInput{AnnualDemand: 1000, OrderingCost: 50, HoldingCost: 2})
	require.NoError(t, err)
	con, err := planning.CalculateEOQ(planning.EOQInput{AnnualDemand: 1000, OrderingCost: 50, HoldingCost: 2, UnitCost: 3})
	require.NoError(t, err)

	assert.InDelta(t, 1000*3.0, con.TotalItemCost, 1e-9)
	assert.InDelta(t, sin.TotalCost+3000, con.TotalCost, 1e-9)
}

func TestCalculateEOQ_LeadTimeExplicito(t *testing.T) {
	res, err := planning.CalculateEOQ(planning.EOQInput{
		AnnualDemand: 3650,
		OrderingCost: 10,
		HoldingCost:  1,
		LeadTimeDays: 14,
	})
	require.NoError(t, err)
	assert.InDelta(t, (3650.0/365)*14, res.ReorderPoint, 1e-9)
}

// Demanda cero: resultado todo-cero, nunca NaN ni error.
func TestCalculateEOQ_DemandaCero(t *testing.T) {
	res, err := planning.CalculateEOQ(planning.EOQInput{
		AnnualDemand: 0,
		OrderingCost: 50000,
		HoldingCost:  10000,
	})
	require.NoError(t, err)

	assert.Zero(t, res.EOQ)
	assert.Zero(t, res.TotalCost)
	assert.Zero(t, res.NumberOfOrders)
	assert.Zero(t, res.TimeBetweenOrders)
	assert.Zero(t, res.ReorderPoint)
	assert.False(t, math.IsNaN(res.TimeBetweenOrders))
}

func TestCalculateEOQ_ParametrosInvalidos(t *testing.T) {
	cases := []struct {
		name string
		in   planning.EOQInput
	}{
		{"holding cost cero", planning.EOQInput{AnnualDemand: 100, OrderingCost: 10, HoldingCost: 0}},
		{"holding cost negativo", planning.EOQInput{AnnualDemand: 100, OrderingCost: 10, HoldingCost: -5}},
		{"demanda negativa", planning.EOQInput{AnnualDemand: -1, OrderingCost: 10, HoldingCost: 1}},
		{"costo pedido negativo", planning.EOQInput{AnnualDemand: 100, OrderingCost: -10, HoldingCost: 1}},
		{"costo unitario negativo", planning.EOQInput{AnnualDemand: 100, OrderingCost: 10, HoldingCost: 1, UnitCost: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := planning.CalculateEOQ(tc.in)
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)

			var pErr *domain.InvalidParameterError
			require.ErrorAs(t, err, &pErr)
			assert.NotEmpty(t, pErr.Name)
		})
	}
}
