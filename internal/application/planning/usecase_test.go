package planning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type fakeItemRepo struct{ items map[string]*entity.Item }

func (r *fakeItemRepo) Create(item *entity.Item) error { return nil }

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return i, nil
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) { return nil, nil }

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error { return nil }

func (r *fakeItemRepo) UpdateStock(id string, s int64) error { return nil }

func (r *fakeItemRepo) List(l, o int) ([]*entity.Item, error) { return nil, nil }

func (r *fakeItemRepo) Delete(id string) error { return nil }

type fakeMovementRepo struct{ usage []repository.MonthlyUsage }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error { return nil }

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) List(l, o int) ([]*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) MonthlyUsageByItem(itemID string, months int) ([]repository.MonthlyUsage, error) {
	return r.usage, nil
}

type fakeEOQRepo struct{ created []*entity.EOQCalculation }

func (r *fakeEOQRepo) Create(c *entity.EOQCalculation) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeEOQRepo) GetByID(id string) (*entity.EOQCalculation, error) { return nil, nil }

func (r *fakeEOQRepo) ListByItem(itemID string, limit, offset int) ([]*entity.EOQCalculation, error) {
	return r.created, nil
}

func (r *fakeEOQRepo) Delete(id string) error { return nil }

type fakeJITRepo struct{ created []*entity.JITCalculation }

func (r *fakeJITRepo) Create(c *entity.JITCalculation) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeJITRepo) GetByID(id string) (*entity.JITCalculation, error) { return nil, nil }

func (r *fakeJITRepo) ListByItem(itemID string, limit, offset int) ([]*entity.JITCalculation, error) {
	return r.created, nil
}

func (r *fakeJITRepo) Delete(id string) error { return nil }

func newTestUseCase(usage []repository.MonthlyUsage) (*UseCase, *fakeEOQRepo, *fakeJITRepo) {
	eoqRepo := &fakeEOQRepo{}
	jitRepo := &fakeJITRepo{}
	itemRepo := &fakeItemRepo{items: map[string]*entity.Item{
		"a1": {ID: "a1", Code: "IT-1", Name: "Tornillos"},
	}}
	movRepo := &fakeMovementRepo{usage: usage}
	return NewUseCase(eoqRepo, jitRepo, itemRepo, movRepo, Config{}), eoqRepo, jitRepo
}

func TestCalculateEOQPersistsSnapshot(t *testing.T) {
	uc, eoqRepo, _ := newTestUseCase(nil)

	res, calc, err := uc.CalculateEOQ(context.Background(), EOQRequest{
		ItemID:       "a1",
		AnnualDemand: 12000,
		OrderingCost: 50000,
		HoldingCost:  10000,
		UserID:       "u1",
	})
	require.NoError(t, err)
	assert.InDelta(t, 346.41, res.EOQ, 0.01)

	require.Len(t, eoqRepo.created, 1)
	assert.Equal(t, calc, eoqRepo.created[0])
	assert.Equal(t, int64(346), calc.EOQQuantity)
	// sin lead time explícito aplica el configurado (7 días)
	assert.Equal(t, float64(7), calc.LeadTimeDays)
	assert.Equal(t, int64(230), calc.ReorderPoint) // 12000/365*7 = 230.1
	assert.Equal(t, "u1", calc.CreatedBy)
	assert.False(t, calc.CalculationDate.IsZero())
}

func TestCalculateEOQItemNotFound(t *testing.T) {
	uc, eoqRepo, _ := newTestUseCase(nil)

	_, _, err := uc.CalculateEOQ(context.Background(), EOQRequest{
		ItemID: "nope", AnnualDemand: 100, OrderingCost: 10, HoldingCost: 5,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, eoqRepo.created)
}

func TestCalculateEOQInvalidParameterNotPersisted(t *testing.T) {
	uc, eoqRepo, _ := newTestUseCase(nil)

	_, _, err := uc.CalculateEOQ(context.Background(), EOQRequest{
		ItemID: "a1", AnnualDemand: 100, OrderingCost: 10, HoldingCost: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Empty(t, eoqRepo.created)
}

func TestCalculateJITPersistsSnapshot(t *testing.T) {
	uc, _, jitRepo := newTestUseCase(nil)

	res, calc, err := uc.CalculateJIT(context.Background(), JITRequest{
		ItemID:       "a1",
		DailyDemand:  50,
		LeadTimeDays: 7,
		SafetyStock:  50,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(400), res.ReorderPoint)

	require.Len(t, jitRepo.created, 1)
	assert.Equal(t, int64(400), calc.ReorderPoint)
	assert.Equal(t, int64(50), calc.SafetyStock)
}

func TestEstimateDemand(t *testing.T) {
	usage := []repository.MonthlyUsage{
		{Month: "2024-01", TotalUsage: 300, AvgDailyUsage: 9.7},
		{Month: "2024-02", TotalUsage: 290, AvgDailyUsage: 10.0},
		{Month: "2024-03", TotalUsage: 310, AvgDailyUsage: 10.0},
	}
	uc, _, _ := newTestUseCase(usage)

	est, err := uc.EstimateDemand(context.Background(), "a1", 12)
	require.NoError(t, err)

	assert.Equal(t, 3, est.DataPeriodMonths)
	assert.InDelta(t, 300.0, est.AvgMonthlyUsage, 0.01)
	assert.Equal(t, int64(3600), est.EstimatedAnnualDemand)
	assert.InDelta(t, 9.9, est.AvgDailyDemand, 0.01)
	assert.Len(t, est.Monthly, 3)
}

func TestEstimateDemandNoHistory(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	est, err := uc.EstimateDemand(context.Background(), "a1", 0)
	require.NoError(t, err)

	assert.Equal(t, 0, est.DataPeriodMonths)
	assert.Zero(t, est.EstimatedAnnualDemand)
	assert.Zero(t, est.AvgDailyDemand)
	assert.Empty(t, est.Monthly)
}

func TestEstimateDemandItemNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	_, err := uc.EstimateDemand(context.Background(), "nope", 12)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
