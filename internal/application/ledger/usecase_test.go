package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ---------------------------------------------------------------------------
// Fakes en memoria con semántica transaccional: el runner toma un snapshot
// antes de ejecutar y lo restaura si la función devuelve error.
// ---------------------------------------------------------------------------

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, i := range items {
		cp := *i
		r.items[i.ID] = &cp
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, i := range r.items {
		if i.Code == code {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}
	stock := existing.CurrentStock
	cp := *item
	cp.CurrentStock = stock
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateStock(itemID string, newStock int64) error {
	i, ok := r.items[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	i.CurrentStock = newStock
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) snapshot() map[string]*entity.Item {
	snap := make(map[string]*entity.Item, len(r.items))
	for k, v := range r.items {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) MonthlyUsageByItem(itemID string, months int) ([]repository.MonthlyUsage, error) {
	return nil, nil
}

type fakeTxRunner struct {
	items *fakeItemRepo
	movs  *fakeMovementRepo
}

func (r *fakeTxRunner) Run(
	ctx context.Context,
	fn func(repository.StockMovementRepository, repository.ItemRepository) error,
) error {
	itemSnap := r.items.snapshot()
	movCount := len(r.movs.movements)
	if err := fn(r.movs, r.items); err != nil {
		r.items.items = itemSnap
		r.movs.movements = r.movs.movements[:movCount]
		return err
	}
	return nil
}

func newTestUseCase(items ...*entity.Item) (*UseCase, *fakeItemRepo, *fakeMovementRepo) {
	itemRepo := newFakeItemRepo(items...)
	movRepo := &fakeMovementRepo{}
	uc := NewUseCase(&fakeTxRunner{items: itemRepo, movs: movRepo}, movRepo)
	return uc, itemRepo, movRepo
}

func testItem(id string, stock int64) *entity.Item {
	return &entity.Item{ID: id, Code: "IT-" + id, Name: "Artículo " + id, CurrentStock: stock, Status: "active"}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestApplyMovementIn(t *testing.T) {
	uc, items, movs := newTestUseCase(testItem("a1", 10))

	m, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeIn,
		Quantity:     5,
		UserID:       "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), m.Quantity)

	got, _ := items.GetByID("a1")
	assert.Equal(t, int64(15), got.CurrentStock)
	require.Len(t, movs.movements, 1)
}

func TestApplyMovementOut(t *testing.T) {
	uc, items, _ := newTestUseCase(testItem("a1", 10))

	m, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeOut,
		Quantity:     4,
	})
	require.NoError(t, err)
	// las salidas se registran con signo negativo aunque el caller mande positivo
	assert.Equal(t, int64(-4), m.Quantity)

	got, _ := items.GetByID("a1")
	assert.Equal(t, int64(6), got.CurrentStock)
}

func TestApplyMovementOutToZero(t *testing.T) {
	uc, items, _ := newTestUseCase(testItem("a1", 10))

	_, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeOut,
		Quantity:     10,
	})
	require.NoError(t, err)

	got, _ := items.GetByID("a1")
	assert.Equal(t, int64(0), got.CurrentStock)
}

func TestApplyMovementInsufficientStock(t *testing.T) {
	uc, items, movs := newTestUseCase(testItem("a1", 3))

	_, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeOut,
		Quantity:     5,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var detail *domain.InsufficientStockError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "a1", detail.ItemID)
	assert.Equal(t, int64(3), detail.CurrentStock)
	assert.Equal(t, int64(5), detail.Requested)

	// el rechazo no deja rastro: ni movimiento ni cambio de stock
	got, _ := items.GetByID("a1")
	assert.Equal(t, int64(3), got.CurrentStock)
	assert.Empty(t, movs.movements)
}

func TestApplyMovementAdjustment(t *testing.T) {
	uc, items, _ := newTestUseCase(testItem("a1", 10))

	m, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeAdjustment,
		Quantity:     -3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), m.Quantity)

	got, _ := items.GetByID("a1")
	assert.Equal(t, int64(7), got.CurrentStock)
}

func TestApplyMovementAdjustmentBelowZero(t *testing.T) {
	uc, _, _ := newTestUseCase(testItem("a1", 2))

	_, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "a1",
		MovementType: entity.MovementTypeAdjustment,
		Quantity:     -5,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApplyMovementItemNotFound(t *testing.T) {
	uc, _, movs := newTestUseCase()

	_, err := uc.ApplyMovement(context.Background(), MovementInput{
		ItemID:       "nope",
		MovementType: entity.MovementTypeIn,
		Quantity:     1,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, movs.movements)
}

func TestApplyMovementInvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase(testItem("a1", 10))

	cases := []struct {
		name string
		in   MovementInput
	}{
		{"cantidad cero", MovementInput{ItemID: "a1", MovementType: entity.MovementTypeIn, Quantity: 0}},
		{"tipo desconocido", MovementInput{ItemID: "a1", MovementType: "teleport", Quantity: 1}},
		{"referencia desconocida", MovementInput{ItemID: "a1", MovementType: entity.MovementTypeIn, Quantity: 1, ReferenceType: "invoice"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ApplyMovement(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// El contador de stock nunca se separa de la suma del log: tras una mezcla de
// movimientos aceptados y rechazados, current_stock == inicial + suma firmada.
func TestStockMatchesMovementLog(t *testing.T) {
	const initial = int64(20)
	uc, items, movs := newTestUseCase(testItem("a1", initial))

	inputs := []MovementInput{
		{ItemID: "a1", MovementType: entity.MovementTypeIn, Quantity: 15},
		{ItemID: "a1", MovementType: entity.MovementTypeOut, Quantity: 8},
		{ItemID: "a1", MovementType: entity.MovementTypeOut, Quantity: 100}, // rechazado
		{ItemID: "a1", MovementType: entity.MovementTypeAdjustment, Quantity: -2},
		{ItemID: "a1", MovementType: entity.MovementTypeIn, Quantity: 3},
		{ItemID: "a1", MovementType: entity.MovementTypeAdjustment, Quantity: -50}, // rechazado
	}
	for _, in := range inputs {
		uc.ApplyMovement(context.Background(), in) //nolint:errcheck
	}

	var sum int64
	for _, m := range movs.movements {
		sum += m.Quantity
	}
	got, _ := items.GetByID("a1")
	assert.Equal(t, initial+sum, got.CurrentStock)
	assert.GreaterOrEqual(t, got.CurrentStock, int64(0))
	assert.Len(t, movs.movements, 4)
}

func TestSignedQuantity(t *testing.T) {
	cases := []struct {
		movementType string
		quantity     int64
		want         int64
		wantErr      bool
	}{
		{entity.MovementTypeIn, 5, 5, false},
		{entity.MovementTypeIn, -5, 5, false},
		{entity.MovementTypeOut, 5, -5, false},
		{entity.MovementTypeOut, -5, -5, false},
		{entity.MovementTypeAdjustment, 5, 5, false},
		{entity.MovementTypeAdjustment, -5, -5, false},
		{entity.MovementTypeIn, 0, 0, true},
		{"unknown", 5, 0, true},
	}
	for _, tc := range cases {
		got, err := signedQuantity(tc.movementType, tc.quantity)
		if tc.wantErr {
			assert.Error(t, err, "%s %d", tc.movementType, tc.quantity)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %d", tc.movementType, tc.quantity)
	}
}
