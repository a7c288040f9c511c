package receiving

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ---------------------------------------------------------------------------
// Fakes en memoria. El runner restaura el estado completo si la función
// devuelve error, imitando el rollback de la transacción real.
// ---------------------------------------------------------------------------

type fakeStore struct {
	items     map[string]*entity.Item
	movements []*entity.StockMovement
	receipts  map[string]*entity.Receipt
	lines     []*entity.ReceiptLine
}

func newFakeStore(items ...*entity.Item) *fakeStore {
	s := &fakeStore{
		items:    make(map[string]*entity.Item),
		receipts: make(map[string]*entity.Receipt),
	}
	for _, i := range items {
		cp := *i
		s.items[i.ID] = &cp
	}
	return s
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	i, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) { return nil, nil }

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error { return nil }

func (r *fakeItemRepo) UpdateStock(itemID string, newStock int64) error {
	i, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	i.CurrentStock = newStock
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }

func (r *fakeItemRepo) Delete(id string) error { return nil }

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

func (r *fakeMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) MonthlyUsageByItem(itemID string, months int) ([]repository.MonthlyUsage, error) {
	return nil, nil
}

type fakeReceiptRepo struct{ s *fakeStore }

func (r *fakeReceiptRepo) Create(rc *entity.Receipt) error {
	for _, existing := range r.s.receipts {
		if existing.ReceiptNumber == rc.ReceiptNumber {
			return domain.ErrConflict
		}
	}
	cp := *rc
	cp.Lines = nil
	r.s.receipts[rc.ID] = &cp
	return nil
}

func (r *fakeReceiptRepo) CreateLine(line *entity.ReceiptLine) error {
	cp := *line
	r.s.lines = append(r.s.lines, &cp)
	return nil
}

func (r *fakeReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	rc, ok := r.s.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *rc
	for _, l := range r.s.lines {
		if l.ReceiptID == id {
			cp.Lines = append(cp.Lines, *l)
		}
	}
	return &cp, nil
}

func (r *fakeReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	out := make([]*entity.Receipt, 0, len(r.s.receipts))
	for id := range r.s.receipts {
		rc, _ := r.GetByID(id)
		out = append(out, rc)
	}
	return out, nil
}

func (r *fakeReceiptRepo) Update(rc *entity.Receipt) error {
	cp := *rc
	cp.Lines = nil
	r.s.receipts[rc.ID] = &cp
	return nil
}

func (r *fakeReceiptRepo) DeleteLinesByReceipt(receiptID string) error {
	kept := r.s.lines[:0]
	for _, l := range r.s.lines {
		if l.ReceiptID != receiptID {
			kept = append(kept, l)
		}
	}
	r.s.lines = kept
	return nil
}

func (r *fakeReceiptRepo) Delete(id string) error {
	delete(r.s.receipts, id)
	return r.DeleteLinesByReceipt(id)
}

func (r *fakeReceiptRepo) MaxReceiptNumber(prefix string) (string, error) {
	var nums []string
	for _, rc := range r.s.receipts {
		if strings.HasPrefix(rc.ReceiptNumber, prefix) {
			nums = append(nums, rc.ReceiptNumber)
		}
	}
	if len(nums) == 0 {
		return "", nil
	}
	sort.Strings(nums)
	return nums[len(nums)-1], nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r *fakeTxRunner) RunReceiving(
	ctx context.Context,
	fn func(repository.ReceiptRepository, repository.StockMovementRepository, repository.ItemRepository) error,
) error {
	snap := r.snapshot()
	err := fn(&fakeReceiptRepo{s: r.s}, &fakeMovementRepo{s: r.s}, &fakeItemRepo{s: r.s})
	if err != nil {
		*r.s = snap
		return err
	}
	return nil
}

func (r *fakeTxRunner) snapshot() fakeStore {
	snap := fakeStore{
		items:    make(map[string]*entity.Item, len(r.s.items)),
		receipts: make(map[string]*entity.Receipt, len(r.s.receipts)),
	}
	for k, v := range r.s.items {
		cp := *v
		snap.items[k] = &cp
	}
	for k, v := range r.s.receipts {
		cp := *v
		snap.receipts[k] = &cp
	}
	snap.movements = append([]*entity.StockMovement(nil), r.s.movements...)
	snap.lines = append([]*entity.ReceiptLine(nil), r.s.lines...)
	return snap
}

func newTestUseCase(items ...*entity.Item) (*UseCase, *fakeStore) {
	s := newFakeStore(items...)
	uc := NewUseCase(&fakeTxRunner{s: s}, ledger.NewUseCase(nil, nil), &fakeReceiptRepo{s: s})
	return uc, s
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCreatePostsMovements(t *testing.T) {
	uc, s := newTestUseCase(
		&entity.Item{ID: "a1", Code: "IT-1", Name: "Tornillos", CurrentStock: 5},
		&entity.Item{ID: "a2", Code: "IT-2", Name: "Tuercas", CurrentStock: 0},
	)

	date := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	r, err := uc.Create(context.Background(), CreateInput{
		ReceiptDate: date,
		TotalAmount: decimal.NewFromInt(150),
		UserID:      "u1",
		Lines: []LineInput{
			{ItemID: "a1", QuantityOrdered: 10, QuantityReceived: 10, UnitPrice: decimal.NewFromInt(10)},
			{ItemID: "a2", QuantityOrdered: 5, QuantityReceived: 5, UnitPrice: decimal.NewFromInt(10)},
			{ItemID: "a1", QuantityOrdered: 3, QuantityReceived: 0}, // pendiente, no genera movimiento
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "RCPT-20240115-001", r.ReceiptNumber)
	assert.Equal(t, entity.ReceiptStatusCompleted, r.Status)
	require.Len(t, r.Lines, 3)

	// solo las líneas con cantidad recibida > 0 tocan el ledger
	require.Len(t, s.movements, 2)
	for _, m := range s.movements {
		assert.Equal(t, entity.MovementTypeIn, m.MovementType)
		assert.Equal(t, entity.ReferenceTypePurchase, m.ReferenceType)
		assert.Equal(t, r.ID, m.ReferenceID)
		assert.Contains(t, m.Notes, r.ReceiptNumber)
	}
	assert.Equal(t, int64(15), s.items["a1"].CurrentStock)
	assert.Equal(t, int64(5), s.items["a2"].CurrentStock)
}

func TestCreateSequencePerDay(t *testing.T) {
	uc, _ := newTestUseCase(&entity.Item{ID: "a1", CurrentStock: 0})

	day1 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

	r1, err := uc.Create(context.Background(), CreateInput{ReceiptDate: day1})
	require.NoError(t, err)
	r2, err := uc.Create(context.Background(), CreateInput{ReceiptDate: day1})
	require.NoError(t, err)
	r3, err := uc.Create(context.Background(), CreateInput{ReceiptDate: day2})
	require.NoError(t, err)

	assert.Equal(t, "RCPT-20240115-001", r1.ReceiptNumber)
	assert.Equal(t, "RCPT-20240115-002", r2.ReceiptNumber)
	// el día siguiente reinicia la secuencia
	assert.Equal(t, "RCPT-20240116-001", r3.ReceiptNumber)
}

func TestCreateExplicitNumberKept(t *testing.T) {
	uc, _ := newTestUseCase()

	r, err := uc.Create(context.Background(), CreateInput{
		ReceiptNumber: "RCPT-MANUAL-7",
		ReceiptDate:   time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "RCPT-MANUAL-7", r.ReceiptNumber)
}

func TestCreateDuplicateNumberConflicts(t *testing.T) {
	uc, s := newTestUseCase()

	_, err := uc.Create(context.Background(), CreateInput{ReceiptNumber: "RCPT-X", ReceiptDate: time.Now()})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), CreateInput{ReceiptNumber: "RCPT-X", ReceiptDate: time.Now()})
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Len(t, s.receipts, 1)
}

func TestCreateRollsBackOnBadLine(t *testing.T) {
	uc, s := newTestUseCase(&entity.Item{ID: "a1", CurrentStock: 5})

	_, err := uc.Create(context.Background(), CreateInput{
		ReceiptDate: time.Now(),
		Lines: []LineInput{
			{ItemID: "a1", QuantityReceived: 10},
			{ItemID: "missing", QuantityReceived: 3},
		},
	})
	require.ErrorIs(t, err, domain.ErrItemNotFound)

	// nada queda a medias: ni recepción, ni líneas, ni stock fantasma
	assert.Empty(t, s.receipts)
	assert.Empty(t, s.lines)
	assert.Empty(t, s.movements)
	assert.Equal(t, int64(5), s.items["a1"].CurrentStock)
}

func TestCreateRejectsNegativeQuantities(t *testing.T) {
	uc, _ := newTestUseCase(&entity.Item{ID: "a1"})

	_, err := uc.Create(context.Background(), CreateInput{
		Lines: []LineInput{{ItemID: "a1", QuantityReceived: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateDoesNotRepostMovements(t *testing.T) {
	uc, s := newTestUseCase(&entity.Item{ID: "a1", CurrentStock: 0})

	r, err := uc.Create(context.Background(), CreateInput{
		ReceiptDate: time.Now(),
		Lines:       []LineInput{{ItemID: "a1", QuantityReceived: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), s.items["a1"].CurrentStock)

	err = uc.Update(context.Background(), r.ID, UpdateInput{
		ReceiptNumber: r.ReceiptNumber,
		ReceiptDate:   r.ReceiptDate,
		Status:        entity.ReceiptStatusCompleted,
		Notes:         "corregida",
		Lines:         []LineInput{{ItemID: "a1", QuantityReceived: 99}},
	})
	require.NoError(t, err)

	// el stock solo cambió al crear; la edición no repostea
	assert.Equal(t, int64(10), s.items["a1"].CurrentStock)
	assert.Len(t, s.movements, 1)

	got, err := uc.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, "corregida", got.Notes)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, int64(99), got.Lines[0].QuantityReceived)
}

func TestDeleteCompletedRejected(t *testing.T) {
	uc, _ := newTestUseCase()

	r, err := uc.Create(context.Background(), CreateInput{ReceiptDate: time.Now()})
	require.NoError(t, err)
	require.Equal(t, entity.ReceiptStatusCompleted, r.Status)

	err = uc.Delete(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeletePending(t *testing.T) {
	uc, s := newTestUseCase()

	r, err := uc.Create(context.Background(), CreateInput{
		ReceiptDate: time.Now(),
		Status:      entity.ReceiptStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), r.ID))
	assert.Empty(t, s.receipts)
}

func TestDeleteNotFound(t *testing.T) {
	uc, _ := newTestUseCase()
	err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
