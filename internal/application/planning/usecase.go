// Package planning (aplicación) calcula y persiste snapshots EOQ/JIT y deriva
// entradas sugeridas desde el historial de movimientos.
package planning

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/planning"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Config valores por defecto de planificación (ver pkg/config).
type Config struct {
	LeadTimeDays int
	WorkingDays  int
}

// UseCase casos de uso de planificación de inventario.
type UseCase struct {
	eoqRepo  repository.EOQCalculationRepository
	jitRepo  repository.JITCalculationRepository
	itemRepo repository.ItemRepository
	movRepo  repository.StockMovementRepository
	cfg      Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	eoqRepo repository.EOQCalculationRepository,
	jitRepo repository.JITCalculationRepository,
	itemRepo repository.ItemRepository,
	movRepo repository.StockMovementRepository,
	cfg Config,
) *UseCase {
	if cfg.LeadTimeDays <= 0 {
		cfg.LeadTimeDays = planning.DefaultLeadTimeDays
	}
	if cfg.WorkingDays <= 0 {
		cfg.WorkingDays = planning.DefaultWorkingDays
	}
	return &UseCase{eoqRepo: eoqRepo, jitRepo: jitRepo, itemRepo: itemRepo, movRepo: movRepo, cfg: cfg}
}

// EOQRequest entrada para calcular y guardar un snapshot EOQ.
// LeadTimeDays 0 => valor de configuración (por defecto 7).
type EOQRequest struct {
	ItemID          string
	AnnualDemand    float64
	OrderingCost    float64
	HoldingCost     float64
	UnitCost        float64
	LeadTimeDays    float64
	CalculationDate time.Time
	UserID          string
}

// CalculateEOQ valida el artículo, evalúa el calculador puro y persiste el snapshot.
// Devuelve el resultado sin redondear junto con el registro guardado.
func (uc *UseCase) CalculateEOQ(ctx context.Context, in EOQRequest) (*planning.EOQResult, *entity.EOQCalculation, error) {
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}

	leadTime := in.LeadTimeDays
	if leadTime == 0 {
		leadTime = float64(uc.cfg.LeadTimeDays)
	}
	res, err := planning.CalculateEOQ(planning.EOQInput{
		AnnualDemand: in.AnnualDemand,
		OrderingCost: in.OrderingCost,
		HoldingCost:  in.HoldingCost,
		UnitCost:     in.UnitCost,
		LeadTimeDays: leadTime,
	})
	if err != nil {
		return nil, nil, err
	}

	date := in.CalculationDate
	if date.IsZero() {
		date = time.Now()
	}
	calc := &entity.EOQCalculation{
		ID:              uuid.New().String(),
		ItemID:          in.ItemID,
		AnnualDemand:    in.AnnualDemand,
		OrderingCost:    in.OrderingCost,
		HoldingCost:     in.HoldingCost,
		UnitCost:        in.UnitCost,
		LeadTimeDays:    leadTime,
		EOQQuantity:     int64(math.Round(res.EOQ)),
		TotalCost:       int64(math.Round(res.TotalCost)),
		ReorderPoint:    int64(math.Round(res.ReorderPoint)),
		CalculationDate: date,
		CreatedBy:       in.UserID,
		CreatedAt:       time.Now(),
	}
	if err := uc.eoqRepo.Create(calc); err != nil {
		return nil, nil, err
	}
	return res, calc, nil
}

// JITRequest entrada para calcular y guardar un snapshot JIT.
type JITRequest struct {
	ItemID          string
	DailyDemand     float64
	LeadTimeDays    float64
	SafetyStock     float64
	WorkingDays     float64
	CalculationDate time.Time
	UserID          string
}

// CalculateJIT valida el artículo, evalúa el calculador puro y persiste el snapshot.
func (uc *UseCase) CalculateJIT(ctx context.Context, in JITRequest) (*planning.JITResult, *entity.JITCalculation, error) {
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, domain.ErrItemNotFound
	}

	wd := in.WorkingDays
	if wd == 0 {
		wd = float64(uc.cfg.WorkingDays)
	}
	res, err := planning.CalculateJIT(planning.JITInput{
		DailyDemand:  in.DailyDemand,
		LeadTimeDays: in.LeadTimeDays,
		SafetyStock:  in.SafetyStock,
		WorkingDays:  wd,
	})
	if err != nil {
		return nil, nil, err
	}

	date := in.CalculationDate
	if date.IsZero() {
		date = time.Now()
	}
	calc := &entity.JITCalculation{
		ID:              uuid.New().String(),
		ItemID:          in.ItemID,
		DailyDemand:     in.DailyDemand,
		LeadTimeDays:    in.LeadTimeDays,
		SafetyStock:     int64(math.Round(in.SafetyStock)),
		ReorderPoint:    int64(math.Round(res.ReorderPoint)),
		CalculationDate: date,
		CreatedBy:       in.UserID,
		CreatedAt:       time.Now(),
	}
	if err := uc.jitRepo.Create(calc); err != nil {
		return nil, nil, err
	}
	return res, calc, nil
}

// ListEOQByItem lista snapshots EOQ de un artículo (más recientes primero).
func (uc *UseCase) ListEOQByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.EOQCalculation, error) {
	return uc.eoqRepo.ListByItem(itemID, limit, offset)
}

// GetEOQ obtiene un snapshot EOQ.
func (uc *UseCase) GetEOQ(ctx context.Context, id string) (*entity.EOQCalculation, error) {
	return uc.eoqRepo.GetByID(id)
}

// DeleteEOQ borra un snapshot EOQ.
func (uc *UseCase) DeleteEOQ(ctx context.Context, id string) error {
	return uc.eoqRepo.Delete(id)
}

// ListJITByItem lista snapshots JIT de un artículo.
func (uc *UseCase) ListJITByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.JITCalculation, error) {
	return uc.jitRepo.ListByItem(itemID, limit, offset)
}

// GetJIT obtiene un snapshot JIT.
func (uc *UseCase) GetJIT(ctx context.Context, id string) (*entity.JITCalculation, error) {
	return uc.jitRepo.GetByID(id)
}

// DeleteJIT borra un snapshot JIT.
func (uc *UseCase) DeleteJIT(ctx context.Context, id string) error {
	return uc.jitRepo.Delete(id)
}
