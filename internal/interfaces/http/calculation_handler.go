package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/planning"
)

// defaultHistoryMonths ventana por defecto del estimador de demanda.
const defaultHistoryMonths = 12

// CalculationHandler maneja los cálculos EOQ/JIT y la estimación de demanda.
type CalculationHandler struct {
	uc *planning.UseCase
}

// NewCalculationHandler construye el handler.
func NewCalculationHandler(uc *planning.UseCase) *CalculationHandler {
	return &CalculationHandler{uc: uc}
}

// CalculateEOQ godoc
// @Summary      Calcular lote económico (EOQ)
// @Description  Evalúa la fórmula de Wilson, persiste el snapshot y devuelve las
//
//	métricas redondeadas junto con el registro guardado.
//
// @Tags         calculations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EOQCalculationRequest  true  "parámetros del cálculo"
// @Success      200   {object}  dto.EOQResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calculations/eoq [post]
func (h *CalculationHandler) CalculateEOQ(c *fiber.Ctx) error {
	var in dto.EOQCalculationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, calc, err := h.uc.CalculateEOQ(c.Context(), planning.EOQRequest{
		ItemID:       in.ItemID,
		AnnualDemand: in.AnnualDemand,
		OrderingCost: in.OrderingCost,
		HoldingCost:  in.HoldingCost,
		UnitCost:     in.UnitCost,
		LeadTimeDays: in.LeadTimeDays,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"result":      dto.FromEOQResult(res),
		"calculation": dto.FromEOQCalculation(calc),
	})
}

// CalculateJIT godoc
// @Summary      Calcular punto de pedido JIT
// @Tags         calculations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.JITCalculationRequest  true  "parámetros del cálculo"
// @Success      200   {object}  dto.JITResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/calculations/jit [post]
func (h *CalculationHandler) CalculateJIT(c *fiber.Ctx) error {
	var in dto.JITCalculationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, calc, err := h.uc.CalculateJIT(c.Context(), planning.JITRequest{
		ItemID:       in.ItemID,
		DailyDemand:  in.DailyDemand,
		LeadTimeDays: in.LeadTimeDays,
		SafetyStock:  in.SafetyStock,
		WorkingDays:  in.WorkingDays,
		UserID:       GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"result":      dto.FromJITResult(res),
		"calculation": dto.FromJITCalculation(calc),
	})
}

// HistoricalData godoc
// @Summary      Demanda histórica estimada de un artículo
// @Description  Agrega las salidas de stock por mes y deriva la demanda anual y
//
//	diaria estimadas, listas para precargar el formulario EOQ.
//
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "ID del artículo"
// @Param        months  query  int     false  "meses de historial (default 12)"
// @Success      200  {object}  dto.DemandEstimateDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/historical-data/{itemId} [get]
func (h *CalculationHandler) HistoricalData(c *fiber.Ctx) error {
	months := c.QueryInt("months", defaultHistoryMonths)
	if months <= 0 {
		months = defaultHistoryMonths
	}
	estimate, err := h.uc.EstimateDemand(c.Context(), c.Params("itemId"), months)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromDemandEstimate(estimate))
}

// ListEOQ godoc
// @Summary      Historial de snapshots EOQ de un artículo
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.EOQCalculationDTO
// @Router       /api/calculations/eoq/item/{itemId} [get]
func (h *CalculationHandler) ListEOQ(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	calcs, err := h.uc.ListEOQByItem(c.Context(), c.Params("itemId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"calculations": dto.FromEOQCalculations(calcs),
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetEOQ godoc
// @Summary      Obtener snapshot EOQ
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del snapshot"
// @Success      200  {object}  dto.EOQCalculationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/eoq/{id} [get]
func (h *CalculationHandler) GetEOQ(c *fiber.Ctx) error {
	calc, err := h.uc.GetEOQ(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if calc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cálculo no encontrado"})
	}
	return c.JSON(dto.FromEOQCalculation(calc))
}

// DeleteEOQ godoc
// @Summary      Borrar snapshot EOQ
// @Tags         calculations
// @Security     Bearer
// @Param        id  path  string  true  "ID del snapshot"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/eoq/{id} [delete]
func (h *CalculationHandler) DeleteEOQ(c *fiber.Ctx) error {
	if err := h.uc.DeleteEOQ(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListJIT godoc
// @Summary      Historial de snapshots JIT de un artículo
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        itemId  path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.JITCalculationDTO
// @Router       /api/calculations/jit/item/{itemId} [get]
func (h *CalculationHandler) ListJIT(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	calcs, err := h.uc.ListJITByItem(c.Context(), c.Params("itemId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"calculations": dto.FromJITCalculations(calcs),
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetJIT godoc
// @Summary      Obtener snapshot JIT
// @Tags         calculations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del snapshot"
// @Success      200  {object}  dto.JITCalculationDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/jit/{id} [get]
func (h *CalculationHandler) GetJIT(c *fiber.Ctx) error {
	calc, err := h.uc.GetJIT(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if calc == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cálculo no encontrado"})
	}
	return c.JSON(dto.FromJITCalculation(calc))
}

// DeleteJIT godoc
// @Summary      Borrar snapshot JIT
// @Tags         calculations
// @Security     Bearer
// @Param        id  path  string  true  "ID del snapshot"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/calculations/jit/{id} [delete]
func (h *CalculationHandler) DeleteJIT(c *fiber.Ctx) error {
	if err := h.uc.DeleteJIT(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
