package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/receiving"
)

// ReceiptHandler maneja recepciones de mercancía (protegido).
type ReceiptHandler struct {
	uc *receiving.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receiving.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar recepción de mercancía
// @Description  Crea la recepción con sus líneas y aplica las entradas de stock en una
//
//	sola transacción. Sin receipt_number el servidor genera RCPT-YYYYMMDD-NNN.
//
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceiptRequest  true  "cabecera y líneas"
// @Success      201   {object}  dto.ReceiptDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	receipt, err := h.uc.Create(c.Context(), receiving.CreateInput{
		ReceiptNumber:   in.ReceiptNumber,
		PurchaseOrderID: in.PurchaseOrderID,
		ReceiptDate:     in.ReceiptDate,
		TotalAmount:     in.TotalAmount,
		Status:          in.Status,
		Notes:           in.Notes,
		UserID:          GetUserID(c),
		Lines:           receiptLines(in.Lines),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromReceipt(receipt))
}

// GetByID godoc
// @Summary      Obtener recepción
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceiptDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	receipt, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if receipt == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recepción no encontrada"})
	}
	return c.JSON(dto.FromReceipt(receipt))
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.ReceiptDTO
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	page.DefaultPage()
	receipts, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"receipts": dto.FromReceipts(receipts),
		"page":     dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Update godoc
// @Summary      Actualizar recepción
// @Description  Reescribe cabecera y líneas. No repostea movimientos de stock.
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID de la recepción"
// @Param        body  body  dto.ReceiptRequest  true  "cabecera y líneas"
// @Success      200   {object}  dto.ReceiptDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [put]
func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	var in dto.ReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id := c.Params("id")
	err := h.uc.Update(c.Context(), id, receiving.UpdateInput{
		ReceiptNumber:   in.ReceiptNumber,
		PurchaseOrderID: in.PurchaseOrderID,
		ReceiptDate:     in.ReceiptDate,
		TotalAmount:     in.TotalAmount,
		Status:          in.Status,
		Notes:           in.Notes,
		Lines:           receiptLines(in.Lines),
	})
	if err != nil {
		return respondError(c, err)
	}
	receipt, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromReceipt(receipt))
}

// Delete godoc
// @Summary      Borrar recepción
// @Description  Las recepciones completadas no se pueden borrar: sus movimientos ya están en el ledger.
// @Tags         receipts
// @Security     Bearer
// @Param        id  path  string  true  "ID de la recepción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func receiptLines(lines []dto.ReceiptLineRequest) []receiving.LineInput {
	out := make([]receiving.LineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, receiving.LineInput{
			ItemID:           l.ItemID,
			QuantityOrdered:  l.QuantityOrdered,
			QuantityReceived: l.QuantityReceived,
			UnitPrice:        l.UnitPrice,
			TotalPrice:       l.TotalPrice,
		})
	}
	return out
}
