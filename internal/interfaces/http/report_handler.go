package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// StockReportPDFGenerator renderiza el reporte de stock como PDF.
type StockReportPDFGenerator interface {
	GenerateStockReport(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
}

// ReportHandler maneja el tablero y los reportes (protegido).
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	pdf StockReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, pdf StockReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Dashboard godoc
// @Summary      Tablero de inventario
// @Description  Totales, movimientos recientes y agregados mensuales en una sola respuesta.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

// Usage godoc
// @Summary      Reporte de consumo
// @Description  Salidas agregadas por día y por artículo. Sin rango => últimos 30 días.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "fecha inicial (RFC 3339 o YYYY-MM-DD)"
// @Param        to           query  string  false  "fecha final"
// @Param        category_id  query  string  false  "filtrar por categoría"
// @Param        search       query  string  false  "filtrar por código o nombre"
// @Success      200  {object}  dto.UsageReportDTO
// @Router       /api/reports/usage [get]
func (h *ReportHandler) Usage(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from: fecha inválida"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to: fecha inválida"})
	}

	var fromT, toT time.Time
	if from != nil {
		fromT = *from
	}
	if to != nil {
		toT = *to
	}
	report, err := h.uc.GetUsageReport(c.Context(), fromT, toT, c.Query("category_id"), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// Stock godoc
// @Summary      Reporte de valorización de stock
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportDTO
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	report, err := h.uc.GetStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// StockPDF godoc
// @Summary      Descargar el reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock/pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	report, err := h.uc.GetStockReport(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	data, err := h.pdf.GenerateStockReport(c.Context(), report)
	if err != nil {
		return respondError(c, err)
	}
	filename := "reporte-stock-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// Purchases godoc
// @Summary      Reporte de compras por mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "meses hacia atrás (default 12)"
// @Success      200  {object}  dto.PurchaseReportDTO
// @Router       /api/reports/purchases [get]
func (h *ReportHandler) Purchases(c *fiber.Ctx) error {
	report, err := h.uc.GetPurchaseReport(c.Context(), c.QueryInt("months", 12))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
