package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// MasterHandler maneja los datos maestros: categorías, proveedores y unidades.
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "datos de la categoría"
// @Success      201   {object}  dto.CategoryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *MasterHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.uc.CreateCategory(c.Context(), in.Name, in.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCategory(cat))
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         master-data
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /api/categories [get]
func (h *MasterHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"categories": dto.FromCategories(cats)})
}

// UpdateCategory godoc
// @Summary      Actualizar categoría
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "datos de la categoría"
// @Success      200   {object}  dto.CategoryDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *MasterHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.uc.UpdateCategory(c.Context(), c.Params("id"), in.Name, in.Description, in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromCategory(cat))
}

// DeleteCategory godoc
// @Summary      Borrar categoría
// @Tags         master-data
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *MasterHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.uc.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      201   {object}  dto.SupplierDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *MasterHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateSupplier(c.Context(), supplierInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSupplier(s))
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         master-data
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierDTO
// @Router       /api/suppliers [get]
func (h *MasterHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"suppliers": dto.FromSuppliers(suppliers)})
}

// UpdateSupplier godoc
// @Summary      Actualizar proveedor
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      200   {object}  dto.SupplierDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *MasterHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.UpdateSupplier(c.Context(), c.Params("id"), supplierInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromSupplier(s))
}

// DeleteSupplier godoc
// @Summary      Borrar proveedor
// @Tags         master-data
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *MasterHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnitRequest  true  "datos de la unidad"
// @Success      201   {object}  dto.UnitDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *MasterHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.uc.CreateUnit(c.Context(), in.Name, in.Abbreviation)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromUnit(u))
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         master-data
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitDTO
// @Router       /api/units [get]
func (h *MasterHandler) ListUnits(c *fiber.Ctx) error {
	units, err := h.uc.ListUnits(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"units": dto.FromUnits(units)})
}

// UpdateUnit godoc
// @Summary      Actualizar unidad de medida
// @Tags         master-data
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la unidad"
// @Param        body  body  dto.UnitRequest  true  "datos de la unidad"
// @Success      200   {object}  dto.UnitDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id} [put]
func (h *MasterHandler) UpdateUnit(c *fiber.Ctx) error {
	var in dto.UnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.uc.UpdateUnit(c.Context(), c.Params("id"), in.Name, in.Abbreviation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.FromUnit(u))
}

// DeleteUnit godoc
// @Summary      Borrar unidad de medida
// @Tags         master-data
// @Security     Bearer
// @Param        id  path  string  true  "ID de la unidad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [delete]
func (h *MasterHandler) DeleteUnit(c *fiber.Ctx) error {
	if err := h.uc.DeleteUnit(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func supplierInput(in dto.SupplierRequest) usecase.SupplierInput {
	return usecase.SupplierInput{
		Name:    in.Name,
		Contact: in.Contact,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
		Status:  in.Status,
	}
}
