package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
)

// CommissionHandler maneja las peticiones HTTP para Commission (protegido,
// módulo commissions).
type CommissionHandler struct {
	uc *usecase.CommissionUseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *usecase.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener comisión por ID
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id} [get]
func (h *CommissionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comisión no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar comisiones
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado (pendiente, completada)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CommissionListResponse
// @Router       /api/commissions [get]
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Marcar comisión como pagada (pendiente → completada)
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la comisión"
// @Success      200  {object}  dto.CommissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/commissions/{id}/pay [post]
func (h *CommissionHandler) Pay(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
