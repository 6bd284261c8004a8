package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-pyme/internal/application/usecase"
)

// NavigationHandler expone los grupos de módulos visibles para el rol del
// usuario autenticado.
type NavigationHandler struct {
	access *usecase.AccessService
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(access *usecase.AccessService) *NavigationHandler {
	return &NavigationHandler{access: access}
}

// Get godoc
// @Summary      Navegación visible para el rol autenticado
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Get(c *fiber.Ctx) error {
	out, err := h.access.Navigation(GetRoleID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
