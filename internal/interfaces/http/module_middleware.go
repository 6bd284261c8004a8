package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain/authz"
)

// accessResolver es el contrato mínimo que necesita el middleware para
// resolver el conjunto de módulos del rol. Lo implementa
// *usecase.AccessService; el uso de interfaz evita el import circular.
type accessResolver interface {
	ModuleSet(roleID string) (authz.PermissionSet, error)
}

// RequireModule devuelve un middleware Fiber que verifica si el rol del
// token habilita el módulo. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRoleID). El conjunto se lee de la BD en cada petición:
// una edición del rol surte efecto inmediato.
//
// Comportamiento:
//   - 401 Unauthorized → sin role_id en el contexto (sin sesión).
//   - 403 Forbidden → el rol no incluye el módulo (o el rol ya no existe).
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func RequireModule(moduleKey string, resolver accessResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		if roleID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role_id no encontrado en el token",
			})
		}

		set, err := resolver.ModuleSet(roleID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESS_CHECK_FAILED",
				Message: "no se pudo verificar el acceso, intente más tarde",
			})
		}

		if !set.IsAllowed(moduleKey) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DENIED",
				Message: "el módulo '" + moduleKey + "' no está habilitado para este rol",
			})
		}

		return c.Next()
	}
}
