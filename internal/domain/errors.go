package domain

import "errors"

// Errores de dominio (sin dependencias externas). Todos son terminales:
// ninguno se reintenta internamente y ninguna mutación rechazada deja
// escrituras parciales.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrSystemEntity: intento de editar o eliminar un rol o permiso
	// marcado como de sistema (sembrado en el aprovisionamiento).
	ErrSystemEntity = errors.New("entidad de sistema: no se puede modificar ni eliminar")

	// ErrHasReferences: eliminación bloqueada por registros dependientes
	// (rol con usuarios, permiso usado por roles, usuario con actividad).
	ErrHasReferences = errors.New("existen registros dependientes")

	// ErrInvalidState: violación de máquina de estados (convertir una
	// cotización no aprobada, pagar una comisión ya pagada).
	ErrInvalidState = errors.New("transición de estado inválida")
)
