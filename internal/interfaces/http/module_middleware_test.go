package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	apphttp "github.com/jhoicas/erp-pyme/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/erp-pyme/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testRoleID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "erp-pyme-test"
	testExpMin    = 60
)

// stubResolver implementa el contrato del guard de módulos con un mapa fijo
// rol→módulos, o con un error de infraestructura simulado.
type stubResolver struct {
	sets map[string]authz.PermissionSet
	err  error
}

func (s stubResolver) ModuleSet(roleID string) (authz.PermissionSet, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sets[roleID], nil
}

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware +
// RequireModule y un handler dummy que devuelve 200 si pasa los middlewares.
func buildTestApp(moduleKey string, resolver stubResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(moduleKey, resolver),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol indicado.
func tokenFor(t *testing.T, roleID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, roleID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModule
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el rol habilita el módulo → HTTP 200.
func TestRequireModule_RolConModuloAccede(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{
		testRoleID: authz.NewPermissionSet(authz.ModuleSales),
	}}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, tokenFor(t, testRoleID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
}

// Caso 2: el rol no incluye el módulo → HTTP 403 MODULE_DENIED.
func TestRequireModule_RolSinModuloBloqueado(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{
		testRoleID: authz.NewPermissionSet(authz.ModuleClients),
	}}
	app := buildTestApp(authz.ModuleRoles, resolver)

	resp := doRequest(t, app, tokenFor(t, testRoleID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DENIED")
}

// Caso 3: el rol ya no existe en la BD (set nil) → HTTP 403, no 500.
func TestRequireModule_RolInexistenteDegradaA403(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{}}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, tokenFor(t, testRoleID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol borrado degrada a acceso denegado, no a error")
}

// Caso 4: fallo de infraestructura al consultar permisos → HTTP 503.
func TestRequireModule_FalloDeInfraRetorna503(t *testing.T) {
	resolver := stubResolver{err: errors.New("db caída")}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, tokenFor(t, testRoleID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCESS_CHECK_FAILED")
}

// Caso 5: token sin role_id → HTTP 401.
func TestRequireModule_TokenSinRol_Retorna401(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{}}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, tokenFor(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "UNAUTHORIZED")
}

// Caso 6: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireModule_SinAuthHeader_Retorna401(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{}}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 7: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireModule_TokenInvalido_Retorna401(t *testing.T) {
	resolver := stubResolver{sets: map[string]authz.PermissionSet{}}
	app := buildTestApp(authz.ModuleSales, resolver)

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role_id": apphttp.GetRoleID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, testRoleID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testRoleID, body["role_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, roleID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testRoleID, roleID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
