package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/inventory"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Produccion-api/internal/interfaces/http"
)

// buildAPI arma la aplicación completa sobre el store en memoria, como lo hace
// el binario con STORAGE_DRIVER=memory.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	runner := memory.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:  inventory.NewLedgerUseCase(runner, store.Materials(), store.Transactions()),
		EngineUC:  production.NewEngineUseCase(runner, store.Products(), store.Materials(), store.ProductionLogs()),
		AuthUC:    auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin crea un usuario con el rol dado y devuelve su token.
func registerAndLogin(t *testing.T, app *fiber.App, email, role string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "super-secreta-123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "super-secreta-123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createMaterial(t *testing.T, app *fiber.App, token, name, stock, cost string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/materials/", token, map[string]any{
		"name":            name,
		"unit":            "kg",
		"cost_per_unit":   cost,
		"min_stock_level": "1",
		"current_stock":   stock,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestAPI_FlujoCompletoDeProduccion(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "pastelera@dulceria.test", "manager")

	harinaID := createMaterial(t, app, token, "Harina", "10", "50")
	azucarID := createMaterial(t, app, token, "Azúcar", "3", "60")

	// Crear producto con receta.
	resp := doJSON(t, app, http.MethodPost, "/api/products/", token, map[string]any{
		"name":     "Laddu",
		"category": "sweets",
		"recipe": []map[string]any{
			{"material_id": harinaID, "quantity": "2"},
			{"material_id": azucarID, "quantity": "1"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID, _ := decodeBody(t, resp)["id"].(string)
	require.NotEmpty(t, productID)

	// Verificación: para 4 unidades falta azúcar.
	resp = doJSON(t, app, http.MethodPost, "/api/production/check", token, map[string]any{
		"product_id": productID,
		"quantity":   "4",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	check := decodeBody(t, resp)
	assert.Equal(t, false, check["can_produce"])

	// Producir 4 → 409 con los faltantes; nada se descuenta.
	resp = doJSON(t, app, http.MethodPost, "/api/production/", token, map[string]any{
		"product_id": productID,
		"quantity":   "4",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	conflict := decodeBody(t, resp)
	assert.Equal(t, false, conflict["can_produce"])
	shortages, _ := conflict["shortages"].([]any)
	require.Len(t, shortages, 1)

	// Producir 2 → 201 y stock descontado.
	resp = doJSON(t, app, http.MethodPost, "/api/production/", token, map[string]any{
		"product_id": productID,
		"quantity":   "2",
		"notes":      "lote de prueba",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/materials/"+harinaID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	harina := decodeBody(t, resp)
	assert.Equal(t, "6", fmt.Sprint(harina["current_stock"]))

	// Dos transacciones production, más reciente primero.
	resp = doJSON(t, app, http.MethodGet, "/api/transactions/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	txs := decodeBody(t, resp)
	assert.EqualValues(t, 2, txs["total"])
}

func TestAPI_CompraActualizaCostoYEstado(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "compras@dulceria.test", "staff")
	id := createMaterial(t, app, token, "Ghee", "10", "10")

	resp := doJSON(t, app, http.MethodPost, "/api/materials/"+id+"/stock", token, map[string]any{
		"quantity":       "5",
		"purchase_price": "20",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "15", fmt.Sprint(body["current_stock"]))
	assert.Equal(t, "good", body["status"])
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/materials/", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_DeleteRequiereRolElevado(t *testing.T) {
	app := buildAPI(t)
	manager := registerAndLogin(t, app, "jefa@dulceria.test", "manager")
	staff := registerAndLogin(t, app, "ayudante@dulceria.test", "staff")

	id := createMaterial(t, app, manager, "Harina", "10", "50")

	resp := doJSON(t, app, http.MethodDelete, "/api/materials/"+id, staff, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "staff no puede eliminar materiales")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/materials/"+id, manager, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_NombreDuplicadoRetorna409(t *testing.T) {
	app := buildAPI(t)
	token := registerAndLogin(t, app, "alta@dulceria.test", "manager")
	createMaterial(t, app, token, "Harina", "10", "50")

	resp := doJSON(t, app, http.MethodPost, "/api/materials/", token, map[string]any{
		"name":            "HARINA",
		"unit":            "kg",
		"cost_per_unit":   "60",
		"min_stock_level": "1",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
