package route

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/school/deletions/model"
	"schoolku_backend/internals/features/school/deletions/testutil"
)

var ptr = testutil.Ptr[int64]

func newApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.Create(t, db,
		&model.ClassModel{ID: 5, Name: "10ª Classe"},
		&model.ClassSectionModel{ID: 12, Name: "10A", ClassID: ptr(5)},
		&model.ConfirmationModel{ID: 1, SectionID: ptr(12)},
		&model.ConfirmationModel{ID: 2, SectionID: ptr(12)},
		&model.ConfirmationModel{ID: 3, SectionID: ptr(12)},
		&model.CurrencyModel{ID: 2, Name: "Kwanza", Symbol: "Kz"},
		&model.CurrencyModel{ID: 3, Name: "Dólar", Symbol: "$"},
		&model.ServiceTypeModel{ID: 1, Name: "Propina", CurrencyID: ptr(2)},
		&model.ServiceTypeModel{ID: 2, Name: "Uniforme", CurrencyID: ptr(2)},
		&model.ServiceTypeModel{ID: 3, Name: "Transporte", CurrencyID: ptr(2)},
		&model.ServiceTypeModel{ID: 4, Name: "Cartão", CurrencyID: ptr(2)},
	)

	app := fiber.New()
	DeletionAdminRoutes(app.Group("/api/a"), db, configs.DeletionConfig{TxTimeout: 5 * time.Second, BatchSize: 500})
	return app, db
}

func do(t *testing.T, app *fiber.App, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func TestDeleteClass_Cascade(t *testing.T) {
	app, db := newApp(t)

	status, body := do(t, app, http.MethodDelete, "/api/a/classes/5")
	require.Equal(t, fiber.StatusOK, status, body)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "cascade_delete", body["tipo"])
	details := body["detalhes"].(map[string]any)
	assert.EqualValues(t, 3, details["confirmations"])
	assert.EqualValues(t, 1, details["sections"])
	assert.NotContains(t, details, "classes")

	assert.Zero(t, testutil.Count(t, db, "classes"))
	assert.Zero(t, testutil.Count(t, db, "confirmations"))
}

func TestDeleteCurrency_Conflict(t *testing.T) {
	app, db := newApp(t)

	status, body := do(t, app, http.MethodDelete, "/api/a/currencies/2")
	require.Equal(t, fiber.StatusBadRequest, status, body)

	assert.Equal(t, false, body["success"])
	assert.Equal(t, "DEPENDENCY_CONFLICT", body["error_code"])
	assert.EqualValues(t, 4, body["detalhes"].(map[string]any)["serviceTypes"])
	assert.EqualValues(t, 2, testutil.Count(t, db, "currencies"))
}

func TestDeleteCurrency_Hard(t *testing.T) {
	app, db := newApp(t)

	status, body := do(t, app, http.MethodDelete, "/api/a/currencies/3")
	require.Equal(t, fiber.StatusOK, status, body)

	assert.Equal(t, "hard_delete", body["tipo"])
	assert.Empty(t, body["detalhes"])
	assert.EqualValues(t, 1, testutil.Count(t, db, "currencies"))
}

func TestDelete_NotFound(t *testing.T) {
	app, _ := newApp(t)

	status, body := do(t, app, http.MethodDelete, "/api/a/classes/999")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}

func TestDelete_InvalidID(t *testing.T) {
	app, _ := newApp(t)

	cases := map[string]string{
		"/api/a/classes/abc": "ID inválido",
		"/api/a/classes/0":   "O ID deve ser maior que 0",
		"/api/a/classes/-4":  "O ID deve ser maior que 0",
	}
	for path, msg := range cases {
		status, body := do(t, app, http.MethodDelete, path)
		assert.Equal(t, fiber.StatusBadRequest, status, path)
		assert.Equal(t, "BAD_REQUEST", body["error_code"], path)
		assert.Equal(t, msg, body["message"], path)
	}
}

func TestDelete_MessagesInPortuguese(t *testing.T) {
	app, _ := newApp(t)

	_, body := do(t, app, http.MethodDelete, "/api/a/classes/999")
	assert.Equal(t, "Classe 999 não encontrado(a)", body["message"])

	_, body = do(t, app, http.MethodDelete, "/api/a/currencies/2")
	assert.Equal(t, "Moeda não pode ser eliminado(a): existem registos dependentes", body["message"])
}

func TestPreview_DoesNotDelete(t *testing.T) {
	app, db := newApp(t)

	status, body := do(t, app, http.MethodGet, "/api/a/classes/5/delete-preview")
	require.Equal(t, fiber.StatusOK, status, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["deletable"])
	assert.Equal(t, "cascade_delete", data["tipo"])
	assert.EqualValues(t, 3, data["detalhes"].(map[string]any)["confirmations"])

	assert.EqualValues(t, 1, testutil.Count(t, db, "classes"))
	assert.EqualValues(t, 3, testutil.Count(t, db, "confirmations"))
}

func TestPreview_BlockedCurrency(t *testing.T) {
	app, _ := newApp(t)

	status, body := do(t, app, http.MethodGet, "/api/a/currencies/2/delete-preview")
	require.Equal(t, fiber.StatusOK, status, body)

	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["deletable"])
	assert.Equal(t, "hard_delete", data["tipo"])
}

func TestAdminEntities_AllRegistered(t *testing.T) {
	app, _ := newApp(t)

	for _, e := range AdminEntities {
		status, _ := do(t, app, http.MethodDelete, "/api/a/"+e.Slug+"/424242")
		assert.Equal(t, fiber.StatusNotFound, status, e.Slug)
	}
}
