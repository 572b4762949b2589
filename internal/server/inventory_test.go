package server

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/store"
)

func newInventoryServer(t *testing.T) http.Handler {
	t.Helper()
	return NewInventoryRouter(&InventoryAPI{
		Items:    store.NewInventoryStore(),
		Accounts: store.NewAccountStore(),
		Started:  time.Now(),
	})
}

func widgetPayload(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"releaseDate": "2016-08-29T09:12:33.001Z",
		"manufacturer": map[string]any{
			"name":     "ACME Corporation",
			"homePage": "https://www.acme-corp.com",
			"phone":    "408-867-5309",
		},
	}
}

func TestInventoryAddAndSearch(t *testing.T) {
	h := newInventoryServer(t)

	rr := doJSON(t, h, http.MethodPost, "/inventory", widgetPayload("Widget Adapter"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[store.InventoryItem](t, rr)
	assert.NotEmpty(t, created.ID, "response carries the generated ID")

	rr = doJSON(t, h, http.MethodPost, "/inventory", widgetPayload("Sprocket"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/inventory?searchString=WIDGET", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	hits := decode[[]store.InventoryItem](t, rr)
	require.Len(t, hits, 1)
	assert.Equal(t, "Widget Adapter", hits[0].Name)

	rr = doJSON(t, h, http.MethodGet, "/inventory?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[[]store.InventoryItem](t, rr)
	require.Len(t, page, 1)
	assert.Equal(t, "Sprocket", page[0].Name)
}

func TestInventoryDuplicateIDConflict(t *testing.T) {
	h := newInventoryServer(t)

	payload := widgetPayload("Widget Adapter")
	payload["id"] = "d290f1ee-6c54-4b01-90e6-d701748f0851"

	rr := doJSON(t, h, http.MethodPost, "/inventory", payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/inventory", payload)
	assert.Equal(t, http.StatusConflict, rr.Code)
	body := decode[map[string]any](t, rr)
	assert.Equal(t, "duplicate_key", body["code"])
}

func TestInventoryGetAndDelete(t *testing.T) {
	h := newInventoryServer(t)

	rr := doJSON(t, h, http.MethodPost, "/inventory", widgetPayload("Widget Adapter"))
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[store.InventoryItem](t, rr)

	rr = doJSON(t, h, http.MethodGet, "/inventory/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, "/inventory/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/inventory/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInventoryValidation(t *testing.T) {
	h := newInventoryServer(t)

	rr := doJSON(t, h, http.MethodPost, "/inventory", map[string]any{"name": ""})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode[map[string]any](t, rr)
	assert.Equal(t, "validation_error", body["code"])
}

func TestDirectoryAccountFlow(t *testing.T) {
	h := newInventoryServer(t)

	// Register.
	rr := doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"username": "johndoe", "email": "johndoe@example.com",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var created struct {
		Message string        `json:"message"`
		User    store.Account `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Hello, johndoe!", created.Message)

	// Duplicate email.
	rr = doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"username": "other", "email": "johndoe@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Lookup by username and by email.
	rr = doJSON(t, h, http.MethodGet, "/users/johndoe", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doJSON(t, h, http.MethodGet, "/users/johndoe@example.com", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/users/stranger", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// List.
	rr = doJSON(t, h, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]store.Account](t, rr)
	assert.Len(t, list, 1)

	// Delete is idempotent: 204 both times.
	rr = doJSON(t, h, http.MethodDelete, "/users?userId=johndoe", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = doJSON(t, h, http.MethodDelete, "/users?userId=johndoe", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, h, http.MethodDelete, "/users", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code, "missing userId")
}

func TestInventoryStats(t *testing.T) {
	h := newInventoryServer(t)

	rr := doJSON(t, h, http.MethodPost, "/inventory", widgetPayload("Widget Adapter"))
	require.Equal(t, http.StatusCreated, rr.Code)
	rr = doJSON(t, h, http.MethodPost, "/users", map[string]any{
		"username": "johndoe", "email": "johndoe@example.com",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats struct {
		TotalItems    int `json:"total_items"`
		TotalAccounts int `json:"total_accounts"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.TotalAccounts)
}
