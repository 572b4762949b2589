package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"stockroom/internal/store"
)

const defaultSearchLimit = 50

// InventoryAPI serves the inventory endpoints plus the small user
// directory that ships with that service.
type InventoryAPI struct {
	Items    *store.InventoryStore
	Accounts *store.AccountStore
	Started  time.Time
}

type accountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type statsResponse struct {
	TotalItems    int       `json:"total_items"`
	TotalAccounts int       `json:"total_accounts"`
	Timestamp     time.Time `json:"timestamp"`
}

func (a *InventoryAPI) SearchInventory(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}
	limit, err := queryInt(r, "limit", defaultSearchLimit)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}

	items, err := a.Items.Search(r.URL.Query().Get("searchString"), skip, limit)
	if err != nil {
		writeStoreError(w, r, err, http.StatusConflict, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *InventoryAPI) AddItem(w http.ResponseWriter, r *http.Request) {
	var item store.InventoryItem
	if !decodeJSON(w, r, &item) {
		return
	}

	stored, err := a.Items.Add(item)
	if err != nil {
		writeStoreError(w, r, err, http.StatusConflict, "An existing item already exists")
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (a *InventoryAPI) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.Items.Get(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, err, http.StatusConflict, "")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *InventoryAPI) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := a.Items.Delete(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, r, err, http.StatusConflict, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *InventoryAPI) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		TotalItems:    a.Items.Count(),
		TotalAccounts: a.Accounts.Count(),
		Timestamp:     time.Now().UTC(),
	})
}

func (a *InventoryAPI) RegisterAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	acct, err := a.Accounts.Register(req.Username, req.Email)
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "Email already registered")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Hello, " + acct.Username + "!",
		"user":    acct,
	})
}

func (a *InventoryAPI) ListAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Accounts.List())
}

func (a *InventoryAPI) GetAccount(w http.ResponseWriter, r *http.Request) {
	acct, err := a.Accounts.Lookup(mux.Vars(r)["userId"])
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "")
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// RemoveAccount deletes every account matching ?userId= by username or
// email. Idempotent: answers 204 whether or not anything matched.
func (a *InventoryAPI) RemoveAccount(w http.ResponseWriter, r *http.Request) {
	idOrName := r.URL.Query().Get("userId")
	if idOrName == "" {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, "missing userId", nil)
		return
	}
	a.Accounts.Remove(idOrName)
	w.WriteHeader(http.StatusNoContent)
}
