package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"stockroom/internal/store"
)

const defaultUserLimit = 100

// UserAPI serves the user management endpoints.
type UserAPI struct {
	Users   store.UserStore
	Started time.Time
}

type analyticsResponse struct {
	store.Analytics
	Timestamp time.Time `json:"timestamp"`
}

func (a *UserAPI) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the stockroom user API",
		"health":  "/health",
		"version": Version,
	})
}

func (a *UserAPI) CreateUser(w http.ResponseWriter, r *http.Request) {
	var fields store.UserFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	u, err := a.Users.Create(fields)
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "Email already registered")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (a *UserAPI) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}
	limit, err := queryInt(r, "limit", defaultUserLimit)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}

	users, err := a.Users.List(skip, limit)
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func pathID(r *http.Request) int64 {
	// The route pattern restricts {id} to digits.
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (a *UserAPI) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.Users.Get(pathID(r))
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (a *UserAPI) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var fields store.UserFields
	if !decodeJSON(w, r, &fields) {
		return
	}

	u, err := a.Users.Update(pathID(r), fields)
	if err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "Email already registered")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (a *UserAPI) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.Users.Delete(pathID(r)); err != nil {
		writeStoreError(w, r, err, http.StatusBadRequest, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *UserAPI) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analyticsResponse{
		Analytics: a.Users.Analytics(),
		Timestamp: time.Now().UTC(),
	})
}
