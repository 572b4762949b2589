package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewUserRouter wires the user management service.
func NewUserRouter(api *UserAPI) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog)

	r.HandleFunc("/", api.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", handleHealth(api.Started)).Methods(http.MethodGet)
	r.HandleFunc("/users", api.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", api.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", api.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", api.UpdateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}", api.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/analytics", api.Analytics).Methods(http.MethodGet)

	return CORS(r)
}

// NewInventoryRouter wires the inventory service.
func NewInventoryRouter(api *InventoryAPI) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog)

	r.HandleFunc("/health", handleHealth(api.Started)).Methods(http.MethodGet)
	r.HandleFunc("/inventory", api.SearchInventory).Methods(http.MethodGet)
	r.HandleFunc("/inventory", api.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/inventory/{id}", api.GetItem).Methods(http.MethodGet)
	r.HandleFunc("/inventory/{id}", api.DeleteItem).Methods(http.MethodDelete)
	r.HandleFunc("/stats", api.Stats).Methods(http.MethodGet)
	r.HandleFunc("/users", api.RegisterAccount).Methods(http.MethodPost)
	r.HandleFunc("/users", api.ListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/users", api.RemoveAccount).Methods(http.MethodDelete)
	r.HandleFunc("/users/{userId}", api.GetAccount).Methods(http.MethodGet)

	return CORS(r)
}
