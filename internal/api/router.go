package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	usersHandler := &UsersHandler{DB: db}
	itemsHandler := &ItemsHandler{DB: db}

	mux.HandleFunc("GET /{$}", health)

	mux.HandleFunc("POST /users/{$}", usersHandler.Create)
	mux.HandleFunc("GET /users/{user_id}", usersHandler.Get)
	mux.HandleFunc("POST /users/{user_id}/items/{$}", itemsHandler.CreateForUser)

	mux.HandleFunc("GET /items/{item_id}", itemsHandler.Get)
	mux.HandleFunc("PUT /items/{item_id}/status", itemsHandler.UpdateStatus)
	mux.HandleFunc("PUT /items/{item_id}/image", itemsHandler.UploadImage)
	mux.HandleFunc("GET /items/status/{status}", itemsHandler.ListByStatus)

	// ServeMux rejects GET /items/{item_id}/history and /items/{item_id}/image
	// alongside GET /items/status/{status} as ambiguous, so the item
	// sub-resource reads share one wildcard route.
	mux.HandleFunc("GET /items/{item_id}/{resource}", itemsHandler.GetResource)

	return mux
}

// health handles GET /.
func health(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "Success",
		"message": "Application is healthy",
	})
}
