package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/evidenca/internal/imaging"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// CreateForUser handles POST /users/{user_id}/items/. The owner id is
// taken from the path and not checked against the users table.
func (h *ItemsHandler) CreateForUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(r.PathValue("user_id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		jsonError(w, http.StatusBadRequest, "title required")
		return
	}
	if req.Status == "" {
		req.Status = model.StatusNew
	}
	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.Title, req.Description, req.Status, ownerID)
	if err != nil {
		slog.Error("failed to create item", "owner_id", ownerID, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /items/{item_id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("item_id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// UpdateStatus handles PUT /items/{item_id}/status.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("item_id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	item, err := store.UpdateItemStatus(r.Context(), h.DB, id, req.Status)
	if err != nil {
		slog.Error("failed to update item status", "item_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// ListByStatus handles GET /items/status/{status}.
func (h *ItemsHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := r.PathValue("status")
	if !model.ValidStatus(status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	items, err := store.ListItemsByStatus(r.Context(), h.DB, status)
	if err != nil {
		slog.Error("failed to list items", "status", status, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// GetResource handles GET /items/{item_id}/{resource}, dispatching to the
// history and image reads. The sub-resources cannot be registered as
// separate patterns next to GET /items/status/{status}.
func (h *ItemsHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("item_id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	switch r.PathValue("resource") {
	case "history":
		h.getHistory(w, r, id)
	case "image":
		h.getImage(w, r, id)
	default:
		jsonError(w, http.StatusNotFound, "not found")
	}
}

// getHistory serves GET /items/{item_id}/history.
func (h *ItemsHandler) getHistory(w http.ResponseWriter, r *http.Request, id int64) {
	history, err := store.GetItemHistory(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item history", "item_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if history == nil {
		history = []model.ItemHistory{}
	}
	jsonResponse(w, http.StatusOK, history)
}

// UploadImage handles PUT /items/{item_id}/image.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("item_id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Normalize(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, id, data, mime); err != nil {
		slog.Error("failed to save item image", "item_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// getImage serves GET /items/{item_id}/image.
func (h *ItemsHandler) getImage(w http.ResponseWriter, r *http.Request, id int64) {
	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get item image", "item_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Write(data)
}
