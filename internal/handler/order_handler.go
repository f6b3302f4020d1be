package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"order-desk/internal/model"
	"order-desk/internal/orderlist"
	"order-desk/internal/service"
	"order-desk/internal/status"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders requests with the combined filter and
// pagination query parameters.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := service.ListQuery{
		Filter: orderlist.Filter{
			Status:         status.Status(q.Get("status")),
			OrderID:        q.Get("order_id"),
			Phone:          q.Get("phone"),
			Courier:        q.Get("courier"),
			StatusOverride: status.Status(q.Get("status_override")),
		},
		Page:     intQuery(q.Get("page")),
		PageSize: intQuery(q.Get("page_size")),
	}
	if raw := q.Get("user_id"); raw != "" {
		query.Filter.UserID, _ = strconv.ParseInt(raw, 10, 64)
	}
	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "date must be YYYY-MM-DD", h.logger)
			return
		}
		query.Filter.Date = date
	}

	result, err := h.service.List(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Search handles GET /api/orders/search requests.
func (h *OrderHandler) Search(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/orders/{id} requests.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Transition handles POST /api/orders/{id}/status requests.
func (h *OrderHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body struct {
		Status  status.Status  `json:"status"`
		Context status.Context `json:"context"`
		User    string         `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if body.Context == "" {
		body.Context = status.ContextDefault
	}

	result, err := h.service.Transition(r.Context(), service.TransitionRequest{
		OrderID: id,
		Target:  body.Status,
		Context: body.Context,
		User:    body.User,
	})
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AssignCourier handles POST /api/orders/{id}/courier requests.
func (h *OrderHandler) AssignCourier(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body struct {
		Courier string `json:"courier"`
		User    string `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	result, err := h.service.AssignCourier(r.Context(), id, body.Courier, body.User)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	notification, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notification": notification})
}

// BulkStatus handles POST /api/orders/bulk/status requests.
func (h *OrderHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs    []int64       `json:"ids"`
		Status status.Status `json:"status"`
		User   string        `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	result, err := h.service.BulkStatus(r.Context(), body.IDs, body.Status, body.User)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// BulkDelete handles POST /api/orders/bulk/delete requests.
func (h *OrderHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	result, err := h.service.BulkDelete(r.Context(), body.IDs)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ToggleSelection handles POST /api/orders/selection/toggle requests: the
// stateless "select all on this page" helper. The dashboard sends its
// current selection and the visible row ids and gets the new selection back.
func (h *OrderHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Selected []int64 `json:"selected"`
		Visible  []int64 `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	selection := orderlist.NewSelectionSet(body.Selected...)
	selection.ToggleAll(body.Visible)
	writeJSON(w, http.StatusOK, map[string]any{"selected": selection.IDs()})
}

// History handles GET /api/orders/{id}/history requests.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	page, err := h.service.History(r.Context(), id, intQuery(r.URL.Query().Get("page")))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// AddNote handles POST /api/orders/{id}/history requests.
func (h *OrderHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.orderID(w, r)
	if !ok {
		return
	}

	var body struct {
		Notes string `json:"notes"`
		User  string `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	entry, err := h.service.AddNote(r.Context(), id, body.Notes, body.User)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid order ID", h.logger)
		return 0, false
	}
	return id, true
}

func intQuery(raw string) int {
	n, _ := strconv.Atoi(raw)
	return n
}
