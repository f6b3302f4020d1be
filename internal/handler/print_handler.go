package handler

import (
	"encoding/json"
	"net/http"

	"order-desk/internal/model"
	"order-desk/internal/printdoc"
	"order-desk/internal/service"

	"github.com/rs/zerolog"
)

// PrintHandler serves printable invoice and sticker documents.
type PrintHandler struct {
	service  service.OrderService
	composer *printdoc.Composer
	logger   zerolog.Logger
}

// NewPrintHandler creates a new print handler.
func NewPrintHandler(service service.OrderService, composer *printdoc.Composer, logger zerolog.Logger) *PrintHandler {
	return &PrintHandler{
		service:  service,
		composer: composer,
		logger:   logger.With().Str("handler", "print").Logger(),
	}
}

// Invoice handles POST /api/print/invoice requests and responds with the
// printable HTML document.
func (h *PrintHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	h.compose(w, r, h.composer.ComposeInvoice)
}

// Sticker handles POST /api/print/sticker requests.
func (h *PrintHandler) Sticker(w http.ResponseWriter, r *http.Request) {
	h.compose(w, r, h.composer.ComposeSticker)
}

func (h *PrintHandler) compose(w http.ResponseWriter, r *http.Request, render func(model.PrintJob) (string, error)) {
	var body struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	job, err := h.service.BuildPrintJob(r.Context(), body.IDs)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	doc, err := render(*job)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to render document", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
